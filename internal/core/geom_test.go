package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 10, false},
		{10, 15, false},
		{9, 10, false},
		{10, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center() = (%d, %d), expected (25, 40)", x, y)
	}
}

func TestCellGridCellAt(t *testing.T) {
	g := CellGrid{Origin: NewRect(2, 1, 12, 6), CellW: 4, CellH: 2}

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"top-left cell", 2, 1, 0, 0, true},
		{"inside cell", 5, 2, 0, 0, true},
		{"second column", 6, 1, 0, 1, true},
		{"bottom-right cell", 13, 6, 2, 2, true},
		{"above grid", 2, 0, -1, 0, false},
		{"left of grid", 1, 1, 0, -1, false},
		{"right of grid", 14, 1, 0, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := g.CellAt(tt.x, tt.y)
			if row != tt.row || col != tt.col || ok != tt.ok {
				t.Errorf("CellAt(%d, %d) = (%d, %d, %v), expected (%d, %d, %v)",
					tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
			}
		})
	}

	if r := g.CellRect(1, 2); r != NewRect(10, 3, 4, 2) {
		t.Errorf("CellRect(1, 2) = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}
	f.Set(ActionHint)
	f.Push(PointerDown, 3, 4)
	f.Push(PointerUp, 3, 4)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
	if !clone.Has(ActionHint) || len(clone.Pointer) != 2 || clone.Pointer[1].Kind != PointerUp {
		t.Errorf("clone lost input: %+v", clone)
	}
}

func TestRuntimeConfigDt(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 30}).Dt(); got != 1.0/30 {
		t.Errorf("Dt() = %v", got)
	}
	if got := (RuntimeConfig{}).Dt(); got != 1.0/60 {
		t.Errorf("Dt() with zero tick rate = %v", got)
	}
}
