package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestLinearTweenReachesTargetExactly(t *testing.T) {
	calls := 0
	tw := core.NewLinearTween(core.Vec2{0, 10}, core.Vec2{16, 0}, 0.25, func() { calls++ })

	for i := 0; i < 100 && !tw.Done(); i++ {
		tw.Update(1.0 / 60)
		pos := tw.Pos()
		if pos[0] > 16 || pos[1] < 0 {
			t.Fatalf("overshoot at step %d: %v", i, pos)
		}
	}

	if !tw.Done() {
		t.Fatal("tween never completed")
	}
	if tw.Pos() != (core.Vec2{16, 0}) {
		t.Errorf("expected final position (16,0), got %v", tw.Pos())
	}

	tw.Update(1)
	if calls != 1 {
		t.Errorf("expected onComplete exactly once, got %d", calls)
	}
}

func TestLinearTweenClampsComponentsIndependently(t *testing.T) {
	// Component 1 has nothing to do and must stay put.
	tw := core.NewLinearTween(core.Vec2{1, 5}, core.Vec2{0, 5}, 0.5, nil)
	tw.Update(0.25)
	if got := tw.Pos(); got[0] != 0.5 || got[1] != 5 {
		t.Errorf("expected (0.5,5) halfway, got %v", got)
	}
	tw.Update(10)
	if got := tw.Pos(); got[0] != 0 || got[1] != 5 {
		t.Errorf("expected clamp to (0,5), got %v", got)
	}
	if !tw.Done() {
		t.Error("expected tween done after clamp")
	}
}

func TestLinearTweenZeroDuration(t *testing.T) {
	tw := core.NewLinearTween(core.Vec2{0, 0}, core.Vec2{3, 4}, 0, nil)
	if tw.Done() {
		t.Fatal("tween should not complete before its first update")
	}
	tw.Update(0)
	if !tw.Done() || tw.Pos() != (core.Vec2{3, 4}) {
		t.Errorf("expected instant completion at (3,4), got %v done=%v", tw.Pos(), tw.Done())
	}
}

func TestCurveTweenSpans(t *testing.T) {
	const r = 8
	testCases := []struct {
		dir        core.Direction
		start, end float64
		axis       int // 0 = x, 1 = y
		travel     float64
	}{
		{core.DirLeft, 0, 180, 0, -2 * r},
		{core.DirRight, 180, 360, 0, 2 * r},
		{core.DirTop, 90, 270, 1, -2 * r},
		{core.DirBottom, 270, 450, 1, 2 * r},
	}

	for _, tc := range testCases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			c, err := core.NewCurveTween(tc.dir, r, 0.2)
			if err != nil {
				t.Fatalf("NewCurveTween: %v", err)
			}
			if c.Angle() != tc.start {
				t.Errorf("expected start angle %v, got %v", tc.start, c.Angle())
			}
			if off := c.Offset(); off[tc.axis] != 0 {
				t.Errorf("expected zero offset at start, got %v", off)
			}

			for i := 0; i < 100 && !c.Done(); i++ {
				c.Update(1.0 / 60)
			}
			if !c.Done() {
				t.Fatal("arc never completed")
			}
			if c.Angle() != tc.end {
				t.Errorf("expected end angle %v, got %v", tc.end, c.Angle())
			}
			if off := c.Offset(); off[tc.axis] != tc.travel {
				t.Errorf("expected travel %v on axis %d, got %v", tc.travel, tc.axis, off)
			}
		})
	}
}

func TestCurveTweenRejectsUnknownDirection(t *testing.T) {
	_, err := core.NewCurveTween(core.Direction(9), 8, 0.2)
	if !errors.Is(err, core.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}
