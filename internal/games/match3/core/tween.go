package core

import (
	"fmt"
	"math"
)

// Vec2 is a two-component value driven by a tween.
type Vec2 [2]float64

// LinearTween moves each component of a Vec2 towards its target at a constant
// rate. Components are clamped independently and the tween is complete only
// when both components equal their targets exactly.
type LinearTween struct {
	pos        Vec2
	to         Vec2
	step       Vec2 // Units per second, always non-negative
	sign       [2]float64
	instant    bool // Duration <= 0: jump to target on first update
	done       bool
	onComplete func()
}

// NewLinearTween creates a tween from `from` to `to` lasting duration seconds.
// onComplete may be nil; otherwise it runs exactly once.
func NewLinearTween(from, to Vec2, duration float64, onComplete func()) *LinearTween {
	t := &LinearTween{
		pos:        from,
		to:         to,
		instant:    duration <= 0,
		onComplete: onComplete,
	}
	for i := 0; i < 2; i++ {
		var diff float64
		switch {
		case to[i] > from[i]:
			t.sign[i] = 1
			diff = to[i] - from[i]
		case to[i] < from[i]:
			t.sign[i] = -1
			diff = from[i] - to[i]
		}
		if !t.instant {
			t.step[i] = diff / duration
		}
	}
	return t
}

// Update advances the tween by dt seconds.
func (t *LinearTween) Update(dt float64) {
	if t.done {
		return
	}
	if t.instant {
		t.pos = t.to
	} else if dt > 0 {
		for i := 0; i < 2; i++ {
			t.pos[i] += t.step[i] * t.sign[i] * dt
			if (t.sign[i] > 0 && t.pos[i] > t.to[i]) || (t.sign[i] < 0 && t.pos[i] < t.to[i]) {
				t.pos[i] = t.to[i]
			}
		}
	}

	if t.pos[0] == t.to[0] && t.pos[1] == t.to[1] {
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
}

// Pos returns the current value.
func (t *LinearTween) Pos() Vec2 {
	return t.pos
}

// Done reports whether the tween reached its target.
func (t *LinearTween) Done() bool {
	return t.done
}

// Angular spans in degrees for each swap direction.
var curveSpans = [...][2]float64{
	DirLeft:   {0, 180},
	DirRight:  {180, 360},
	DirTop:    {90, 270},
	DirBottom: {270, 450},
}

// CurveTween drives a swapped tile along a half circle towards its neighbor.
// It wraps a LinearTween over the angle and maps the angle to x/y with
// cosine and sine scaled by the tile radius.
type CurveTween struct {
	dir    Direction
	radius float64
	angle  *LinearTween
}

// NewCurveTween creates the arc tween for the given direction.
// Returns ErrUnknownDirection for anything but the four swap directions.
func NewCurveTween(dir Direction, radius, duration float64) (*CurveTween, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, dir)
	}
	span := curveSpans[dir]
	return &CurveTween{
		dir:    dir,
		radius: radius,
		angle:  NewLinearTween(Vec2{span[0], 0}, Vec2{span[1], 0}, duration, nil),
	}, nil
}

// Direction returns the swap direction of the tween.
func (c *CurveTween) Direction() Direction {
	return c.dir
}

// Update advances the arc by dt seconds.
func (c *CurveTween) Update(dt float64) {
	c.angle.Update(dt)
}

// Done reports whether the tile reached its neighbor's cell.
func (c *CurveTween) Done() bool {
	return c.angle.Done()
}

// Angle returns the current angle in degrees.
func (c *CurveTween) Angle() float64 {
	return c.angle.Pos()[0]
}

// Pos returns the point on the circle, floored to whole draw units.
// The circle's origin is the edge the tile shares with its neighbor.
func (c *CurveTween) Pos() Vec2 {
	rad := deg2rad(c.Angle())
	return Vec2{
		math.Floor(math.Cos(rad) * c.radius),
		math.Floor(math.Sin(rad) * c.radius),
	}
}

// Offset returns the tile's displacement from its own cell center.
func (c *CurveTween) Offset() Vec2 {
	p := c.Pos()
	switch c.dir {
	case DirLeft:
		return Vec2{p[0] - c.radius, p[1]}
	case DirRight:
		return Vec2{p[0] + c.radius, p[1]}
	case DirTop:
		return Vec2{p[0], p[1] - c.radius}
	case DirBottom:
		return Vec2{p[0], p[1] + c.radius}
	default:
		panic(fmt.Sprintf("match3: swap arc with unknown direction %d", c.dir))
	}
}

func deg2rad(deg float64) float64 {
	return math.Pi / 180 * deg
}
