package tabs

import "math"

// Direction selects which way the pseudo-3D rotation turns.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DirectionBetween picks Backward when to sits before from in navigation
// order, Forward otherwise.
func DirectionBetween(from, to PaneID) Direction {
	if to.Index() < from.Index() {
		return Backward
	}
	return Forward
}

// Transform is the visual placement of a pane. RotateY is in degrees,
// TranslateX in abstract pixels, Scale and Opacity in [0,1].
type Transform struct {
	RotateY    float64
	TranslateX float64
	Scale      float64
	Opacity    float64
}

// Identity is a centred, fully visible pane.
var Identity = Transform{Scale: 1, Opacity: 1}

const (
	offscreenRotate    = 90
	offscreenTranslate = 100
	offscreenScale     = 0.9
)

// Entering is where an incoming pane starts before it turns in.
func Entering(d Direction) Transform {
	sign := 1.0
	if d == Backward {
		sign = -1
	}
	return Transform{
		RotateY:    sign * offscreenRotate,
		TranslateX: sign * offscreenTranslate,
		Scale:      offscreenScale,
		Opacity:    0,
	}
}

// Leaving is where an outgoing pane ends; the mirror of Entering.
func Leaving(d Direction) Transform {
	sign := -1.0
	if d == Backward {
		sign = 1
	}
	return Transform{
		RotateY:    sign * offscreenRotate,
		TranslateX: sign * offscreenTranslate,
		Scale:      offscreenScale,
		Opacity:    0,
	}
}

// Lerp interpolates every component linearly; t is clamped to [0,1].
func Lerp(a, b Transform, t float64) Transform {
	t = clamp01(t)
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return Transform{
		RotateY:    mix(a.RotateY, b.RotateY),
		TranslateX: mix(a.TranslateX, b.TranslateX),
		Scale:      mix(a.Scale, b.Scale),
		Opacity:    mix(a.Opacity, b.Opacity),
	}
}

// ProjectedWidth is the fraction of the full width the pane covers when seen
// head-on: scale times the cosine of the rotation.
func (t Transform) ProjectedWidth() float64 {
	w := t.Scale * math.Abs(math.Cos(t.RotateY*math.Pi/180))
	return clamp01(w)
}

// CubicBezier is a CSS-style timing function with fixed endpoints (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// StandardEasing is cubic-bezier(0.4, 0, 0.2, 1).
var StandardEasing = CubicBezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}

func bezier(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// At maps progress x in [0,1] to eased progress.
func (c CubicBezier) At(x float64) float64 {
	x = clamp01(x)
	if x == 0 || x == 1 {
		return x
	}
	// Newton first, bisection if the slope flattens out.
	s := x
	for i := 0; i < 8; i++ {
		dx := bezier(c.X1, c.X2, s) - x
		if math.Abs(dx) < 1e-6 {
			return bezier(c.Y1, c.Y2, s)
		}
		d := bezierSlope(c.X1, c.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s = clamp01(s - dx/d)
	}
	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 32; i++ {
		v := bezier(c.X1, c.X2, s)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(c.Y1, c.Y2, s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
