package background

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneCounts(t *testing.T) {
	s := NewScene(1, 80, 12)
	assert.Len(t, s.Particles, ParticleCount)
	assert.Len(t, s.Cubes, CubeCount)
	for _, p := range s.Particles {
		assert.GreaterOrEqual(t, p.Hue, 0.6)
		assert.Less(t, p.Hue, 0.7)
		assert.LessOrEqual(t, math.Abs(p.Pos.X), particleSpread/2)
	}
	assert.Equal(t, -1, s.Hovered())
}

func TestSceneIsDeterministic(t *testing.T) {
	a := NewScene(42, 60, 10)
	b := NewScene(42, 60, 10)
	for i := 0; i < 30; i++ {
		a.Step(16 * time.Millisecond)
		b.Step(16 * time.Millisecond)
	}
	assert.Equal(t, a.Render().String(), b.Render().String())

	c := NewScene(43, 60, 10)
	assert.NotEqual(t, a.Particles[0].Pos, c.Particles[0].Pos)
}

func TestCubeMotion(t *testing.T) {
	s := NewScene(7, 80, 20)
	s.Step(time.Second)

	tsec := 1.0
	for i, c := range s.Cubes {
		fi := float64(i)
		assert.InDelta(t, c.Origin.Y+math.Sin(tsec*2+fi)*2, c.Pos.Y, 1e-9)
		assert.InDelta(t, c.Origin.X+math.Cos(tsec*1.5+fi)*1.5, c.Pos.X, 1e-9)
		assert.InDelta(t, 0.2+math.Sin(tsec*3+fi)*0.1, c.Opacity, 1e-9)
		assert.Equal(t, c.Origin.Z, c.Pos.Z)
	}
}

func TestStepIgnoresNonPositive(t *testing.T) {
	s := NewScene(1, 10, 10)
	before := s.Particles[3]
	s.Step(0)
	s.Step(-time.Second)
	assert.Equal(t, before, s.Particles[3])
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(80, 20)

	col, row, depth, ok := cam.Project(Vec3{})
	require.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 10, row)
	assert.Equal(t, CameraZ, depth)

	_, _, _, ok = cam.Project(Vec3{Z: 6})
	assert.False(t, ok, "behind the camera")

	_, _, _, ok = cam.Project(Vec3{X: 100})
	assert.False(t, ok, "off grid")

	_, _, _, ok = NewCamera(0, 0).Project(Vec3{})
	assert.False(t, ok)
}

func TestRenderShapeAndResize(t *testing.T) {
	s := NewScene(3, 40, 8)
	g := s.Render()
	require.Len(t, g.Cells, 8)
	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.Equal(t, 40, len([]rune(l)))
	}

	s.Resize(20, 4)
	g = s.Render()
	assert.Equal(t, 20, g.Width)
	assert.Len(t, g.Cells, 4)
}

func TestRenderDecorateAndHover(t *testing.T) {
	s := NewScene(5, 120, 40)
	s.SetHovered(2)
	assert.Equal(t, 2, s.Hovered())

	s.Render().Render(func(c Cell) string {
		switch c.Cube {
		case -1:
		case 2:
			assert.Equal(t, HoverColor, c.Color)
		default:
			assert.Equal(t, CubeColor, c.Color)
		}
		return string(c.Rune)
	})

	s.SetHovered(99)
	assert.Equal(t, -1, s.Hovered())
}

func TestCubeZoneID(t *testing.T) {
	i, ok := ParseCubeZoneID(CubeZoneID(4))
	require.True(t, ok)
	assert.Equal(t, 4, i)

	for _, bad := range []string{"cube:x", "cube:99", "nav:desktop:home"} {
		_, ok := ParseCubeZoneID(bad)
		assert.False(t, ok, bad)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec3{1, 2, 3}
	r := rotate(v, Vec3{0.3, 1.1, -0.7})
	n := func(v Vec3) float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
	assert.InDelta(t, n(v), n(r), 1e-9)
}
