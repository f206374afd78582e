package background

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	ParticleCount = 200
	CubeCount     = 15

	particleSpread = 30.0
	cubeSpread     = 20.0
	cubeSize       = 0.5

	// frameRate converts elapsed time into the per-frame increments below.
	frameRate = 60.0
)

// Vec3 is a point in world space.
type Vec3 struct{ X, Y, Z float64 }

// Particle is one coloured point of the drifting cloud.
type Particle struct {
	Pos       Vec3
	Hue       float64 // 0..1, blue to purple
	Lightness float64
}

// Cube is one floating wireframe box.
type Cube struct {
	Origin  Vec3
	Pos     Vec3
	Rot     Vec3
	Spin    Vec3 // radians per frame
	Opacity float64
}

// Scene is the animated backdrop behind the header.
type Scene struct {
	Particles []Particle
	Cubes     []Cube

	// cloud rotation
	RotX, RotY float64

	camera  Camera
	elapsed time.Duration
	mouseX  float64
	mouseY  float64
	hovered int
}

// NewScene builds a scene from seed so renders are reproducible.
func NewScene(seed uint64, width, height int) *Scene {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Scene{camera: NewCamera(width, height), hovered: -1}

	s.Particles = make([]Particle, ParticleCount)
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Pos:       randomVec(rng, particleSpread),
			Hue:       0.6 + rng.Float64()*0.1,
			Lightness: 0.5 + rng.Float64()*0.3,
		}
	}

	s.Cubes = make([]Cube, CubeCount)
	for i := range s.Cubes {
		origin := randomVec(rng, cubeSpread)
		s.Cubes[i] = Cube{
			Origin: origin,
			Pos:    origin,
			Rot:    Vec3{rng.Float64() * math.Pi, rng.Float64() * math.Pi, rng.Float64() * math.Pi},
			Spin: Vec3{
				(rng.Float64() - 0.5) * 0.02,
				(rng.Float64() - 0.5) * 0.02,
				(rng.Float64() - 0.5) * 0.02,
			},
			Opacity: 0.3,
		}
	}
	return s
}

func randomVec(rng *rand.Rand, spread float64) Vec3 {
	return Vec3{
		(rng.Float64() - 0.5) * spread,
		(rng.Float64() - 0.5) * spread,
		(rng.Float64() - 0.5) * spread,
	}
}

// Elapsed is the scene time.
func (s *Scene) Elapsed() time.Duration { return s.elapsed }

// Camera returns the projection in use.
func (s *Scene) Camera() Camera { return s.camera }

// Resize re-projects onto a grid of the new size.
func (s *Scene) Resize(width, height int) { s.camera = NewCamera(width, height) }

// SetPointer records the mouse cell. The cloud leans towards it.
func (s *Scene) SetPointer(col, row int) {
	// one cell is roughly 8x16 pixels
	s.mouseX = float64(col-s.camera.Width/2) * 8 * 0.001
	s.mouseY = float64(row-s.camera.Height/2) * 16 * 0.001
}

// SetHovered marks cube i as hovered; -1 clears it.
func (s *Scene) SetHovered(i int) {
	if i < -1 || i >= len(s.Cubes) {
		i = -1
	}
	s.hovered = i
}

// Hovered is the hovered cube or -1.
func (s *Scene) Hovered() int { return s.hovered }

// Step advances the animation by dt.
func (s *Scene) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	frames := dt.Seconds() * frameRate
	t := s.elapsed.Seconds()

	s.RotX += 0.001 * frames
	s.RotY += 0.002 * frames
	s.RotX += (s.mouseY - s.RotX) * 0.0001 * frames
	s.RotY += (s.mouseX - s.RotY) * 0.0001 * frames

	for i := range s.Particles {
		k := float64(i * 3)
		s.Particles[i].Pos.Y += math.Sin(t+k) * 0.001 * frames
		s.Particles[i].Pos.X += math.Cos(t+k) * 0.001 * frames
	}

	for i := range s.Cubes {
		c := &s.Cubes[i]
		fi := float64(i)
		c.Rot.X += c.Spin.X * frames
		c.Rot.Y += c.Spin.Y * frames
		c.Rot.Z += c.Spin.Z * frames
		c.Pos.Y = c.Origin.Y + math.Sin(t*2+fi)*2
		c.Pos.X = c.Origin.X + math.Cos(t*1.5+fi)*1.5
		c.Opacity = 0.2 + math.Sin(t*3+fi)*0.1
	}
}

// cubeVertices returns the eight corners of cube c in world space.
func cubeVertices(c Cube) [8]Vec3 {
	h := cubeSize / 2
	var out [8]Vec3
	for i := 0; i < 8; i++ {
		v := Vec3{h, h, h}
		if i&1 != 0 {
			v.X = -h
		}
		if i&2 != 0 {
			v.Y = -h
		}
		if i&4 != 0 {
			v.Z = -h
		}
		v = rotate(v, c.Rot)
		out[i] = Vec3{v.X + c.Pos.X, v.Y + c.Pos.Y, v.Z + c.Pos.Z}
	}
	return out
}

// cubeEdges pairs vertex indices that differ in exactly one axis.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// rotate applies X, then Y, then Z rotation.
func rotate(v Vec3, r Vec3) Vec3 {
	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	sz, cz := math.Sincos(r.Z)

	y := v.Y*cx - v.Z*sx
	z := v.Y*sx + v.Z*cx
	v.Y, v.Z = y, z

	x := v.X*cy + v.Z*sy
	z = -v.X*sy + v.Z*cy
	v.X, v.Z = x, z

	x = v.X*cz - v.Y*sz
	y = v.X*sz + v.Y*cz
	v.X, v.Y = x, y
	return v
}
