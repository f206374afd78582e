package background

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	CubeColor    = "#00d4ff"
	HoverColor   = "#ffffff"
	cubeZonePref = "cube:"
)

// Cell is one character of the rendered backdrop. Cube is the index of the
// cube drawn there, or -1.
type Cell struct {
	Rune   rune
	Color  string
	Faint  bool
	Cube   int
	Center bool
	depth  float64
}

func (c Cell) empty() bool { return c.Rune == 0 }

// Grid is the rasterised scene, row-major.
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// CubeZoneID names the hover zone of cube i.
func CubeZoneID(i int) string { return fmt.Sprintf("%s%d", cubeZonePref, i) }

// ParseCubeZoneID is the inverse of CubeZoneID.
func ParseCubeZoneID(id string) (int, bool) {
	if !strings.HasPrefix(id, cubeZonePref) {
		return 0, false
	}
	var i int
	if _, err := fmt.Sscanf(id[len(cubeZonePref):], "%d", &i); err != nil || i < 0 || i >= CubeCount {
		return 0, false
	}
	return i, true
}

// Render rasterises particles then cubes; nearer points win a cell.
func (s *Scene) Render() Grid {
	w, h := s.camera.Width, s.camera.Height
	g := Grid{Width: w, Height: h, Cells: make([][]Cell, h)}
	for r := range g.Cells {
		g.Cells[r] = make([]Cell, w)
		for c := range g.Cells[r] {
			g.Cells[r][c].Cube = -1
		}
	}

	cloud := Vec3{s.RotX, s.RotY, 0}
	for _, p := range s.Particles {
		col, row, depth, ok := s.camera.Project(rotate(p.Pos, cloud))
		if !ok {
			continue
		}
		r := '·'
		if depth < CameraZ {
			r = '•'
		}
		g.plot(col, row, Cell{
			Rune:  r,
			Color: colorful.Hsl(p.Hue*360, 0.8, p.Lightness).Hex(),
			Faint: depth > CameraZ+particleSpread/4,
			Cube:  -1,
			depth: depth,
		})
	}

	for i, cube := range s.Cubes {
		color := CubeColor
		if i == s.hovered {
			color = HoverColor
		}
		r := '+'
		if cube.Opacity < 0.2 {
			r = '·'
		}
		verts := cubeVertices(cube)
		for _, e := range cubeEdges {
			g.line(s.camera, verts[e[0]], verts[e[1]], Cell{Rune: r, Color: color, Faint: cube.Opacity < 0.2, Cube: i})
		}
		if col, row, depth, ok := s.camera.Project(cube.Pos); ok {
			g.plot(col, row, Cell{Rune: '◇', Color: color, Cube: i, Center: true, depth: depth - 1e-3})
		}
	}
	return g
}

func (g *Grid) plot(col, row int, c Cell) {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return
	}
	cur := g.Cells[row][col]
	if !cur.empty() && cur.depth <= c.depth {
		return
	}
	g.Cells[row][col] = c
}

// line draws a projected edge with a simple DDA.
func (g *Grid) line(cam Camera, a, b Vec3, c Cell) {
	c0, r0, d0, ok0 := cam.Project(a)
	c1, r1, d1, ok1 := cam.Project(b)
	if !ok0 && !ok1 {
		return
	}
	if d0 < nearPlane || d1 < nearPlane {
		return
	}
	steps := int(math.Max(math.Abs(float64(c1-c0)), math.Abs(float64(r1-r0))))
	if steps > 4*(g.Width+g.Height) {
		// edge grazing the near plane
		return
	}
	if steps == 0 {
		c.depth = d0
		g.plot(c0, r0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.depth = d0 + (d1-d0)*t
		col := int(math.Round(float64(c0) + float64(c1-c0)*t))
		row := int(math.Round(float64(r0) + float64(r1-r0)*t))
		g.plot(col, row, c)
	}
}

// String renders the grid as plain text, blanks for empty cells.
func (g Grid) String() string {
	return g.Render(nil)
}

// Render joins rows, passing every non-empty cell through decorate when set.
func (g Grid) Render(decorate func(c Cell) string) string {
	var b strings.Builder
	for r, row := range g.Cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			switch {
			case c.empty():
				b.WriteByte(' ')
			case decorate != nil:
				b.WriteString(decorate(c))
			default:
				b.WriteRune(c.Rune)
			}
		}
	}
	return b.String()
}
