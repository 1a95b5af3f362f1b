package viz

import (
	"strings"

	"github.com/san-kum/springmesh/internal/mesh"
)

// Braille Patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille sub-pixel canvas: each character cell holds a 2x4
// dot grid, so the drawable area is (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a sub-pixel line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Viewport maps a world-coordinate rectangle onto the canvas.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// FitSystem returns a viewport covering every mass with a margin, so
// anchors and the moving masses stay on screen.
func FitSystem(sys *mesh.System, margin float64) Viewport {
	first := sys.Snapshot(0).Position
	v := Viewport{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for i := 1; i < sys.MassCount(); i++ {
		p := sys.Snapshot(i).Position
		if p.X < v.MinX {
			v.MinX = p.X
		}
		if p.X > v.MaxX {
			v.MaxX = p.X
		}
		if p.Y < v.MinY {
			v.MinY = p.Y
		}
		if p.Y > v.MaxY {
			v.MaxY = p.Y
		}
	}
	if v.MaxX-v.MinX < 1e-9 {
		v.MinX -= 0.5
		v.MaxX += 0.5
	}
	if v.MaxY-v.MinY < 1e-9 {
		v.MinY -= 0.5
		v.MaxY += 0.5
	}
	dx := (v.MaxX - v.MinX) * margin
	dy := (v.MaxY - v.MinY) * margin
	return Viewport{MinX: v.MinX - dx, MinY: v.MinY - dy, MaxX: v.MaxX + dx, MaxY: v.MaxY + dy}
}

func (c *Canvas) project(v Viewport, p mesh.Vec2) (int, int) {
	w := float64(c.Width * 2)
	h := float64(c.Height * 4)
	x := (p.X - v.MinX) / (v.MaxX - v.MinX) * (w - 1)
	// world y up, screen y down
	y := (1 - (p.Y-v.MinY)/(v.MaxY-v.MinY)) * (h - 1)
	return int(x), int(y)
}

// DrawSystem renders springs as line segments and masses as dots within
// the given viewport.
func (c *Canvas) DrawSystem(sys *mesh.System, v Viewport) {
	for _, sp := range sys.Springs() {
		ax, ay := c.project(v, sys.Snapshot(sp.A).Position)
		bx, by := c.project(v, sys.Snapshot(sp.B).Position)
		c.DrawLine(ax, ay, bx, by)
	}
	for i := 0; i < sys.MassCount(); i++ {
		x, y := c.project(v, sys.Snapshot(i).Position)
		c.Set(x, y)
		c.Set(x+1, y)
		c.Set(x, y+1)
		c.Set(x+1, y+1)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
