package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface. Coordinates are pixels; rectangles and
// lines are given by their corner points with x1/y1 exclusive for
// rectangles.
type Canvas interface {
	MeasureWidth(text string) int
	DrawText(x, y int, text string, fg tcell.Color)
	DrawRect(x0, y0, x1, y1 int, bg tcell.Color)
	DrawLine(x0, y0, x1, y1 int, fg tcell.Color)
	SetClip(x0, y0, x1, y1 int)
	ResetClip()
}

type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// TermCanvas draws the pixel surface onto a tcell screen, one terminal
// cell per cellW x cellH pixels.
type TermCanvas struct {
	screen       tcell.Screen
	cellW, cellH int
	clip         rect
	clipped      bool
}

func NewTermCanvas(screen tcell.Screen, cellW, cellH int) *TermCanvas {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &TermCanvas{screen: screen, cellW: cellW, cellH: cellH}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// PixelAt returns the pixel at the center of terminal cell (col, row).
func (c *TermCanvas) PixelAt(col, row int) (int, int) {
	return col*c.cellW + c.cellW/2, row*c.cellH + c.cellH/2
}

// MeasureWidth is the display width of text in pixels. It grows with every
// rune appended, as the pixel-to-column search requires.
func (c *TermCanvas) MeasureWidth(text string) int {
	return runewidth.StringWidth(text) * c.cellW
}

func (c *TermCanvas) visible(col, row int) bool {
	if !c.clipped {
		return true
	}
	x, y := c.PixelAt(col, row)
	return c.clip.contains(x, y)
}

func (c *TermCanvas) DrawText(x, y int, text string, fg tcell.Color) {
	col := x / c.cellW
	row := y / c.cellH
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.visible(col, row) {
			_, _, style, _ := c.screen.GetContent(col, row)
			c.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col += w
	}
}

// DrawRect fills every cell the rectangle touches. A rectangle narrower
// than one cell only marks the cell at its top-left corner in reverse
// video, so the character under it stays readable.
func (c *TermCanvas) DrawRect(x0, y0, x1, y1 int, bg tcell.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if x1-x0 < c.cellW {
		col, row := x0/c.cellW, y0/c.cellH
		if c.visible(col, row) {
			mainc, combc, style, _ := c.screen.GetContent(col, row)
			c.screen.SetContent(col, row, mainc, combc, style.Reverse(true))
		}
		return
	}
	for row := y0 / c.cellH; row < ceilDiv(y1, c.cellH); row++ {
		for col := x0 / c.cellW; col < ceilDiv(x1, c.cellW); col++ {
			if !c.visible(col, row) {
				continue
			}
			_, _, style, _ := c.screen.GetContent(col, row)
			c.screen.SetContent(col, row, ' ', nil, style.Background(bg).Reverse(false))
		}
	}
}

func (c *TermCanvas) DrawLine(x0, y0, x1, y1 int, fg tcell.Color) {
	c0, r0 := x0/c.cellW, y0/c.cellH
	c1, r1 := x1/c.cellW, y1/c.cellH

	ch := '·'
	switch {
	case r0 == r1:
		ch = '─'
	case c0 == c1:
		ch = '│'
	}

	dc, dr := absInt(c1-c0), -absInt(r1-r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		if c.visible(c0, r0) {
			_, _, style, _ := c.screen.GetContent(c0, r0)
			c.screen.SetContent(c0, r0, ch, nil, style.Foreground(fg))
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func (c *TermCanvas) SetClip(x0, y0, x1, y1 int) {
	c.clip = rect{x0, y0, x1, y1}
	c.clipped = true
}

func (c *TermCanvas) ResetClip() {
	c.clipped = false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
