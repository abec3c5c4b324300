package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimCanvas(t *testing.T, cols, rows int) (tcell.SimulationScreen, *TermCanvas) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	screen.Clear()
	return screen, NewTermCanvas(screen, 8, 20)
}

func rowText(screen tcell.Screen, row, from, to int) string {
	var out []rune
	for col := from; col < to; col++ {
		r, _, _, _ := screen.GetContent(col, row)
		out = append(out, r)
	}
	return string(out)
}

func TestMeasureWidthIsMonotonic(t *testing.T) {
	_, c := newSimCanvas(t, 40, 27)
	line := "a日b\tc"
	prev := -1
	for i := range line {
		w := c.MeasureWidth(line[:i])
		if w < prev {
			t.Fatalf("width shrank at %d: %d < %d", i, w, prev)
		}
		prev = w
	}
	if got := c.MeasureWidth("日"); got != 16 {
		t.Fatalf("expected wide rune to measure 16, got %d", got)
	}
}

func TestDrawTextScalesToCells(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	c.DrawText(17, 45, "hey", tcell.ColorRed)

	if got := rowText(screen, 2, 2, 5); got != "hey" {
		t.Fatalf("expected text at cell (2,2), got %q", got)
	}
	_, _, style, _ := screen.GetContent(2, 2)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Fatalf("expected red foreground, got %v", fg)
	}
}

func TestDrawTextKeepsBackground(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	c.DrawRect(0, 0, 80, 20, tcell.ColorBlue)
	c.DrawText(0, 0, "x", tcell.ColorWhite)

	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorBlue {
		t.Fatalf("expected text to keep blue background, got %v", bg)
	}
}

func TestClipSkipsOutsideCells(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	c.SetClip(0, 20, 320, 60)
	c.DrawText(0, 0, "top", tcell.ColorWhite)
	c.DrawText(0, 20, "mid", tcell.ColorWhite)
	c.ResetClip()
	c.DrawText(0, 100, "low", tcell.ColorWhite)

	if got := rowText(screen, 0, 0, 3); got == "top" {
		t.Fatalf("expected clipped row to stay blank")
	}
	if got := rowText(screen, 1, 0, 3); got != "mid" {
		t.Fatalf("expected visible text, got %q", got)
	}
	if got := rowText(screen, 5, 0, 3); got != "low" {
		t.Fatalf("expected text after reset, got %q", got)
	}
}

func TestNarrowRectIsReverseMarker(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	c.DrawText(8, 0, "ab", tcell.ColorWhite)
	c.DrawRect(8, 0, 10, 18, tcell.ColorWhite)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != 'a' {
		t.Fatalf("expected marker to keep character, got %q", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Fatalf("expected reverse video marker")
	}
}

func TestDrawLineHorizontalAndVertical(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	c.DrawLine(0, 0, 31, 0, tcell.ColorWhite)
	c.DrawLine(0, 40, 0, 99, tcell.ColorWhite)

	if got := rowText(screen, 0, 0, 4); got != "────" {
		t.Fatalf("expected horizontal line, got %q", got)
	}
	for row := 2; row <= 4; row++ {
		if r, _, _, _ := screen.GetContent(0, row); r != '│' {
			t.Fatalf("expected vertical line at row %d, got %q", row, r)
		}
	}
}
