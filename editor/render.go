package editor

import (
	"ced/buffer"
	"ced/highlight"
	"ced/ui"
)

// textTop is the offset of a glyph row inside its line slot.
const textTop = 2

// Draw paints the whole screen. It reads editor state and never changes it.
func (e *Editor) Draw(c ui.Canvas) {
	l := e.layout
	theme := e.theme

	c.DrawRect(0, 0, l.ScreenW, l.ScreenH, theme.Background)
	e.header.Draw(c)

	kbH := 0
	if e.keyboard.Visible {
		kbH = l.KeyboardH
	}
	c.DrawRect(0, l.HeaderH, l.ScreenW, l.ScreenH-kbH, theme.Background)
	c.SetClip(0, l.HeaderH, l.ScreenW, l.ScreenH-kbH)
	e.drawText(c)
	c.ResetClip()

	e.statusBar.Draw(c)
	e.keyboard.Draw(c)
}

func (e *Editor) drawText(c ui.Canvas) {
	l := e.layout
	visible := l.VisibleLines(e.keyboard.Visible)

	for i := 0; i < visible; i++ {
		idx := e.buf.ScrollY + i
		if idx < 0 {
			continue
		}
		if idx >= e.buf.LineCount() {
			break
		}
		line := e.buf.Lines[idx]
		y := l.HeaderH + i*l.LineH + textTop

		// Each token starts at the measured width of everything before it,
		// matching the cursor position below.
		runes := []rune(line)
		col := 0
		for _, tok := range highlight.TokenizeLine(line) {
			x := l.TextMargin + c.MeasureWidth(string(runes[:col]))
			c.DrawText(x, y, tok.Text, e.palette.Color(tok.Category))
			col += buffer.RuneLen(tok.Text)
		}

		if idx == e.buf.Cursor.Line {
			cursorCol := min(max(e.buf.Cursor.Col, 0), len(runes))
			cx := l.TextMargin + c.MeasureWidth(string(runes[:cursorCol]))
			c.DrawRect(cx, y, cx+2, y+l.LineH-textTop, e.theme.Cursor)
		}
	}
}
