package editor

import (
	"ced/buffer"
	"ced/ui"
)

// Dispatch applies one input event. Whatever the event, the cursor is
// valid afterwards and the dirty flag matches the last saved text.
func (e *Editor) Dispatch(ev Event) {
	switch ev.Kind {
	case EventPointerDown, EventPointerDrag:
		e.dispatchPointer(ev)
	case EventKeyDown:
		e.dispatchKey(ev)
	}
	e.buf.Clamp()
	e.buf.RecomputeDirty()
}

// dispatchPointer routes a touch to the keyboard, the header menu or the
// text area, in that order.
func (e *Editor) dispatchPointer(ev Event) {
	l := e.layout
	down := ev.Kind == EventPointerDown

	if e.keyboard.Visible && ev.Y >= e.keyboard.Top() {
		// Drags over the keyboard are swallowed.
		if down {
			e.applyKey(e.keyboard.Press(ev.X, ev.Y))
		}
		return
	}

	if ev.Y < l.HeaderH {
		if down {
			e.applyMenu(e.header.HitTest(ev.X, ev.Y))
		}
		return
	}

	if ev.Y <= l.HeaderH+l.TextAreaH(e.keyboard.Visible) {
		row := (ev.Y-l.HeaderH)/l.LineH + e.buf.ScrollY
		if row < 0 || row >= e.buf.LineCount() {
			return
		}
		col := buffer.ColumnFromPixel(e.buf.Lines[row], ev.X-l.TextMargin, e.measure)
		e.buf.SetCursor(row, col)
	}
}

func (e *Editor) applyKey(key ui.Key) {
	switch key.Kind {
	case ui.KeyChar:
		e.buf.InsertChar(key.Char)
	case ui.KeyBackspace:
		e.buf.DeleteChar()
	case ui.KeyEnter:
		e.buf.NewLine()
	}
}

func (e *Editor) applyMenu(action ui.MenuAction) {
	switch action {
	case ui.MenuKeyboard:
		e.keyboard.Toggle()
	case ui.MenuLoad:
		e.LoadFile()
	case ui.MenuSave:
		e.SaveFile()
	}
}

func (e *Editor) dispatchKey(ev Event) {
	switch ev.Key {
	case KeyToggleKeyboard:
		e.keyboard.Toggle()
	case KeyConfirm:
		e.buf.NewLine()
	case KeyDelete:
		e.buf.DeleteChar()
	case KeyUp:
		e.buf.MoveCursor(buffer.Up)
	case KeyDown:
		e.buf.MoveCursor(buffer.Down)
	case KeyLeft:
		e.buf.MoveCursor(buffer.Left)
	case KeyRight:
		e.buf.MoveCursor(buffer.Right)
	case KeyDot:
		e.buf.InsertChar('.')
	case KeyRune:
		e.buf.InsertChar(ev.Rune)
	case KeyExit:
		e.quit = true
	case KeySave:
		e.SaveFile()
	case KeyLoad:
		e.LoadFile()
	case KeyCopy:
		e.copyLine()
	case KeyPaste:
		e.paste()
	}
}

// copyLine puts the cursor line, with its line break, on the clipboard.
func (e *Editor) copyLine() {
	if err := e.clipboard.Write(e.buf.CurrentLine() + "\n"); err != nil {
		e.setTemporaryError("Copy Error")
		return
	}
	e.setTemporaryMessage("Copied line")
}

func (e *Editor) paste() {
	text, err := e.clipboard.Read()
	if err != nil {
		e.setTemporaryError("Paste Error")
		return
	}
	if text == "" {
		return
	}
	e.buf.InsertText(text)
}
