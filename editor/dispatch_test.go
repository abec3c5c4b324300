package editor

import (
	"testing"

	"ced/buffer"
	"ced/clipboardx"
	"ced/ui"
)

// Default geometry: keyboard top 268, key grid from 298, rows 45 high.
const (
	gridTop    = 298
	rowH       = 45
	controlRow = gridTop + 4*rowH
)

func TestVirtualKeyboardShiftThenLetter(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Keyboard().Toggle()

	e.Dispatch(PointerDown(10, controlRow+10))  // CAPS
	e.Dispatch(PointerDown(5, gridTop+rowH+10)) // first key of "qwertyuiop"

	if !linesEqual(e.Buffer().Lines, []string{"Q"}) {
		t.Fatalf("expected [\"Q\"], got %q", e.Buffer().Lines)
	}
	if c := e.Buffer().Cursor; c.Line != 0 || c.Col != 1 {
		t.Fatalf("expected cursor (0,1), got %+v", c)
	}
}

func TestVirtualKeyboardControlKeys(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Keyboard().Toggle()

	e.Dispatch(PointerDown(5, gridTop+10))      // '1'
	e.Dispatch(PointerDown(150, controlRow+10)) // space
	e.Dispatch(PointerDown(300, controlRow+10)) // enter
	e.Dispatch(PointerDown(5, gridTop+10))      // '1'
	e.Dispatch(PointerDown(60, controlRow+10))  // backspace

	if !linesEqual(e.Buffer().Lines, []string{"1 ", ""}) {
		t.Fatalf("unexpected lines %q", e.Buffer().Lines)
	}
}

func TestVirtualKeyboardTabSwitch(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Keyboard().Toggle()

	e.Dispatch(PointerDown(319, 275))
	if e.Keyboard().Tab != ui.TabMath {
		t.Fatalf("expected Math tab, got %d", e.Keyboard().Tab)
	}
	e.Dispatch(PointerDown(5, gridTop+10)) // '<'
	if got := e.Buffer().Lines[0]; got != "<" {
		t.Fatalf("expected \"<\", got %q", got)
	}
}

func TestDragOverKeyboardIsSwallowed(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Keyboard().Toggle()

	e.Dispatch(PointerDrag(5, gridTop+10))
	e.Dispatch(PointerDrag(10, controlRow+10))

	if !linesEqual(e.Buffer().Lines, []string{""}) {
		t.Fatalf("drag typed text: %q", e.Buffer().Lines)
	}
	if e.Keyboard().Shift {
		t.Fatal("drag toggled shift")
	}
}

func TestHiddenKeyboardIgnoresTouchesBelowText(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Dispatch(PointerDown(5, gridTop+10))
	if !linesEqual(e.Buffer().Lines, []string{""}) {
		t.Fatalf("hidden keyboard typed: %q", e.Buffer().Lines)
	}
}

func TestHeaderMenu(t *testing.T) {
	e, storage := newTestEditor(t, map[string]string{"example.py": "loaded"})

	e.Dispatch(PointerDown(300, 10))
	if !e.Keyboard().Visible {
		t.Fatal("KBD should show the keyboard")
	}
	e.Dispatch(PointerDown(300, 10))
	if e.Keyboard().Visible {
		t.Fatal("KBD should hide the keyboard again")
	}

	e.Dispatch(PointerDown(10, 10))
	if !linesEqual(e.Buffer().Lines, []string{"loaded"}) {
		t.Fatalf("Load did not load: %q", e.Buffer().Lines)
	}

	e.Buffer().SetCursor(0, 6)
	e.Buffer().InsertChar('!')
	e.Dispatch(PointerDown(70, 10))
	if got := storage.files["example.py"]; got != "loaded!" {
		t.Fatalf("Save wrote %q", got)
	}

	before := e.Buffer().Text()
	e.Dispatch(PointerDown(180, 10))
	if e.Buffer().Text() != before || e.Keyboard().Visible {
		t.Fatal("title area should be inert")
	}
}

func TestHeaderIgnoresDrag(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Dispatch(PointerDrag(300, 10))
	if e.Keyboard().Visible {
		t.Fatal("drag over KBD toggled the keyboard")
	}
}

func TestTextAreaTouchPlacesCursor(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.buf = buffer.NewBufferFromLines([]string{"hello world", "ab"})

	tests := []struct {
		name string
		x, y int
		line int
		col  int
	}{
		{"nearest column", 30, 35, 0, 3},
		{"left margin", 3, 35, 0, 0},
		{"exactly margin", 5, 35, 0, 0},
		{"past line end", 300, 55, 1, 2},
		{"second row start", 6, 50, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.Dispatch(PointerDown(tt.x, tt.y))
			c := e.Buffer().Cursor
			if c.Line != tt.line || c.Col != tt.col {
				t.Fatalf("touch (%d,%d): got (%d,%d), want (%d,%d)", tt.x, tt.y, c.Line, c.Col, tt.line, tt.col)
			}
		})
	}
}

func TestTextAreaTouchBelowLastLineIsIgnored(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.buf = buffer.NewBufferFromLines([]string{"one", "two"})
	e.Buffer().SetCursor(1, 2)

	e.Dispatch(PointerDown(20, 30+5*20))

	if c := e.Buffer().Cursor; c.Line != 1 || c.Col != 2 {
		t.Fatalf("cursor moved to %+v", c)
	}
}

func TestTextAreaTouchHonoursScroll(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "line"
	}
	e.buf = buffer.NewBufferFromLines(lines)
	e.buf.ScrollY = 10

	e.Dispatch(PointerDrag(5+8*2, 30+2*20+5))

	if c := e.Buffer().Cursor; c.Line != 12 || c.Col != 2 {
		t.Fatalf("expected (12,2), got %+v", c)
	}
}

func TestKeyTable(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.buf = buffer.NewBufferFromLines([]string{"ab", "cd"})

	steps := []struct {
		ev    Event
		lines []string
		line  int
		col   int
	}{
		{KeyPress(KeyRight), []string{"ab", "cd"}, 0, 1},
		{KeyPress(KeyDown), []string{"ab", "cd"}, 1, 1},
		{KeyPress(KeyDot), []string{"ab", "c.d"}, 1, 2},
		{KeyPress(KeyDelete), []string{"ab", "cd"}, 1, 1},
		{KeyPress(KeyConfirm), []string{"ab", "c", "d"}, 2, 0},
		{KeyPress(KeyLeft), []string{"ab", "c", "d"}, 1, 1},
		{KeyPress(KeyUp), []string{"ab", "c", "d"}, 0, 1},
		{TypeRune('z'), []string{"azb", "c", "d"}, 0, 2},
		{Event{}, []string{"azb", "c", "d"}, 0, 2},
	}
	for i, s := range steps {
		e.Dispatch(s.ev)
		b := e.Buffer()
		if !linesEqual(b.Lines, s.lines) || b.Cursor.Line != s.line || b.Cursor.Col != s.col {
			t.Fatalf("step %d: got %q (%d,%d), want %q (%d,%d)",
				i, b.Lines, b.Cursor.Line, b.Cursor.Col, s.lines, s.line, s.col)
		}
	}
}

func TestToggleAndExitKeys(t *testing.T) {
	e, _ := newTestEditor(t, nil)

	e.Dispatch(KeyPress(KeyToggleKeyboard))
	if !e.Keyboard().Visible {
		t.Fatal("toggle key should show the keyboard")
	}
	if e.Quit() {
		t.Fatal("quit set too early")
	}
	e.Dispatch(KeyPress(KeyExit))
	if !e.Quit() {
		t.Fatal("exit key should end the loop")
	}
}

func TestSaveAndLoadKeys(t *testing.T) {
	e, storage := newTestEditor(t, nil)
	e.Dispatch(TypeRune('x'))
	e.Dispatch(KeyPress(KeySave))
	if storage.files["example.py"] != "x" {
		t.Fatalf("save key wrote %q", storage.files["example.py"])
	}

	storage.files["example.py"] = "reloaded"
	e.Dispatch(KeyPress(KeyLoad))
	if !linesEqual(e.Buffer().Lines, []string{"reloaded"}) {
		t.Fatalf("load key read %q", e.Buffer().Lines)
	}
}

func TestCopyAndPaste(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	clip := &clipboardx.Memory{}
	e.SetClipboard(clip)
	e.buf = buffer.NewBufferFromLines([]string{"x = 1"})

	e.Dispatch(KeyPress(KeyCopy))
	if got, _ := clip.Read(); got != "x = 1\n" {
		t.Fatalf("copied %q", got)
	}
	if got := e.StatusBar().Message; got != "Copied line" {
		t.Fatalf("status %q", got)
	}

	e.Dispatch(KeyPress(KeyPaste))
	if !linesEqual(e.Buffer().Lines, []string{"x = 1", "x = 1"}) {
		t.Fatalf("paste gave %q", e.Buffer().Lines)
	}
	if c := e.Buffer().Cursor; c.Line != 1 || c.Col != 0 {
		t.Fatalf("cursor after paste %+v", c)
	}
}

func TestDispatchAlwaysLeavesValidCursor(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.Keyboard().Toggle()
	events := []Event{
		PointerDown(-5, -5), PointerDown(400, 600), PointerDrag(160, 200),
		KeyPress(KeyDelete), KeyPress(KeyLeft), KeyPress(KeyUp),
		PointerDown(5, gridTop+10), KeyPress(KeyConfirm), KeyPress(KeyDown),
		PointerDown(300, controlRow+10), KeyPress(KeyRight), PointerDown(60, controlRow+10),
	}
	for i := 0; i < 50; i++ {
		for _, ev := range events {
			e.Dispatch(ev)
			b := e.Buffer()
			if b.Cursor.Line < 0 || b.Cursor.Line >= b.LineCount() {
				t.Fatalf("line out of range: %+v", b.Cursor)
			}
			if b.Cursor.Col < 0 || b.Cursor.Col > buffer.RuneLen(b.Lines[b.Cursor.Line]) {
				t.Fatalf("column out of range: %+v", b.Cursor)
			}
		}
	}
}

func TestTextAreaTouchUsesMeasurer(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.buf = buffer.NewBufferFromLines([]string{"iiiiWW"})
	// Narrow 'i', wide 'W'.
	e.SetMeasurer(buffer.MeasureFunc(func(s string) int {
		w := 0
		for _, r := range s {
			if r == 'W' {
				w += 16
			} else {
				w += 4
			}
		}
		return w
	}))

	e.Dispatch(PointerDown(5+16+17, 35))

	if c := e.Buffer().Cursor; c.Col != 5 {
		t.Fatalf("expected column 5, got %d", c.Col)
	}
}
