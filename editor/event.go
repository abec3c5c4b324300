package editor

import (
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

type EventKind int

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerDrag
	EventKeyDown
)

// KeyCode is a logical key from the physical keyboard.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
	KeyConfirm
	KeyDot
	KeyToggleKeyboard
	KeyExit
	KeyRune
	KeySave
	KeyLoad
	KeyCopy
	KeyPaste
)

// Event is one input interaction. X and Y are pixel coordinates for
// pointer events; Key (and Rune for KeyRune) are set for key events.
type Event struct {
	Kind EventKind
	X, Y int
	Key  KeyCode
	Rune rune
}

func PointerDown(x, y int) Event { return Event{Kind: EventPointerDown, X: x, Y: y} }
func PointerDrag(x, y int) Event { return Event{Kind: EventPointerDrag, X: x, Y: y} }
func KeyPress(k KeyCode) Event   { return Event{Kind: EventKeyDown, Key: k} }
func TypeRune(r rune) Event      { return Event{Kind: EventKeyDown, Key: KeyRune, Rune: r} }

var termKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyBackspace:  KeyDelete,
	tcell.KeyBackspace2: KeyDelete,
	tcell.KeyEnter:      KeyConfirm,
	tcell.KeyF1:         KeyToggleKeyboard,
	tcell.KeyCtrlK:      KeyToggleKeyboard,
	tcell.KeyEscape:     KeyExit,
	tcell.KeyCtrlQ:      KeyExit,
	tcell.KeyCtrlS:      KeySave,
	tcell.KeyCtrlO:      KeyLoad,
	tcell.KeyCtrlC:      KeyCopy,
	tcell.KeyCtrlV:      KeyPaste,
	tcell.KeyF2:         KeyDot,
}

// translateKey converts a terminal key press into an Event.
func translateKey(ev *tcell.EventKey) Event {
	if ev.Key() == tcell.KeyRune {
		return TypeRune(ev.Rune())
	}
	if code, ok := termKeys[ev.Key()]; ok {
		return KeyPress(code)
	}
	return Event{}
}

// pointerState turns terminal mouse reports, which carry button state
// rather than transitions, into down and drag events.
type pointerState struct {
	down bool
}

func (p *pointerState) translate(ev *tcell.EventMouse, toPixel func(col, row int) (int, int)) Event {
	if ev.Buttons()&tcell.Button1 == 0 {
		p.down = false
		return Event{}
	}
	x, y := toPixel(ev.Position())
	if p.down {
		return PointerDrag(x, y)
	}
	p.down = true
	return PointerDown(x, y)
}

// FileChangedEvent reports an external change to the edited file.
type FileChangedEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}
