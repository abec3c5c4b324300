package ui

import (
	"unicode"

	"ced/config"
)

type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyChar
	KeyTab
	KeyShift
	KeyBackspace
	KeyEnter
)

// Key is the logical result of a keyboard touch. Char is set for KeyChar,
// Tab for KeyTab.
type Key struct {
	Kind KeyKind
	Char rune
	Tab  int
}

const (
	TabAlpha = iota
	TabSymbol
	TabMath
	tabCount
)

var TabNames = [tabCount]string{"abc", "Sym", "Math"}

// Layouts holds the key grid of every tab, four rows each.
var Layouts = [tabCount][]string{
	TabAlpha:  {"1234567890", "qwertyuiop", "asdfghjkl:", "zxcvbnm,._"},
	TabSymbol: {"()[]{}", "=+-*/%", "'\"#\\_", "@?!$;"},
	TabMath:   {"<>!=&|", "^~`", "01234", "56789"},
}

const gridRows = 4

type Keyboard struct {
	Visible bool
	Tab     int
	Shift   bool
	Theme   *config.ColorScheme

	layout *config.Layout
	rows   [tabCount][][]rune
}

func NewKeyboard(layout *config.Layout) *Keyboard {
	k := &Keyboard{layout: layout}
	for t, rows := range Layouts {
		for _, row := range rows {
			k.rows[t] = append(k.rows[t], []rune(row))
		}
	}
	return k
}

func (k *Keyboard) Toggle() {
	k.Visible = !k.Visible
}

// Top is the y coordinate of the keyboard's upper edge.
func (k *Keyboard) Top() int {
	return k.layout.KeyboardTop()
}

func (k *Keyboard) gridTop() int {
	return k.Top() + k.layout.TabH
}

func (k *Keyboard) tabWidth() int {
	return k.layout.ScreenW / tabCount
}

func (k *Keyboard) label(r rune) rune {
	if k.Shift && k.Tab == TabAlpha {
		return unicode.ToUpper(r)
	}
	return r
}

// HitTest resolves a touch at (x, y) to a key without changing any state.
func (k *Keyboard) HitTest(x, y int) Key {
	if !k.Visible || y < k.Top() || x < 0 {
		return Key{}
	}
	l := k.layout

	if y < k.gridTop() {
		if x >= l.ScreenW {
			return Key{}
		}
		// The last tab absorbs the division remainder.
		idx := x / k.tabWidth()
		if idx >= tabCount {
			idx = tabCount - 1
		}
		return Key{Kind: KeyTab, Tab: idx}
	}

	row := (y - k.gridTop()) / l.RowH
	if row < gridRows {
		keys := k.rows[k.Tab][row]
		col := x / (l.ScreenW / len(keys))
		if col >= len(keys) {
			return Key{}
		}
		return Key{Kind: KeyChar, Char: k.label(keys[col])}
	}
	if row > gridRows {
		return Key{}
	}

	switch {
	case x < l.CapsW:
		return Key{Kind: KeyShift}
	case x < l.CapsW+l.BackspaceW:
		return Key{Kind: KeyBackspace}
	case x < l.CapsW+l.BackspaceW+l.SpaceW:
		return Key{Kind: KeyChar, Char: ' '}
	case x < l.ScreenW:
		return Key{Kind: KeyEnter}
	}
	return Key{}
}

// Press hit-tests (x, y) and applies tab and shift changes.
func (k *Keyboard) Press(x, y int) Key {
	key := k.HitTest(x, y)
	switch key.Kind {
	case KeyTab:
		k.Tab = key.Tab
	case KeyShift:
		k.Shift = !k.Shift
	}
	return key
}

func (k *Keyboard) theme() *config.ColorScheme {
	if k.Theme == nil {
		return config.Themes["light"]
	}
	return k.Theme
}

func (k *Keyboard) drawKey(c Canvas, x, y, w, h int, label string, special, pressed bool) {
	theme := k.theme()
	bg := theme.KeyBg
	switch {
	case pressed:
		bg = theme.KeyActive
	case special:
		bg = theme.KeySpecial
	}
	c.DrawRect(x+1, y+1, x+w-1, y+h-1, bg)
	c.DrawLine(x, y, x+w-1, y, theme.KeyBorder)
	c.DrawLine(x, y, x, y+h-1, theme.KeyBorder)
	c.DrawText(x+(w-c.MeasureWidth(label))/2, y+(h-k.layout.LineH)/2, label, theme.Foreground)
}

func (k *Keyboard) Draw(c Canvas) {
	if !k.Visible {
		return
	}
	l := k.layout
	theme := k.theme()
	top := k.Top()

	c.DrawRect(0, top, l.ScreenW, l.ScreenH, theme.KeyboardBg)
	c.DrawLine(0, top, l.ScreenW-1, top, theme.KeyBorder)

	tabW := k.tabWidth()
	for i, name := range TabNames {
		bg := theme.KeySpecial
		if i == k.Tab {
			bg = theme.KeyboardBg
		}
		tx := i * tabW
		w := tabW
		if i == tabCount-1 {
			w = l.ScreenW - tx
		}
		c.DrawRect(tx, top, tx+w, top+l.TabH, bg)
		c.DrawText(tx+(w-c.MeasureWidth(name))/2, top+(l.TabH-l.LineH)/2, name, theme.Foreground)
	}

	for r, keys := range k.rows[k.Tab] {
		kw := l.ScreenW / len(keys)
		ky := k.gridTop() + r*l.RowH
		for col, ch := range keys {
			w := kw
			if col == len(keys)-1 {
				w = l.ScreenW - col*kw
			}
			k.drawKey(c, col*kw, ky, w, l.RowH, string(k.label(ch)), false, false)
		}
	}

	y := k.gridTop() + gridRows*l.RowH
	x := 0
	k.drawKey(c, x, y, l.CapsW, l.RowH, "CAPS", true, k.Shift)
	x += l.CapsW
	k.drawKey(c, x, y, l.BackspaceW, l.RowH, "<-", true, false)
	x += l.BackspaceW
	k.drawKey(c, x, y, l.SpaceW, l.RowH, "Space", false, false)
	x += l.SpaceW
	k.drawKey(c, x, y, l.ScreenW-x, l.RowH, "EXE", true, false)
}
