package ui

import (
	"ced/config"
)

type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuLoad
	MenuSave
	MenuKeyboard
)

func (a MenuAction) String() string {
	switch a {
	case MenuLoad:
		return "load"
	case MenuSave:
		return "save"
	case MenuKeyboard:
		return "keyboard"
	default:
		return "none"
	}
}

// Header is the menu band at the top of the screen: Load and Save on the
// left, the file name in the middle and the keyboard toggle on the right.
type Header struct {
	Filename string
	Language string
	Modified bool
	Theme    *config.ColorScheme

	layout *config.Layout
}

func NewHeader(layout *config.Layout) *Header {
	return &Header{layout: layout}
}

// Contains reports whether y falls inside the header band.
func (h *Header) Contains(y int) bool {
	return y >= 0 && y < h.layout.HeaderH
}

func (h *Header) HitTest(x, y int) MenuAction {
	l := h.layout
	if !h.Contains(y) {
		return MenuNone
	}
	switch {
	case x > l.ScreenW-l.MenuKeyboardW:
		return MenuKeyboard
	case x < 0:
		return MenuNone
	case x < l.MenuLoadW:
		return MenuLoad
	case x < l.MenuLoadW+l.MenuSaveW:
		return MenuSave
	}
	return MenuNone
}

func (h *Header) title() string {
	title := h.Filename
	if title == "" {
		title = "untitled"
	}
	if h.Modified {
		title = "*" + title
	}
	return title
}

func (h *Header) Draw(c Canvas) {
	l := h.layout
	theme := h.Theme
	if theme == nil {
		theme = config.Themes["light"]
	}

	c.DrawRect(0, 0, l.ScreenW, l.HeaderH, theme.HeaderBg)
	c.DrawLine(0, l.HeaderH, l.ScreenW-1, l.HeaderH, theme.HeaderFg)

	textY := (l.HeaderH - l.LineH) / 2
	c.DrawText(10, textY, "Load", theme.HeaderFg)
	c.DrawText(l.MenuLoadW+10, textY, "Save", theme.HeaderFg)
	c.DrawText(l.ScreenW-l.MenuKeyboardW+10, textY, "KBD", theme.HeaderFg)

	// The title sits between the Save and KBD regions; the language tag
	// is dropped when it does not fit.
	left := l.MenuLoadW + l.MenuSaveW
	right := l.ScreenW - l.MenuKeyboardW
	title := h.title()
	if h.Language != "" {
		if tagged := title + " [" + h.Language + "]"; c.MeasureWidth(tagged) <= right-left {
			title = tagged
		}
	}
	for runes := []rune(title); c.MeasureWidth(title) > right-left && len(runes) > 0; {
		runes = runes[:len(runes)-1]
		title = string(runes)
	}
	x := left + (right-left-c.MeasureWidth(title))/2
	if x < left {
		x = left
	}
	c.DrawText(x, textY, title, theme.FilenameFg)
}
