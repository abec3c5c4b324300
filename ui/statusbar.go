package ui

import (
	"ced/config"
)

// StatusBar shows a transient message for a fixed number of frames.
type StatusBar struct {
	Message   string
	Remaining int // frames left before the message clears
	IsError   bool
	Theme     *config.ColorScheme

	layout *config.Layout
}

func NewStatusBar(layout *config.Layout) *StatusBar {
	return &StatusBar{layout: layout}
}

// Set shows msg for the given number of frames.
func (s *StatusBar) Set(msg string, frames int, isError bool) {
	s.Message = msg
	s.Remaining = frames
	s.IsError = isError
}

// Active reports whether a message is being shown.
func (s *StatusBar) Active() bool {
	return s.Remaining > 0 && s.Message != ""
}

// Tick consumes one frame and clears the message when it runs out.
func (s *StatusBar) Tick() {
	if s.Remaining <= 0 {
		return
	}
	s.Remaining--
	if s.Remaining == 0 {
		s.Message = ""
		s.IsError = false
	}
}

func (s *StatusBar) Draw(c Canvas) {
	if !s.Active() {
		return
	}
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["light"]
	}
	fg := theme.StatusFg
	if s.IsError {
		fg = theme.StatusError
	}
	c.DrawText(10, s.layout.ScreenH-s.layout.LineH, s.Message, fg)
}
