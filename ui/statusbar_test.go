package ui

import (
	"strings"
	"testing"

	"ced/config"
)

func TestStatusExpiresAfterFrames(t *testing.T) {
	l := config.DefaultLayout()
	s := NewStatusBar(&l)
	s.Set("Saved a.py", 3, false)

	for i := 0; i < 2; i++ {
		s.Tick()
		if !s.Active() {
			t.Fatalf("expected message still active after %d ticks", i+1)
		}
	}
	s.Tick()
	if s.Active() || s.Message != "" || s.Remaining != 0 {
		t.Fatalf("expected message cleared, got %+v", s)
	}
	s.Tick()
	if s.Remaining != 0 {
		t.Fatalf("remaining must not go negative, got %d", s.Remaining)
	}
}

func TestStatusDrawsOnBottomLine(t *testing.T) {
	screen, c := newSimCanvas(t, 40, 27)
	l := config.DefaultLayout()
	s := NewStatusBar(&l)
	s.Set("File not found", 5, true)
	s.Draw(c)

	if got := rowText(screen, (l.ScreenH-l.LineH)/20, 0, 40); !strings.Contains(got, "File not found") {
		t.Fatalf("expected status text on bottom row, got %q", got)
	}
}
