package editor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ced/ui"
)

// SessionData is the per-file view state restored on the next start.
type SessionData struct {
	Path            string `json:"path"`
	Line            int    `json:"cursor_line"`
	Col             int    `json:"cursor_col"`
	ScrollY         int    `json:"scroll_y"`
	KeyboardVisible bool   `json:"keyboard_visible"`
	KeyboardTab     int    `json:"keyboard_tab"`
}

func sessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "ced", "sessions")
}

func sessionPath(file string) string {
	hash := sha256.Sum256([]byte(file))
	return filepath.Join(sessionDir(), fmt.Sprintf("%x.json", hash[:8]))
}

func (e *Editor) SaveSession() {
	target := e.watchedPath()
	path := sessionPath(target)

	session := SessionData{
		Path:            target,
		Line:            e.buf.Cursor.Line,
		Col:             e.buf.Cursor.Col,
		ScrollY:         e.buf.ScrollY,
		KeyboardVisible: e.keyboard.Visible,
		KeyboardTab:     e.keyboard.Tab,
	}

	os.MkdirAll(sessionDir(), 0755)

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(path, data, 0644)
}

// RestoreSession applies the saved view state of the edited file, clamped
// to the current document.
func (e *Editor) RestoreSession() bool {
	target := e.watchedPath()
	data, err := os.ReadFile(sessionPath(target))
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return false
	}
	if session.Path != target {
		return false
	}

	e.buf.SetCursor(session.Line, session.Col)
	e.buf.ScrollY = max(session.ScrollY, 0)
	if e.buf.ScrollY > e.buf.Cursor.Line {
		e.buf.ScrollY = e.buf.Cursor.Line
	}
	e.keyboard.Visible = session.KeyboardVisible
	if session.KeyboardTab >= 0 && session.KeyboardTab < len(ui.TabNames) {
		e.keyboard.Tab = session.KeyboardTab
	}
	return true
}
