package editor

import (
	"path/filepath"
	"time"

	"ced/buffer"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

const (
	watchDebounce   = 100 * time.Millisecond
	saveGracePeriod = time.Second
)

// watchedPath is the absolute path of the edited file, as fsnotify reports it.
func (e *Editor) watchedPath() string {
	abs, err := filepath.Abs(e.filename)
	if err != nil {
		return e.filename
	}
	return abs
}

// setupFileWatcher watches the directory holding the edited file and posts
// a FileChangedEvent to screen for every change to the file itself. Editors
// commonly save by rename, so the directory is watched rather than the file.
func (e *Editor) setupFileWatcher(screen tcell.Screen) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// Continue without watching
		return
	}
	target := e.watchedPath()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return
	}
	e.fileWatcher = watcher

	go func() {
		debounceTimer := time.NewTimer(watchDebounce)
		debounceTimer.Stop()
		var pending []fsnotify.Event

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				pending = append(pending, event)
				debounceTimer.Reset(watchDebounce)

			case <-debounceTimer.C:
				for _, event := range pending {
					ev := &FileChangedEvent{Path: event.Name, Op: event.Op}
					ev.SetEventNow()
					_ = screen.PostEvent(ev)
				}
				pending = nil

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// handleFileChanged reacts to an external change of the edited file. A clean
// document is reloaded in place; a dirty one only gets a warning.
func (e *Editor) handleFileChanged(ev *FileChangedEvent) {
	name := filepath.Base(e.filename)
	switch {
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		e.setTemporaryError("Warning: " + name + " was removed")

	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
		// Our own save.
		if !e.lastSaveTime.IsZero() && ev.When().Sub(e.lastSaveTime) <= saveGracePeriod {
			return
		}
		if e.buf.Dirty {
			e.setTemporaryError(name + " modified externally")
			return
		}
		reloaded := buffer.NewBuffer()
		if err := reloaded.Load(e.storage, e.filename); err != nil {
			return
		}
		reloaded.SetCursor(e.buf.Cursor.Line, e.buf.Cursor.Col)
		reloaded.ScrollY = e.buf.ScrollY
		e.buf = reloaded
		e.setTemporaryMessage("Reloaded " + name)
	}
}
