package editor

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"ced/buffer"
	"ced/clipboardx"
	"ced/config"
	"ced/highlight"
	"ced/ui"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Editor is a single editing session: one document, the virtual keyboard,
// the header menu and the status line.
type Editor struct {
	cfg       *config.Config
	layout    *config.Layout
	theme     *config.ColorScheme
	palette   *highlight.Palette
	storage   buffer.Storage
	measure   buffer.Measurer
	clipboard clipboardx.Clipboard

	buf       *buffer.Buffer
	filename  string
	keyboard  *ui.Keyboard
	header    *ui.Header
	statusBar *ui.StatusBar

	quit    bool
	pointer pointerState

	// File watching
	fileWatcher  *fsnotify.Watcher
	lastSaveTime time.Time
}

func New(cfg *config.Config, storage buffer.Storage) *Editor {
	layout := &cfg.Layout
	theme := cfg.GetTheme()
	cellW := layout.CellW

	e := &Editor{
		cfg:       cfg,
		layout:    layout,
		theme:     theme,
		palette:   highlight.NewPalette(cfg.SyntaxStyle, theme.Foreground),
		storage:   storage,
		buf:       buffer.NewBuffer(),
		keyboard:  ui.NewKeyboard(layout),
		header:    ui.NewHeader(layout),
		statusBar: ui.NewStatusBar(layout),
		clipboard: clipboardx.NewSystem(),
		measure: buffer.MeasureFunc(func(text string) int {
			return runewidth.StringWidth(text) * cellW
		}),
	}
	e.keyboard.Theme = theme
	e.header.Theme = theme
	e.statusBar.Theme = theme
	e.SetFilename(cfg.Filename)
	return e
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Keyboard() *ui.Keyboard { return e.keyboard }

func (e *Editor) StatusBar() *ui.StatusBar { return e.statusBar }

func (e *Editor) Filename() string { return e.filename }

// Quit reports whether the exit key has been pressed.
func (e *Editor) Quit() bool { return e.quit }

func (e *Editor) SetClipboard(c clipboardx.Clipboard) { e.clipboard = c }

// SetMeasurer replaces the text width function used to map a pixel x
// coordinate to a column.
func (e *Editor) SetMeasurer(m buffer.Measurer) { e.measure = m }

func (e *Editor) SetFilename(name string) {
	e.filename = name
	e.header.Filename = filepath.Base(name)
	e.header.Language = highlight.DetectLanguage(name)
}

func (e *Editor) setTemporaryMessage(msg string) {
	e.statusBar.Set(msg, e.cfg.StatusFrames, false)
}

func (e *Editor) setTemporaryError(msg string) {
	e.statusBar.Set(msg, e.cfg.StatusFrames, true)
}

// LoadFile replaces the document with the configured file. A failed load
// keeps the current document and reports through the status line.
func (e *Editor) LoadFile() {
	err := e.buf.Load(e.storage, e.filename)
	switch {
	case err == nil:
		e.setTemporaryMessage("Loaded " + filepath.Base(e.filename))
	case errors.Is(err, fs.ErrNotExist):
		e.setTemporaryError("File not found")
	default:
		e.setTemporaryError("Load Error")
	}
	e.buf.Clamp()
}

// SaveFile writes the document to the configured file.
func (e *Editor) SaveFile() {
	e.buf.Path = e.filename
	if err := e.buf.Save(e.storage); err != nil {
		e.setTemporaryError("Save Error")
		return
	}
	e.lastSaveTime = time.Now()
	e.setTemporaryMessage("Saved " + filepath.Base(e.filename))
}

// Frame runs one display cycle: scroll the cursor into view, draw, then
// age the status message.
func (e *Editor) Frame(c ui.Canvas) {
	e.redraw(c)
	e.statusBar.Tick()
}

// redraw draws without consuming a status frame; input events use it so
// typing does not shorten the message lifetime.
func (e *Editor) redraw(c ui.Canvas) {
	e.buf.ScrollToCursor(e.layout.VisibleLines(e.keyboard.Visible))
	e.header.Modified = e.buf.Dirty
	e.Draw(c)
}

// Run opens a terminal screen and processes events until the exit key.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(e.theme.Background).Foreground(e.theme.Foreground))
	screen.Clear()

	canvas := ui.NewTermCanvas(screen, e.layout.CellW, e.layout.CellH)
	e.SetMeasurer(canvas)

	e.LoadFile()
	e.RestoreSession()

	if e.cfg.WatchFile {
		e.setupFileWatcher(screen)
	}
	stop := make(chan struct{})
	go e.frameTicker(screen, stop)

	e.redraw(canvas)
	screen.Show()
	for !e.quit {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			e.Dispatch(translateKey(ev))
		case *tcell.EventMouse:
			e.Dispatch(e.pointer.translate(ev, canvas.PixelAt))
		case *FileChangedEvent:
			e.handleFileChanged(ev)
		case *tcell.EventInterrupt:
			e.Frame(canvas)
			screen.Show()
			continue
		}
		e.redraw(canvas)
		screen.Show()
	}

	close(stop)
	e.SaveSession()
	if e.fileWatcher != nil {
		e.fileWatcher.Close()
	}
	screen.Clear()
	screen.Fini()
	return nil
}

// frameTicker wakes the event loop once per frame so the status message
// expires even when no input arrives.
func (e *Editor) frameTicker(screen tcell.Screen, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Duration(e.cfg.FrameIntervalMS) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}
