package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

// Layout is the pixel geometry of the editor. It is built once at startup
// and shared read-only by every component that needs coordinates.
type Layout struct {
	ScreenW    int `json:"screen_w"`
	ScreenH    int `json:"screen_h"`
	HeaderH    int `json:"header_h"`
	KeyboardH  int `json:"keyboard_h"`
	TabH       int `json:"tab_h"`
	RowH       int `json:"row_h"`
	LineH      int `json:"line_h"`
	TextMargin int `json:"text_margin"`

	// Header menu regions, measured from the left (load, save) and the
	// right (keyboard toggle) screen edges.
	MenuLoadW     int `json:"menu_load_w"`
	MenuSaveW     int `json:"menu_save_w"`
	MenuKeyboardW int `json:"menu_keyboard_w"`

	// Bottom control row of the virtual keyboard; enter takes the rest.
	CapsW      int `json:"caps_w"`
	BackspaceW int `json:"backspace_w"`
	SpaceW     int `json:"space_w"`

	// Pixel size of one terminal cell.
	CellW int `json:"cell_w"`
	CellH int `json:"cell_h"`
}

// KeyboardTop returns the y coordinate of the keyboard's top edge.
func (l *Layout) KeyboardTop() int {
	return l.ScreenH - l.KeyboardH
}

// TextAreaH returns the height of the text area below the header.
func (l *Layout) TextAreaH(keyboardVisible bool) int {
	h := l.ScreenH - l.HeaderH
	if keyboardVisible {
		h -= l.KeyboardH
	}
	return h
}

// VisibleLines returns how many text lines fit in the text area.
func (l *Layout) VisibleLines(keyboardVisible bool) int {
	n := l.TextAreaH(keyboardVisible) / l.LineH
	if n < 1 {
		n = 1
	}
	return n
}

// MaxKeysPerRow is the widest virtual keyboard row. Every key must be at
// least one pixel wide.
const MaxKeysPerRow = 10

func (l *Layout) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"screen_w", l.ScreenW}, {"screen_h", l.ScreenH}, {"header_h", l.HeaderH},
		{"keyboard_h", l.KeyboardH}, {"tab_h", l.TabH}, {"row_h", l.RowH},
		{"line_h", l.LineH}, {"caps_w", l.CapsW}, {"backspace_w", l.BackspaceW},
		{"space_w", l.SpaceW}, {"cell_w", l.CellW}, {"cell_h", l.CellH},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("layout: %s must be positive, got %d", c.name, c.v)
		}
	}
	if l.ScreenW < MaxKeysPerRow {
		return fmt.Errorf("layout: screen_w %d narrower than %d keys", l.ScreenW, MaxKeysPerRow)
	}
	if l.HeaderH+l.KeyboardH > l.ScreenH {
		return fmt.Errorf("layout: header and keyboard (%d) taller than screen (%d)", l.HeaderH+l.KeyboardH, l.ScreenH)
	}
	if l.CapsW+l.BackspaceW+l.SpaceW >= l.ScreenW {
		return fmt.Errorf("layout: control row leaves no room for enter")
	}
	return nil
}

type Config struct {
	Filename        string `json:"filename"`
	Theme           string `json:"theme"`
	SyntaxStyle     string `json:"syntax_style"`
	StatusFrames    int    `json:"status_frames"`
	FrameIntervalMS int    `json:"frame_interval_ms"`
	WatchFile       bool   `json:"watch_file"`
	Layout          Layout `json:"layout"`
}

type ColorScheme struct {
	Name        string
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FilenameFg  tcell.Color
	KeyboardBg  tcell.Color
	KeyBg       tcell.Color
	KeySpecial  tcell.Color
	KeyBorder   tcell.Color
	KeyActive   tcell.Color
	Cursor      tcell.Color
	StatusFg    tcell.Color
	StatusError tcell.Color
}

var Themes = map[string]*ColorScheme{
	"light": {
		Name:        "Light",
		Background:  tcell.ColorWhite,
		Foreground:  tcell.ColorBlack,
		HeaderBg:    tcell.ColorLightGray,
		HeaderFg:    tcell.ColorBlack,
		FilenameFg:  tcell.ColorBlue,
		KeyboardBg:  tcell.ColorLightGray,
		KeyBg:       tcell.ColorWhite,
		KeySpecial:  tcell.NewRGBColor(221, 221, 221),
		KeyBorder:   tcell.ColorDarkGray,
		KeyActive:   tcell.ColorBlue,
		Cursor:      tcell.ColorBlack,
		StatusFg:    tcell.ColorRed,
		StatusError: tcell.ColorRed,
	},
	"dark": {
		Name:        "Dark",
		Background:  tcell.ColorBlack,
		Foreground:  tcell.ColorWhite,
		HeaderBg:    tcell.ColorDarkBlue,
		HeaderFg:    tcell.ColorWhite,
		FilenameFg:  tcell.ColorYellow,
		KeyboardBg:  tcell.NewRGBColor(40, 40, 40),
		KeyBg:       tcell.NewRGBColor(60, 60, 60),
		KeySpecial:  tcell.NewRGBColor(90, 90, 90),
		KeyBorder:   tcell.ColorGray,
		KeyActive:   tcell.ColorBlue,
		Cursor:      tcell.ColorWhite,
		StatusFg:    tcell.ColorGreen,
		StatusError: tcell.ColorRed,
	},
	"monokai": {
		Name:        "Monokai",
		Background:  tcell.NewRGBColor(39, 40, 34),
		Foreground:  tcell.NewRGBColor(248, 248, 242),
		HeaderBg:    tcell.NewRGBColor(73, 72, 62),
		HeaderFg:    tcell.NewRGBColor(248, 248, 242),
		FilenameFg:  tcell.NewRGBColor(102, 217, 239),
		KeyboardBg:  tcell.NewRGBColor(39, 40, 34),
		KeyBg:       tcell.NewRGBColor(73, 72, 62),
		KeySpecial:  tcell.NewRGBColor(117, 113, 94),
		KeyBorder:   tcell.NewRGBColor(144, 144, 128),
		KeyActive:   tcell.NewRGBColor(102, 217, 239),
		Cursor:      tcell.NewRGBColor(248, 248, 240),
		StatusFg:    tcell.NewRGBColor(166, 226, 46),
		StatusError: tcell.NewRGBColor(249, 38, 114),
	},
}

func DefaultLayout() Layout {
	return Layout{
		ScreenW:       320,
		ScreenH:       528,
		HeaderH:       30,
		KeyboardH:     260,
		TabH:          30,
		RowH:          45,
		LineH:         20,
		TextMargin:    5,
		MenuLoadW:     60,
		MenuSaveW:     60,
		MenuKeyboardW: 60,
		CapsW:         50,
		BackspaceW:    50,
		SpaceW:        160,
		CellW:         8,
		CellH:         20,
	}
}

func Default() *Config {
	return &Config{
		Filename:        "example.py",
		Theme:           "light",
		SyntaxStyle:     "",
		StatusFrames:    50,
		FrameIntervalMS: 100,
		WatchFile:       true,
		Layout:          DefaultLayout(),
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["light"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ced", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// First run: write the defaults so there is a file to edit.
		if os.IsNotExist(err) {
			cfg := Default()
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.StatusFrames <= 0 {
		cfg.StatusFrames = Default().StatusFrames
	}
	if cfg.FrameIntervalMS <= 0 {
		cfg.FrameIntervalMS = Default().FrameIntervalMS
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
