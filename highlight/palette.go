package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// Palette maps token categories to display colors.
type Palette struct {
	colors [Operator + 1]tcell.Color
}

var magenta = tcell.NewRGBColor(255, 0, 255)

// DefaultPalette uses the fixed category colors; fg is used for plain text.
func DefaultPalette(fg tcell.Color) *Palette {
	p := &Palette{}
	p.colors[Plain] = fg
	p.colors[Keyword] = tcell.ColorBlue
	p.colors[String] = tcell.ColorGreen
	p.colors[Comment] = tcell.ColorGray
	p.colors[Number] = tcell.ColorRed
	p.colors[Operator] = magenta
	return p
}

var chromaTypes = map[Category]chroma.TokenType{
	Plain:    chroma.Text,
	Keyword:  chroma.Keyword,
	String:   chroma.LiteralString,
	Comment:  chroma.Comment,
	Number:   chroma.LiteralNumber,
	Operator: chroma.Operator,
}

// NewPalette derives category colors from the named chroma style. An empty
// or unknown style name yields DefaultPalette. Categories the style leaves
// uncolored keep their default color.
func NewPalette(styleName string, fg tcell.Color) *Palette {
	p := DefaultPalette(fg)
	if styleName == "" {
		return p
	}
	style, ok := styles.Registry[styleName]
	if !ok || style == nil {
		return p
	}
	for cat, tt := range chromaTypes {
		entry := style.Get(tt)
		if !entry.Colour.IsSet() {
			continue
		}
		p.colors[cat] = tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue()))
	}
	return p
}

func (p *Palette) Color(c Category) tcell.Color {
	if c < Plain || c > Operator {
		return p.colors[Plain]
	}
	return p.colors[c]
}

// DetectLanguage names the language of filename using chroma's lexer registry.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	config := lexer.Config()
	if config == nil {
		return ""
	}
	return config.Name
}
