package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is the edited document: a non-empty list of lines, the cursor and
// the first visible row. Columns count runes, not bytes.
type Buffer struct {
	Lines   []string
	Path    string
	Cursor  Cursor
	ScrollY int
	Dirty   bool

	savedSnapshot string
}

func NewBuffer() *Buffer {
	return &Buffer{
		Lines: []string{""},
	}
}

// NewBufferFromLines copies lines into a new buffer. An empty slice yields
// a single empty line.
func NewBufferFromLines(lines []string) *Buffer {
	b := NewBuffer()
	if len(lines) > 0 {
		b.Lines = append([]string(nil), lines...)
	}
	b.savedSnapshot = b.currentSnapshot()
	return b
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// splitAt splits s before the rune at index col.
func splitAt(s string, col int) (string, string) {
	if col <= 0 {
		return "", s
	}
	i := 0
	for byteIdx := range s {
		if i == col {
			return s[:byteIdx], s[byteIdx:]
		}
		i++
	}
	return s, ""
}

func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// CurrentLine returns the line under the cursor.
func (b *Buffer) CurrentLine() string {
	b.clampCursor()
	return b.Lines[b.Cursor.Line]
}

func (b *Buffer) currentSnapshot() string {
	return strings.Join(b.Lines, "\n")
}

func (b *Buffer) MarkSaved() {
	b.savedSnapshot = b.currentSnapshot()
	b.Dirty = false
}

func (b *Buffer) RecomputeDirty() {
	b.Dirty = b.currentSnapshot() != b.savedSnapshot
}

// Clamp re-establishes the cursor and viewport invariants.
func (b *Buffer) Clamp() {
	b.clampCursor()
}

func (b *Buffer) clampCursor() {
	if len(b.Lines) == 0 {
		b.Lines = []string{""}
	}
	if b.Cursor.Line < 0 {
		b.Cursor.Line = 0
	}
	if b.Cursor.Line >= len(b.Lines) {
		b.Cursor.Line = len(b.Lines) - 1
	}
	lineLen := RuneLen(b.Lines[b.Cursor.Line])
	if b.Cursor.Col < 0 {
		b.Cursor.Col = 0
	}
	if b.Cursor.Col > lineLen {
		b.Cursor.Col = lineLen
	}
	if b.ScrollY < 0 {
		b.ScrollY = 0
	}
}

// SetCursor moves the cursor to (line, col), clamped into the document.
func (b *Buffer) SetCursor(line, col int) {
	b.Cursor = Cursor{Line: line, Col: col}
	b.clampCursor()
}

func (b *Buffer) InsertChar(ch rune) {
	b.clampCursor()
	left, right := splitAt(b.Lines[b.Cursor.Line], b.Cursor.Col)
	b.Lines[b.Cursor.Line] = left + string(ch) + right
	b.Cursor.Col++
	b.Dirty = true
	b.clampCursor()
}

// InsertText types s at the cursor. '\n' splits the line, '\r' is dropped.
func (b *Buffer) InsertText(s string) {
	for _, ch := range s {
		switch ch {
		case '\r':
		case '\n':
			b.NewLine()
		default:
			b.InsertChar(ch)
		}
	}
}

// DeleteChar removes the rune left of the cursor, joining with the previous
// line when the cursor is at column 0.
func (b *Buffer) DeleteChar() {
	b.clampCursor()
	if b.Cursor.Col > 0 {
		left, right := splitAt(b.Lines[b.Cursor.Line], b.Cursor.Col)
		_, size := utf8.DecodeLastRuneInString(left)
		b.Lines[b.Cursor.Line] = left[:len(left)-size] + right
		b.Cursor.Col--
		b.Dirty = true
	} else if b.Cursor.Line > 0 {
		prevLen := RuneLen(b.Lines[b.Cursor.Line-1])
		b.Lines[b.Cursor.Line-1] += b.Lines[b.Cursor.Line]
		b.Lines = append(b.Lines[:b.Cursor.Line], b.Lines[b.Cursor.Line+1:]...)
		b.Cursor.Line--
		b.Cursor.Col = prevLen
		b.Dirty = true
	}
	b.clampCursor()
}

// NewLine splits the current line at the cursor.
func (b *Buffer) NewLine() {
	b.clampCursor()
	left, rest := splitAt(b.Lines[b.Cursor.Line], b.Cursor.Col)
	b.Lines[b.Cursor.Line] = left
	b.Lines = append(b.Lines, "")
	copy(b.Lines[b.Cursor.Line+2:], b.Lines[b.Cursor.Line+1:])
	b.Lines[b.Cursor.Line+1] = rest
	b.Cursor.Line++
	b.Cursor.Col = 0
	b.Dirty = true
	b.clampCursor()
}

// MoveCursor steps the cursor. Vertical moves keep the column only as far
// as the target line allows; horizontal moves wrap across line ends.
func (b *Buffer) MoveCursor(dir Direction) {
	b.clampCursor()
	switch dir {
	case Up:
		b.Cursor.Line--
	case Down:
		b.Cursor.Line++
	case Left:
		b.Cursor.Col--
		if b.Cursor.Col < 0 && b.Cursor.Line > 0 {
			b.Cursor.Line--
			b.Cursor.Col = RuneLen(b.Lines[b.Cursor.Line])
		}
	case Right:
		b.Cursor.Col++
		if b.Cursor.Col > RuneLen(b.Lines[b.Cursor.Line]) && b.Cursor.Line < len(b.Lines)-1 {
			b.Cursor.Line++
			b.Cursor.Col = 0
		}
	}
	b.clampCursor()
}

// ScrollToCursor adjusts ScrollY so the cursor row lies within a window of
// visibleRows lines.
func (b *Buffer) ScrollToCursor(visibleRows int) {
	b.clampCursor()
	if visibleRows < 1 {
		visibleRows = 1
	}
	if b.Cursor.Line < b.ScrollY {
		b.ScrollY = b.Cursor.Line
	}
	if b.Cursor.Line >= b.ScrollY+visibleRows {
		b.ScrollY = b.Cursor.Line - visibleRows + 1
	}
	if b.ScrollY < 0 {
		b.ScrollY = 0
	}
}

// Text returns the document joined with single '\n' separators.
func (b *Buffer) Text() string {
	return b.currentSnapshot()
}
