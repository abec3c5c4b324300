package highlight

import "unicode/utf8"

// Category is the highlight class of a token.
type Category int

const (
	Plain Category = iota
	Keyword
	String
	Comment
	Number
	Operator
)

func (c Category) String() string {
	switch c {
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Operator:
		return "operator"
	default:
		return "plain"
	}
}

type Token struct {
	Text     string
	Category Category
}

var keywords = map[string]bool{
	"def": true, "class": true, "if": true, "else": true, "elif": true,
	"while": true, "for": true, "import": true, "from": true, "return": true,
	"True": true, "False": true, "None": true, "break": true, "continue": true,
	"pass": true, "try": true, "except": true, "with": true, "as": true,
	"global": true, "print": true, "len": true, "range": true,
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ':', ',', '.':
		return true
	}
	return false
}

func isWordBreak(r rune) bool {
	return isOperator(r) || isSeparator(r) ||
		r == ' ' || r == '\t' || r == '#' || r == '"' || r == '\''
}

// IsKeyword reports whether word is in the reserved-word set.
func IsKeyword(word string) bool {
	return keywords[word]
}

// TokenizeLine splits a line into highlight tokens in a single pass.
// Token texts are slices of line, so concatenating them always yields the
// input, invalid UTF-8 included.
func TokenizeLine(line string) []Token {
	n := len(line)
	var tokens []Token

	i := 0
	for i < n {
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case r == '#':
			tokens = append(tokens, Token{Text: line[i:], Category: Comment})
			return tokens

		case r == '"' || r == '\'':
			start := i
			i += size
			for i < n && line[i] != byte(r) {
				_, sz := utf8.DecodeRuneInString(line[i:])
				i += sz
			}
			if i < n {
				i++ // closing quote
			}
			tokens = append(tokens, Token{Text: line[start:i], Category: String})

		case isOperator(r) || isSeparator(r):
			tokens = append(tokens, Token{Text: line[i : i+size], Category: Operator})
			i += size

		case r == ' ' || r == '\t':
			tokens = append(tokens, Token{Text: line[i : i+size], Category: Plain})
			i += size

		default:
			start := i
			for i < n {
				c, sz := utf8.DecodeRuneInString(line[i:])
				if isWordBreak(c) {
					break
				}
				i += sz
			}
			word := line[start:i]
			cat := Plain
			if first := line[start]; first >= '0' && first <= '9' {
				cat = Number
			} else if IsKeyword(word) {
				cat = Keyword
			}
			tokens = append(tokens, Token{Text: word, Category: cat})
		}
	}
	return tokens
}
