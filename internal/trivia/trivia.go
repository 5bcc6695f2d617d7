package trivia

import (
	"errors"
	"strings"
)

// Kind classifies one run of trivia bytes.
type Kind uint8

const (
	// Whitespace covers spaces, tabs and newlines, coalesced into one run.
	Whitespace Kind = iota
	// LineComment is `// ...` up to (not including) the newline.
	LineComment
	// BlockComment is `/* ... */`, nesting supported.
	BlockComment
)

// Piece is one classified run of a scanned string.
type Piece struct {
	Kind Kind
	Text string
}

// ErrUnrecognized reports that a string contains bytes that are neither
// whitespace nor a comment, so it cannot be treated as pure trivia.
var ErrUnrecognized = errors.New("trivia: unrecognized content")

// Scan decomposes text into an ordered sequence of whitespace and comment
// runs. The concatenation of all piece texts equals the input. If any byte
// belongs to neither category the scan fails with ErrUnrecognized.
func Scan(text string) ([]Piece, error) {
	var pieces []Piece
	pos := 0
	for pos < len(text) {
		if n := whitespaceLen(text[pos:]); n > 0 {
			pieces = append(pieces, Piece{Kind: Whitespace, Text: text[pos : pos+n]})
			pos += n
			continue
		}
		if n, kind := commentAt(text[pos:]); n > 0 {
			pieces = append(pieces, Piece{Kind: kind, Text: text[pos : pos+n]})
			pos += n
			continue
		}
		return nil, ErrUnrecognized
	}
	return pieces, nil
}

// ContainsComment reports whether text holds at least one comment run.
// Non-trivia bytes count as "no comment"; callers that need to reject them
// use Scan directly.
func ContainsComment(text string) bool {
	pieces, err := Scan(text)
	if err != nil {
		return strings.Contains(text, "//") || strings.Contains(text, "/*")
	}
	for _, p := range pieces {
		if p.Kind != Whitespace {
			return true
		}
	}
	return false
}

// IsBlank reports whether text consists of whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// CommentLen returns the byte length of the comment starting at the first
// byte of text, or 0 when text does not start with a comment.
func CommentLen(text string) int {
	n, _ := commentAt(text)
	return n
}

func whitespaceLen(text string) int {
	i := 0
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// commentAt recognizes `//...` (to end of line or input) and `/*...*/` with
// nesting. An unterminated block comment is cut at end of input rather than
// rejected, matching how the surrounding tooling recovers at EOF.
func commentAt(text string) (int, Kind) {
	if len(text) < 2 || text[0] != '/' {
		return 0, Whitespace
	}
	switch text[1] {
	case '/':
		i := 2
		for i < len(text) && text[i] != '\n' {
			i++
		}
		return i, LineComment
	case '*':
		i := 2
		depth := 1
		for i < len(text) && depth > 0 {
			if i+1 < len(text) {
				if text[i] == '/' && text[i+1] == '*' {
					i += 2
					depth++
					continue
				}
				if text[i] == '*' && text[i+1] == '/' {
					i += 2
					depth--
					continue
				}
			}
			i++
		}
		return i, BlockComment
	default:
		return 0, Whitespace
	}
}
