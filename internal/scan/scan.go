package scan

import (
	"chisel/internal/format"
	"chisel/internal/source"
	"chisel/internal/trivia"
)

// Header is a recognized declaration header: ordered fragments with spans,
// plus the byte range its rendering replaces.
type Header struct {
	Replace   source.Span
	Fragments []format.Fragment
}

// Import is a recognized braced import list. Vis carries the rendered
// visibility qualifier of a re-export (`pub use ...`), empty otherwise.
type Import struct {
	Replace source.Span
	Vis     string
	Path    []string
	Items   []format.ListItem
}

// Construct is one rewritable region found in a file. Exactly one field is
// set.
type Construct struct {
	Header *Header
	Import *Import
}

// headerKeywords are the declaration keywords a header ends with.
var headerKeywords = map[string]bool{
	"fn": true, "struct": true, "enum": true, "trait": true,
	"impl": true, "mod": true, "const": true, "type": true,
}

// File scans a file line by line for the two construct shapes the formatter
// rewrites: declaration headers and braced import lists. Anything else is
// left untouched. This is deliberately not a parser; it only recognizes the
// shapes whose spans the formatting core needs.
func File(f *source.File) []Construct {
	var out []Construct
	s := &scanner{f: f, content: f.Content}
	for s.pos < len(s.content) {
		lineStart := s.pos
		s.skipSpaces()
		word := s.peekWord()

		var end uint32
		switch {
		case word == "use":
			if im := s.scanImport(); im != nil {
				out = append(out, Construct{Import: im})
				end = im.Replace.End
			}
		case word == "pub" || word == "unsafe" || word == "safe" || headerKeywords[word]:
			mark := s.pos
			if h := s.scanHeader(); h != nil {
				out = append(out, Construct{Header: h})
				end = h.Replace.End
			} else if word == "pub" {
				// `pub use ...` re-exports are import lists, not headers.
				s.pos = mark
				if im := s.scanImport(); im != nil {
					out = append(out, Construct{Import: im})
					end = im.Replace.End
				}
			}
		}

		if end > 0 {
			// Resume after the construct so a multi-line region is never
			// rescanned and captured twice.
			s.pos = int(end)
			s.skipToLineEnd()
			continue
		}
		s.pos = lineStart
		s.skipToLineEnd()
	}
	return out
}

type scanner struct {
	f       *source.File
	content []byte
	pos     int
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.content) && (s.content[s.pos] == ' ' || s.content[s.pos] == '\t') {
		s.pos++
	}
}

// skipTrivia advances over whitespace (including newlines) and comments.
func (s *scanner) skipTrivia() {
	for s.pos < len(s.content) {
		b := s.content[s.pos]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			s.pos++
			continue
		}
		if n := trivia.CommentLen(string(s.content[s.pos:])); n > 0 {
			s.pos += n
			continue
		}
		return
	}
}

func (s *scanner) skipToLineEnd() {
	for s.pos < len(s.content) && s.content[s.pos] != '\n' {
		s.pos++
	}
	if s.pos < len(s.content) {
		s.pos++
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// peekWord returns the identifier starting at the current position, without
// consuming it.
func (s *scanner) peekWord() string {
	end := s.pos
	for end < len(s.content) && isIdentByte(s.content[end]) {
		end++
	}
	return string(s.content[s.pos:end])
}

func (s *scanner) readWord() (string, source.Span) {
	start := s.pos
	w := s.peekWord()
	s.pos += len(w)
	return w, s.span(start, s.pos)
}

func (s *scanner) span(start, end int) source.Span {
	return source.Span{File: s.f.ID, Start: uint32(start), End: uint32(end)}
}

func (s *scanner) eat(b byte) bool {
	if s.pos < len(s.content) && s.content[s.pos] == b {
		s.pos++
		return true
	}
	return false
}
