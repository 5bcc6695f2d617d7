package scan

import (
	"strings"

	"chisel/internal/format"
	"chisel/internal/trivia"
)

// scanImport recognizes `use a::b::{x, y as z, w};` starting at the current
// position. Plain imports without a brace group have no list to lay out and
// are skipped. Returns nil when the shape does not match; the caller rewinds.
func (s *scanner) scanImport() *Import {
	start := s.pos

	var vis string
	if s.peekWord() == "pub" {
		v, ok := s.scanVisibility()
		if !ok {
			return nil
		}
		vis = format.VisibilityFragment(v).Text
		s.skipTrivia()
	}

	if w, _ := s.readWord(); w != "use" {
		return nil
	}
	s.skipTrivia()

	var path []string
	for {
		if s.pos < len(s.content) && s.content[s.pos] == '{' {
			break
		}
		seg := s.peekWord()
		if seg == "" {
			return nil
		}
		s.pos += len(seg)
		path = append(path, seg)
		if !s.eatColons() {
			// `use a::b;` — nothing to lay out.
			return nil
		}
	}
	if len(path) == 0 || !s.eat('{') {
		return nil
	}

	var items []format.ListItem
	for {
		leading := s.collectComments()
		if s.pos < len(s.content) && s.content[s.pos] == '}' {
			s.pos++
			break
		}

		itemStart := s.pos
		text := s.readItemText()
		if text == "" {
			return nil
		}
		item := format.ListItem{
			Text:           text,
			LeadingComment: leading,
			Span:           s.span(itemStart, s.pos),
		}

		s.skipSpaces()
		sawComma := s.eat(',')
		s.skipSpaces()
		if n := trivia.CommentLen(string(s.content[s.pos:])); n > 0 {
			item.TrailingComment = string(s.content[s.pos : s.pos+n])
			s.pos += n
		}
		items = append(items, item)

		if !sawComma {
			s.skipTrivia()
			if !s.eat('}') {
				return nil
			}
			break
		}
	}
	if len(items) == 0 {
		return nil
	}

	s.skipTrivia()
	if !s.eat(';') {
		return nil
	}
	return &Import{
		Replace: s.span(start, s.pos),
		Vis:     vis,
		Path:    path,
		Items:   items,
	}
}

func (s *scanner) eatColons() bool {
	s.skipTrivia()
	if s.pos+1 < len(s.content) && s.content[s.pos] == ':' && s.content[s.pos+1] == ':' {
		s.pos += 2
		s.skipTrivia()
		return true
	}
	return false
}

// collectComments advances over trivia and returns the comments it crossed,
// newline-joined so a line comment never swallows what follows it.
func (s *scanner) collectComments() string {
	var comments []string
	for s.pos < len(s.content) {
		b := s.content[s.pos]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			s.pos++
			continue
		}
		if n := trivia.CommentLen(string(s.content[s.pos:])); n > 0 {
			comments = append(comments, string(s.content[s.pos:s.pos+n]))
			s.pos += n
			continue
		}
		break
	}
	return strings.Join(comments, "\n")
}

// readItemText consumes one import item (`name`, `a::b`, `name as alias`)
// and returns it with interior whitespace normalized to single spaces.
func (s *scanner) readItemText() string {
	first := s.peekWord()
	if first == "" {
		return ""
	}
	s.pos += len(first)
	text := first

	for {
		if s.pos+1 < len(s.content) && s.content[s.pos] == ':' && s.content[s.pos+1] == ':' {
			s.pos += 2
			seg := s.peekWord()
			if seg == "" {
				return ""
			}
			s.pos += len(seg)
			text += "::" + seg
			continue
		}

		mark := s.pos
		s.skipSpaces()
		if s.peekWord() == "as" {
			s.pos += len("as")
			s.skipSpaces()
			alias := s.peekWord()
			if alias == "" {
				return ""
			}
			s.pos += len(alias)
			text += " as " + alias
			continue
		}
		s.pos = mark
		break
	}
	return text
}
