package scan

import (
	"chisel/internal/format"
)

// scanHeader recognizes `[visibility] [unsafe|safe] keyword ident` starting
// at the current position, with comments permitted between the parts. It
// returns nil when the shape does not match; the caller rewinds.
func (s *scanner) scanHeader() *Header {
	var fragments []format.Fragment
	prevEnd := -1

	if s.peekWord() == "pub" {
		vis, ok := s.scanVisibility()
		if !ok {
			return nil
		}
		fragments = append(fragments, format.VisibilityFragment(vis))
		prevEnd = int(vis.Span.End)
		s.skipTrivia()
	}

	if w := s.peekWord(); w == "unsafe" || w == "safe" {
		word, sp := s.readWord()
		safety := format.SafetyUnsafe
		if word == "safe" {
			safety = format.SafetySafe
		}
		fragments = append(fragments, format.SafetyFragment(safety, sp))
		prevEnd = int(sp.End)
		s.skipTrivia()
	}

	kwStart := s.pos
	kw := s.peekWord()
	if !headerKeywords[kw] {
		return nil
	}
	s.pos += len(kw)
	// The enclosing span reaches back to the previous fragment so the
	// constructor pins the keyword's tight sub-span past any gap comments.
	encStart := kwStart
	if prevEnd >= 0 {
		encStart = prevEnd
	}
	fragments = append(fragments, format.KeywordFragment(s.f, kw, s.span(encStart, s.pos)))

	s.skipTrivia()
	name, nameSpan := s.readWord()
	if name == "" || headerKeywords[name] {
		return nil
	}
	fragments = append(fragments, format.IdentFragment(name, nameSpan))

	// The rewritten range runs from the first qualifier to the identifier.
	return &Header{
		Replace:   fragments[0].Origin.Cover(nameSpan),
		Fragments: fragments,
	}
}

// scanVisibility consumes `pub`, `pub(crate|self|super)`, `pub(in a::b)` or
// `pub(in ::a::b)` and reports the collaborator-level description.
func (s *scanner) scanVisibility() (format.Visibility, bool) {
	start := s.pos
	if w, _ := s.readWord(); w != "pub" {
		return format.Visibility{}, false
	}

	mark := s.pos
	s.skipSpaces()
	if !s.eat('(') {
		s.pos = mark
		return format.Visibility{
			Kind: format.VisPublic,
			Span: s.span(start, mark),
		}, true
	}

	vis := format.Visibility{Kind: format.VisRestricted}
	s.skipSpaces()
	if s.peekWord() == "in" {
		s.pos += len("in")
		s.skipSpaces()
	}
	if s.pos+1 < len(s.content) && s.content[s.pos] == ':' && s.content[s.pos+1] == ':' {
		// Rooted path: record the empty root segment the renderer consumes.
		vis.Global = true
		vis.Path = append(vis.Path, "")
		s.pos += 2
	}
	for {
		seg := s.peekWord()
		if seg == "" {
			return format.Visibility{}, false
		}
		s.pos += len(seg)
		vis.Path = append(vis.Path, seg)
		if s.pos+1 < len(s.content) && s.content[s.pos] == ':' && s.content[s.pos+1] == ':' {
			s.pos += 2
			continue
		}
		break
	}
	s.skipSpaces()
	if !s.eat(')') {
		return format.Visibility{}, false
	}
	vis.Span = s.span(start, s.pos)
	return vis, true
}
