package format

import (
	"fmt"
	"strings"

	"chisel/internal/source"
)

// Fragment is one renderable piece of a declaration header: a qualifier, a
// keyword, or an identifier. Text never carries surrounding whitespace; a
// fragment with empty text is dropped before assembly and contributes no gap.
type Fragment struct {
	Text   string
	Origin source.Span
}

func NewFragment(text string, origin source.Span) Fragment {
	return Fragment{Text: strings.TrimSpace(text), Origin: origin}
}

// VisKind enumerates the visibility qualifiers of a declaration.
type VisKind uint8

const (
	// VisInherited is the default visibility; it renders to nothing.
	VisInherited VisKind = iota
	VisPublic
	VisRestricted
)

// Visibility is the collaborator-supplied description of a declaration's
// visibility qualifier.
type Visibility struct {
	Kind VisKind
	// Path holds the segments of a restricted path. When Global is set the
	// path was written rooted (leading `::`) and its first segment is the
	// empty root segment.
	Path   []string
	Global bool
	Span   source.Span
}

// VisibilityFragment renders a visibility qualifier. Inherited visibility
// yields an empty fragment. A global restricted path must carry its leading
// root segment; its absence means the upstream walker handed us garbage, and
// emitting anything would produce syntactically broken output.
func VisibilityFragment(v Visibility) Fragment {
	switch v.Kind {
	case VisInherited:
		return Fragment{Origin: v.Span}
	case VisPublic:
		return Fragment{Text: "pub", Origin: v.Span}
	case VisRestricted:
		segments := v.Path
		if v.Global {
			if len(segments) == 0 {
				panic(fmt.Errorf("format: global restricted path without root segment at %v", v.Span))
			}
			segments = segments[1:]
		}
		path := strings.Join(segments, "::")
		in := "in "
		switch path {
		case "crate", "self", "super":
			in = ""
		}
		return Fragment{Text: "pub(" + in + path + ")", Origin: v.Span}
	default:
		panic(fmt.Errorf("format: unknown visibility kind %d", v.Kind))
	}
}

// Safety enumerates the safety qualifiers of a declaration.
type Safety uint8

const (
	SafetyDefault Safety = iota
	SafetyUnsafe
	SafetySafe
)

// SafetyFragment renders a safety qualifier. The default safety yields an
// empty fragment with no meaningful span.
func SafetyFragment(s Safety, span source.Span) Fragment {
	switch s {
	case SafetyUnsafe:
		return NewFragment("unsafe", span)
	case SafetySafe:
		return NewFragment("safe", span)
	case SafetyDefault:
		return Fragment{}
	default:
		panic(fmt.Errorf("format: unknown safety %d", s))
	}
}

// KeywordFragment builds a fragment for a fixed keyword whose enclosing span
// may contain surrounding comments (`/* c */ fn /* d */`). The fragment is
// tagged with the keyword's tight sub-span so later gap computation does not
// swallow the keyword's own decorative comments.
func KeywordFragment(f *source.File, kw string, enclosing source.Span) Fragment {
	span, ok := f.KeywordSpan(enclosing, kw)
	if !ok {
		panic(fmt.Errorf("format: keyword %q not found in %v", kw, enclosing))
	}
	return Fragment{Text: kw, Origin: span}
}

// IdentFragment builds a fragment for an identifier.
func IdentFragment(name string, span source.Span) Fragment {
	return NewFragment(name, span)
}
