package source

import "fmt"

// Span is a half-open byte range [Start, End) into one file's content.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Between returns the gap span from the end of s to the start of other.
// The spans are expected in offset order; a degenerate ordering yields an
// empty gap at s.End so downstream lookups stay in bounds.
func (s Span) Between(other Span) Span {
	gap := Span{File: s.File, Start: s.End, End: other.Start}
	if gap.End < gap.Start {
		gap.End = gap.Start
	}
	return gap
}

// Before reports whether s starts strictly before other.
func (s Span) Before(other Span) bool {
	return s.Start < other.Start
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
