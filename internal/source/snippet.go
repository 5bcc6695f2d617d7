package source

import (
	"strings"

	"chisel/internal/trivia"
)

// TextOf returns the raw substring of the file covered by span. Out-of-range
// offsets are clamped to the content so a malformed span never panics.
func (f *File) TextOf(span Span) string {
	start, end := int(span.Start), int(span.End)
	if start > len(f.Content) {
		start = len(f.Content)
	}
	if end > len(f.Content) {
		end = len(f.Content)
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// OffsetOfKeyword locates the first occurrence of kw inside enclosing that
// is not part of a comment and sits on identifier boundaries. It returns the
// absolute byte offset of the keyword. A span like `/* c */ fn /* d */`
// resolves to the `fn` token itself, so callers can tag fragments with the
// tight keyword span instead of the decorated one.
func (f *File) OffsetOfKeyword(enclosing Span, kw string) (uint32, bool) {
	text := f.TextOf(enclosing)
	pos := 0
	for pos < len(text) {
		if n := trivia.CommentLen(text[pos:]); n > 0 {
			pos += n
			continue
		}
		if strings.HasPrefix(text[pos:], kw) && onBoundary(text, pos, len(kw)) {
			return enclosing.Start + uint32(pos), true
		}
		pos++
	}
	return 0, false
}

// KeywordSpan is OffsetOfKeyword with the result widened to the keyword's
// own span.
func (f *File) KeywordSpan(enclosing Span, kw string) (Span, bool) {
	lo, ok := f.OffsetOfKeyword(enclosing, kw)
	if !ok {
		return Span{}, false
	}
	return Span{File: f.ID, Start: lo, End: lo + uint32(len(kw))}, true
}

func onBoundary(text string, pos, n int) bool {
	if pos > 0 && isWordByte(text[pos-1]) {
		return false
	}
	if pos+n < len(text) && isWordByte(text[pos+n]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
