package format

import (
	"errors"
	"strings"

	"chisel/internal/source"
	"chisel/internal/trivia"
)

// ErrUnmergeable reports that the gap between two fragments holds content
// other than whitespace and comments, so the merge cannot decide where the
// comments belong. Callers recover with a plain space join; the error never
// travels further than the immediate caller.
var ErrUnmergeable = errors.New("format: gap is not whitespace and comments")

// Merger joins adjacent rendered fragments, reinserting any comments found
// in the gap between their spans. It is a pure view over one loaded file
// plus the active options; a fresh value per formatting call keeps calls
// independently parallelizable.
type Merger struct {
	File *source.File
	Opts Options
}

// Combine joins left and right across gap. With a blank gap the result is a
// single-line space join when preferSingleLine holds and the budget allows,
// otherwise a two-line join at the shape's indent. Comments found in the gap
// are reproduced verbatim in their original order, each re-indented to the
// shape's indent; every discovered comment forces a multi-line join unless
// the inline refinement applies.
func (m Merger) Combine(left, right string, gap source.Span, shape Shape, preferSingleLine bool) (string, error) {
	gapText := m.File.TextOf(gap)
	if trivia.IsBlank(gapText) {
		if preferSingleLine && m.fitsOnOneLine(left, right, "", shape) {
			return left + " " + right, nil
		}
		return left + "\n" + shape.Indent.String() + right, nil
	}

	pieces, err := trivia.Scan(gapText)
	if err != nil {
		return "", ErrUnmergeable
	}

	comments := make([]trivia.Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.Kind != trivia.Whitespace {
			comments = append(comments, p)
		}
	}

	if m.Opts.InlineBlockComments && preferSingleLine && len(comments) == 1 &&
		comments[0].Kind == trivia.BlockComment && !strings.Contains(comments[0].Text, "\n") &&
		m.fitsOnOneLine(left, right, comments[0].Text, shape) {
		return left + " " + comments[0].Text + " " + right, nil
	}

	var b strings.Builder
	b.WriteString(left)
	indent := shape.Indent.String()
	for _, c := range comments {
		b.WriteByte('\n')
		writeReindented(&b, c.Text, indent)
	}
	b.WriteByte('\n')
	b.WriteString(indent)
	b.WriteString(right)
	return b.String(), nil
}

func (m Merger) fitsOnOneLine(left, right, comment string, shape Shape) bool {
	if strings.Contains(right, "\n") {
		return false
	}
	w := lastLineWidth(left) + 1 + displayWidth(right)
	if comment != "" {
		w += displayWidth(comment) + 1
	}
	return shape.Fits(w)
}

// writeReindented emits a comment at the given indent. Continuation lines of
// a multi-line block comment are re-anchored to the indent, keeping the
// conventional extra space before an aligned `*`.
func writeReindented(b *strings.Builder, comment, indent string) {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && i > 0 {
			continue
		}
		b.WriteString(indent)
		if i > 0 && strings.HasPrefix(trimmed, "*") {
			b.WriteByte(' ')
		}
		b.WriteString(trimmed)
	}
}
