package format

import (
	"strings"

	"chisel/internal/source"
)

// ListItem is one member of a laid-out list (an import segment, a struct
// field, an argument). Comments captured next to the item in the original
// source travel with it and are emitted adjacent to it, never dropped or
// reordered relative to their owner.
type ListItem struct {
	Text            string
	LeadingComment  string
	TrailingComment string
	Span            source.Span
}

func (it ListItem) hasComment() bool {
	return it.LeadingComment != "" || it.TrailingComment != ""
}

func (it ListItem) multiline() bool {
	return strings.Contains(it.Text, "\n")
}

// ListConfig carries everything one list layout needs: the tactic
// preference, the width budget, and the indent rules. StartColumn is the
// column the first item is spliced at; VisualColumn is the column
// continuation lines align under in the visual indent style.
type ListConfig struct {
	Tactic            Tactic
	IndentStyle       IndentStyle
	TrailingSeparator SeparatorPolicy
	Separator         string
	Width             int
	Indent            Indent
	IndentWidth       int
	StartColumn       int
	VisualColumn      int
}

func (c ListConfig) continuation() Indent {
	if c.IndentStyle == IndentVisual {
		return AlignTo(c.VisualColumn)
	}
	return c.Indent.BlockIndent(c.IndentWidth)
}

// WriteList renders items under cfg and returns an already-indented block
// ready to splice at the call site's current column. Width overflow is never
// an error: when no tactic satisfies the budget the rendering degrades to
// one item per line, which is valid at any width.
func WriteList(items []ListItem, cfg ListConfig) string {
	if len(items) == 0 {
		return ""
	}
	cont := cfg.continuation().String()
	switch resolveTactic(items, cfg) {
	case TacticHorizontal:
		return writeHorizontal(items, cfg, cont)
	case TacticVertical:
		return writeVertical(items, cfg, cont)
	default:
		return writeMixed(items, cfg, cont)
	}
}

// resolveTactic turns the tactic preference into a concrete tactic. Fixed
// preferences apply unconditionally. HorizontalVertical attempts a single
// line and falls back to vertical when the total width blows the budget or
// any item brings a forced break (its own newline, or an attached comment).
func resolveTactic(items []ListItem, cfg ListConfig) Tactic {
	switch cfg.Tactic {
	case TacticHorizontal, TacticVertical, TacticMixed:
		return cfg.Tactic
	default:
		for _, it := range items {
			if it.multiline() || it.hasComment() {
				return TacticVertical
			}
		}
		if cfg.StartColumn+singleLineWidth(items, cfg) > cfg.Width {
			return TacticVertical
		}
		return TacticHorizontal
	}
}

func singleLineWidth(items []ListItem, cfg ListConfig) int {
	sepW := displayWidth(cfg.Separator) + 1
	total := 0
	for i, it := range items {
		if i > 0 {
			total += sepW
		}
		total += displayWidth(it.Text)
	}
	if cfg.TrailingSeparator == SeparatorAlways {
		total += displayWidth(cfg.Separator)
	}
	return total
}

func wantTrailingSep(policy SeparatorPolicy, multiline bool) bool {
	switch policy {
	case SeparatorAlways:
		return true
	case SeparatorNever:
		return false
	default:
		return multiline
	}
}

// endsWithLineComment reports whether a comment run finishes inside a line
// comment, in which case nothing may follow it on the same line.
func endsWithLineComment(s string) bool {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.HasPrefix(strings.TrimSpace(s), "//")
}

// writeListComment emits a possibly multi-line comment run, re-anchoring
// continuation lines at the continuation indent.
func writeListComment(b *strings.Builder, comment, cont string) {
	for i, line := range strings.Split(comment, "\n") {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(cont)
		}
		b.WriteString(strings.TrimRight(line, " \t"))
	}
}

func writeHorizontal(items []ListItem, cfg ListConfig, cont string) string {
	var b strings.Builder
	broke := false
	for i, it := range items {
		last := i == len(items)-1
		if i > 0 && !broke {
			b.WriteByte(' ')
		}
		broke = false

		if lc := it.LeadingComment; lc != "" {
			writeListComment(&b, lc, cont)
			if endsWithLineComment(lc) {
				b.WriteByte('\n')
				b.WriteString(cont)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(it.Text)
		if !last {
			b.WriteString(cfg.Separator)
		} else if wantTrailingSep(cfg.TrailingSeparator, strings.Contains(b.String(), "\n")) {
			b.WriteString(cfg.Separator)
		}
		if tc := it.TrailingComment; tc != "" {
			b.WriteByte(' ')
			writeListComment(&b, tc, cont)
			if endsWithLineComment(tc) && !last {
				b.WriteByte('\n')
				b.WriteString(cont)
				broke = true
			}
		}
	}
	return b.String()
}

func writeVertical(items []ListItem, cfg ListConfig, cont string) string {
	var b strings.Builder
	for i, it := range items {
		last := i == len(items)-1
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(cont)
		}
		if lc := it.LeadingComment; lc != "" {
			writeListComment(&b, lc, cont)
			b.WriteByte('\n')
			b.WriteString(cont)
		}
		b.WriteString(it.Text)
		if !last {
			b.WriteString(cfg.Separator)
		} else if wantTrailingSep(cfg.TrailingSeparator, strings.Contains(b.String(), "\n")) {
			b.WriteString(cfg.Separator)
		}
		if tc := it.TrailingComment; tc != "" {
			b.WriteByte(' ')
			writeListComment(&b, tc, cont)
		}
	}
	return b.String()
}

// writeMixed packs items left to right, wrapping before any item that would
// not fit on the current line. Separators attach to the item they follow, so
// a wrapped line ends with the separator the way the source style expects.
func writeMixed(items []ListItem, cfg ListConfig, cont string) string {
	var b strings.Builder
	cur := cfg.StartColumn
	forceWrap := false

	for i, it := range items {
		last := i == len(items)-1

		if i > 0 {
			// The separator the item is emitted with counts against the
			// line it lands on.
			need := cur + 1 + displayWidth(it.Text)
			if !last || cfg.TrailingSeparator == SeparatorAlways {
				need += displayWidth(cfg.Separator)
			}
			if lc := it.LeadingComment; lc != "" && !strings.Contains(lc, "\n") && !endsWithLineComment(lc) {
				need += displayWidth(lc) + 1
			}
			wrap := forceWrap || need > cfg.Width ||
				(it.LeadingComment != "" && endsWithLineComment(it.LeadingComment))
			if wrap {
				b.WriteByte('\n')
				b.WriteString(cont)
			} else {
				b.WriteByte(' ')
			}
			forceWrap = false
		}

		if lc := it.LeadingComment; lc != "" {
			writeListComment(&b, lc, cont)
			if endsWithLineComment(lc) {
				b.WriteByte('\n')
				b.WriteString(cont)
			} else {
				b.WriteByte(' ')
			}
		}

		b.WriteString(it.Text)

		if !last {
			b.WriteString(cfg.Separator)
		} else if wantTrailingSep(cfg.TrailingSeparator, strings.Contains(b.String(), "\n")) {
			b.WriteString(cfg.Separator)
		}

		if tc := it.TrailingComment; tc != "" {
			b.WriteByte(' ')
			writeListComment(&b, tc, cont)
			if endsWithLineComment(tc) {
				forceWrap = true
			}
		}

		cur = lastLineWidth(b.String())
		if !strings.Contains(b.String(), "\n") {
			// Still on the opening line: account for the splice column.
			cur += cfg.StartColumn
		}
	}
	return b.String()
}
