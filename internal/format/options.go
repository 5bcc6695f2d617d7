package format

import "fmt"

// Tactic selects how a list is packed across lines.
type Tactic uint8

const (
	// TacticMixed packs items left to right and wraps when the budget runs
	// out. The zero value, and the default for import lists.
	TacticMixed Tactic = iota
	// TacticHorizontal keeps every item on one line, unconditionally.
	TacticHorizontal
	// TacticVertical puts exactly one item per line, unconditionally.
	TacticVertical
	// TacticHorizontalVertical tries one line and falls back to vertical.
	TacticHorizontalVertical
)

func (t Tactic) String() string {
	switch t {
	case TacticHorizontal:
		return "horizontal"
	case TacticVertical:
		return "vertical"
	case TacticMixed:
		return "mixed"
	case TacticHorizontalVertical:
		return "horizontal-vertical"
	default:
		return fmt.Sprintf("tactic(%d)", uint8(t))
	}
}

// ParseTactic maps a config/CLI string to a Tactic.
func ParseTactic(s string) (Tactic, error) {
	switch s {
	case "horizontal":
		return TacticHorizontal, nil
	case "vertical":
		return TacticVertical, nil
	case "mixed":
		return TacticMixed, nil
	case "horizontal-vertical":
		return TacticHorizontalVertical, nil
	default:
		return 0, fmt.Errorf("unknown layout tactic %q (expected horizontal|vertical|mixed|horizontal-vertical)", s)
	}
}

// IndentStyle selects how continuation lines of a list are aligned.
type IndentStyle uint8

const (
	// IndentBlock places continuation lines at a fixed offset from the
	// opening construct's line.
	IndentBlock IndentStyle = iota
	// IndentVisual aligns continuation lines under the first item's column.
	IndentVisual
)

func (s IndentStyle) String() string {
	if s == IndentVisual {
		return "visual"
	}
	return "block"
}

func ParseIndentStyle(s string) (IndentStyle, error) {
	switch s {
	case "block":
		return IndentBlock, nil
	case "visual":
		return IndentVisual, nil
	default:
		return 0, fmt.Errorf("unknown indent style %q (expected block|visual)", s)
	}
}

// SeparatorPolicy decides whether the final list item receives a trailing
// separator.
type SeparatorPolicy uint8

const (
	SeparatorMultilineOnly SeparatorPolicy = iota
	SeparatorAlways
	SeparatorNever
)

func (p SeparatorPolicy) String() string {
	switch p {
	case SeparatorAlways:
		return "always"
	case SeparatorNever:
		return "never"
	default:
		return "multiline-only"
	}
}

func ParseSeparatorPolicy(s string) (SeparatorPolicy, error) {
	switch s {
	case "always":
		return SeparatorAlways, nil
	case "never":
		return SeparatorNever, nil
	case "multiline-only":
		return SeparatorMultilineOnly, nil
	default:
		return 0, fmt.Errorf("unknown separator policy %q (expected always|never|multiline-only)", s)
	}
}

// Options carries the user-selected visual style for one formatting run.
type Options struct {
	MaxWidth          int
	IndentWidth       int
	Tactic            Tactic
	IndentStyle       IndentStyle
	TrailingSeparator SeparatorPolicy
	Separator         string

	// InlineBlockComments permits a newline-free block comment discovered in
	// a gap to stay on the joined line when the budget allows. Off by
	// default: any discovered comment forces a break.
	InlineBlockComments bool
}

func (o Options) WithDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 100
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	if o.Separator == "" {
		o.Separator = ","
	}
	return o
}
