package trivia

import (
	"errors"
	"testing"
)

func TestScan_Classification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
	}{
		{
			name:  "empty input",
			input: "",
			kinds: nil,
		},
		{
			name:  "whitespace only",
			input: "  \t\n  ",
			kinds: []Kind{Whitespace},
		},
		{
			name:  "single block comment",
			input: "/* x */",
			kinds: []Kind{BlockComment},
		},
		{
			name:  "line comment with surrounding space",
			input: "  // note\n",
			kinds: []Kind{Whitespace, LineComment, Whitespace},
		},
		{
			name:  "nested block comment",
			input: "/* a /* b */ c */",
			kinds: []Kind{BlockComment},
		},
		{
			name:  "two comments",
			input: "/* a */ // b",
			kinds: []Kind{BlockComment, Whitespace, LineComment},
		},
		{
			name:  "unterminated block cut at end",
			input: "/* open",
			kinds: []Kind{BlockComment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := Scan(tt.input)
			if err != nil {
				t.Fatalf("Scan(%q) failed: %v", tt.input, err)
			}
			if len(pieces) != len(tt.kinds) {
				t.Fatalf("Scan(%q) piece count: want %d got %d (%v)", tt.input, len(tt.kinds), len(pieces), pieces)
			}
			var rebuilt string
			for i, p := range pieces {
				if p.Kind != tt.kinds[i] {
					t.Fatalf("piece %d kind: want %v got %v", i, tt.kinds[i], p.Kind)
				}
				rebuilt += p.Text
			}
			if rebuilt != tt.input {
				t.Fatalf("pieces do not reassemble input: want %q got %q", tt.input, rebuilt)
			}
		})
	}
}

func TestScan_RejectsCode(t *testing.T) {
	for _, input := range []string{"x", "/* a */ fn", "= 1", "/ x"} {
		if _, err := Scan(input); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("Scan(%q): want ErrUnrecognized, got %v", input, err)
		}
	}
}

func TestContainsComment(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"   \n", false},
		{"// c", true},
		{"/* c */", true},
		{"code /* c */", true},
		{"plain code", false},
	}
	for _, tt := range tests {
		if got := ContainsComment(tt.input); got != tt.want {
			t.Fatalf("ContainsComment(%q): want %v got %v", tt.input, tt.want, got)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" \t\n", true},
		{"// c", false},
		{"fn", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Fatalf("IsBlank(%q): want %v got %v", tt.input, tt.want, got)
		}
	}
}

func TestCommentLen(t *testing.T) {
	if n := CommentLen("/* x */rest"); n != 7 {
		t.Fatalf("block comment length: want 7 got %d", n)
	}
	if n := CommentLen("// x\nrest"); n != 4 {
		t.Fatalf("line comment length: want 4 got %d", n)
	}
	if n := CommentLen("fn"); n != 0 {
		t.Fatalf("non-comment length: want 0 got %d", n)
	}
}
