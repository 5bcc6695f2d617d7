package source

import "testing"

func TestSpan_Between(t *testing.T) {
	tests := []struct {
		name     string
		left     Span
		right    Span
		expected Span
	}{
		{
			name:     "simple gap",
			left:     Span{File: 1, Start: 0, End: 3},
			right:    Span{File: 1, Start: 8, End: 10},
			expected: Span{File: 1, Start: 3, End: 8},
		},
		{
			name:     "adjacent spans yield empty gap",
			left:     Span{File: 1, Start: 0, End: 3},
			right:    Span{File: 1, Start: 3, End: 5},
			expected: Span{File: 1, Start: 3, End: 3},
		},
		{
			name:     "overlapping spans clamp to empty",
			left:     Span{File: 1, Start: 0, End: 5},
			right:    Span{File: 1, Start: 3, End: 8},
			expected: Span{File: 1, Start: 5, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.left.Between(tt.right); got != tt.expected {
				t.Fatalf("Between: want %v got %v", tt.expected, got)
			}
		})
	}
}

func TestSpan_Before(t *testing.T) {
	a := Span{Start: 1, End: 4}
	b := Span{Start: 4, End: 9}
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("Before ordering broken for %v / %v", a, b)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: 4, End: 7}
	b := Span{Start: 12, End: 19}
	want := Span{Start: 4, End: 19}
	if got := a.Cover(b); got != want {
		t.Fatalf("Cover: want %v got %v", want, got)
	}
	if got := b.Cover(a); got != want {
		t.Fatalf("Cover is not symmetric: want %v got %v", want, got)
	}
	if got := a.Cover(a); got != a {
		t.Fatalf("Cover with itself: want %v got %v", a, got)
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.chl", []byte("ab\ncd\nef"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start: want 2:1 got %d:%d", start.Line, start.Col)
	}
	if end.Line != 3 || end.Col != 2 {
		t.Fatalf("end: want 3:2 got %d:%d", end.Line, end.Col)
	}
}

func TestFileSet_NormalizesCRLFOnAddOnlyViaLoad(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("raw.chl", []byte("a\r\nb"))
	// AddVirtual stores bytes as given; normalization happens in Load.
	if got := fs.Get(id).TextOf(Span{File: id, Start: 0, End: 4}); got != "a\r\nb" {
		t.Fatalf("virtual content altered: %q", got)
	}
}
