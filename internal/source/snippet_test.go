package source

import "testing"

func testFile(t *testing.T, content string) *File {
	t.Helper()
	fs := NewFileSet()
	id := fs.AddVirtual("snippet.chl", []byte(content))
	return fs.Get(id)
}

func TestFile_TextOf(t *testing.T) {
	f := testFile(t, "pub fn foo")
	if got := f.TextOf(Span{File: f.ID, Start: 4, End: 6}); got != "fn" {
		t.Fatalf("TextOf: want %q got %q", "fn", got)
	}
	if got := f.TextOf(Span{File: f.ID, Start: 8, End: 99}); got != "oo" {
		t.Fatalf("TextOf clamps end: want %q got %q", "oo", got)
	}
}

func TestFile_OffsetOfKeyword(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kw      string
		want    uint32
		ok      bool
	}{
		{
			name:    "bare keyword",
			content: "fn foo",
			kw:      "fn",
			want:    0,
			ok:      true,
		},
		{
			name:    "keyword after comment naming the keyword",
			content: "/* fn is next */ fn foo",
			kw:      "fn",
			want:    17,
			ok:      true,
		},
		{
			name:    "keyword inside identifier is skipped",
			content: "pub fnord fn",
			kw:      "fn",
			want:    10,
			ok:      true,
		},
		{
			name:    "line comment before keyword",
			content: "// fn\nfn foo",
			kw:      "fn",
			want:    6,
			ok:      true,
		},
		{
			name:    "missing keyword",
			content: "struct S",
			kw:      "fn",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFile(t, tt.content)
			all := Span{File: f.ID, Start: 0, End: uint32(len(tt.content))}
			got, ok := f.OffsetOfKeyword(all, tt.kw)
			if ok != tt.ok {
				t.Fatalf("ok: want %v got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("offset: want %d got %d", tt.want, got)
			}
		})
	}
}

func TestFile_KeywordSpan(t *testing.T) {
	f := testFile(t, "/* c */ trait T")
	sp, ok := f.KeywordSpan(Span{File: f.ID, Start: 0, End: 15}, "trait")
	if !ok {
		t.Fatal("KeywordSpan: keyword not found")
	}
	if f.TextOf(sp) != "trait" {
		t.Fatalf("KeywordSpan covers %q, want %q", f.TextOf(sp), "trait")
	}
}
