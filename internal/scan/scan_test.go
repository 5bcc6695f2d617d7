package scan

import (
	"testing"

	"chisel/internal/source"
)

func scanSource(t *testing.T, src string) (*source.File, []Construct) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("scan.chl", []byte(src))
	f := fs.Get(id)
	return f, File(f)
}

func TestFile_Header(t *testing.T) {
	f, constructs := scanSource(t, "pub unsafe fn foo() {}\n")
	if len(constructs) != 1 || constructs[0].Header == nil {
		t.Fatalf("want one header construct, got %+v", constructs)
	}
	h := constructs[0].Header
	if got := f.TextOf(h.Replace); got != "pub unsafe fn foo" {
		t.Fatalf("replace range covers %q", got)
	}
	texts := make([]string, 0, len(h.Fragments))
	for _, fr := range h.Fragments {
		texts = append(texts, fr.Text)
	}
	want := []string{"pub", "unsafe", "fn", "foo"}
	if len(texts) != len(want) {
		t.Fatalf("fragments: want %v got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("fragment %d: want %q got %q", i, want[i], texts[i])
		}
	}
}

func TestFile_HeaderRestrictedVisibility(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"pub(crate) struct S {}\n", "pub(crate)"},
		{"pub(in a::b) fn f() {}\n", "pub(in a::b)"},
		{"pub(in ::a::b) fn f() {}\n", "pub(in a::b)"},
	}
	for _, tt := range tests {
		_, constructs := scanSource(t, tt.src)
		if len(constructs) != 1 || constructs[0].Header == nil {
			t.Fatalf("%q: want one header construct, got %+v", tt.src, constructs)
		}
		if got := constructs[0].Header.Fragments[0].Text; got != tt.want {
			t.Fatalf("%q: visibility fragment want %q got %q", tt.src, tt.want, got)
		}
	}
}

func TestFile_HeaderWithGapComment(t *testing.T) {
	f, constructs := scanSource(t, "pub /* here */ fn foo() {}\n")
	if len(constructs) != 1 || constructs[0].Header == nil {
		t.Fatalf("want one header construct, got %+v", constructs)
	}
	h := constructs[0].Header
	// The keyword fragment must carry the tight `fn` span, not the comment.
	kw := h.Fragments[1]
	if got := f.TextOf(kw.Origin); got != "fn" {
		t.Fatalf("keyword span covers %q, want %q", got, "fn")
	}
}

func TestFile_Import(t *testing.T) {
	src := "use lists::{alpha, beta as b, gamma::delta};\n"
	f, constructs := scanSource(t, src)
	if len(constructs) != 1 || constructs[0].Import == nil {
		t.Fatalf("want one import construct, got %+v", constructs)
	}
	im := constructs[0].Import
	if got := f.TextOf(im.Replace); got != "use lists::{alpha, beta as b, gamma::delta};" {
		t.Fatalf("replace range covers %q", got)
	}
	if len(im.Path) != 1 || im.Path[0] != "lists" {
		t.Fatalf("path: got %v", im.Path)
	}
	wantItems := []string{"alpha", "beta as b", "gamma::delta"}
	if len(im.Items) != len(wantItems) {
		t.Fatalf("items: want %v got %+v", wantItems, im.Items)
	}
	for i, w := range wantItems {
		if im.Items[i].Text != w {
			t.Fatalf("item %d: want %q got %q", i, w, im.Items[i].Text)
		}
	}
}

func TestFile_ImportMultilineWithComments(t *testing.T) {
	src := "use pkg::{\n    // keep first\n    one,\n    two, // explain\n    three,\n};\n"
	_, constructs := scanSource(t, src)
	if len(constructs) != 1 || constructs[0].Import == nil {
		t.Fatalf("want one import construct, got %+v", constructs)
	}
	items := constructs[0].Import.Items
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %+v", items)
	}
	if items[0].LeadingComment != "// keep first" {
		t.Fatalf("leading comment: got %q", items[0].LeadingComment)
	}
	if items[1].TrailingComment != "// explain" {
		t.Fatalf("trailing comment: got %q", items[1].TrailingComment)
	}
	if items[2].LeadingComment != "" || items[2].TrailingComment != "" {
		t.Fatalf("comment attached to wrong item: %+v", items[2])
	}
}

func TestFile_PubUseReExport(t *testing.T) {
	_, constructs := scanSource(t, "pub use api::{get, put};\n")
	if len(constructs) != 1 || constructs[0].Import == nil {
		t.Fatalf("want one import construct, got %+v", constructs)
	}
	if got := constructs[0].Import.Vis; got != "pub" {
		t.Fatalf("re-export visibility: want %q got %q", "pub", got)
	}
}

func TestFile_SkipsPlainImportsAndCode(t *testing.T) {
	src := "use a::b;\nlet x = 5;\nreturn x;\n"
	_, constructs := scanSource(t, src)
	if len(constructs) != 0 {
		t.Fatalf("nothing to rewrite, got %+v", constructs)
	}
}

func TestFile_MultipleConstructs(t *testing.T) {
	src := "use a::{x, y};\n\npub fn first() {}\n\npub(crate) struct Second {}\n"
	_, constructs := scanSource(t, src)
	if len(constructs) != 3 {
		t.Fatalf("want 3 constructs, got %d: %+v", len(constructs), constructs)
	}
	if constructs[0].Import == nil || constructs[1].Header == nil || constructs[2].Header == nil {
		t.Fatalf("construct kinds wrong: %+v", constructs)
	}
}
