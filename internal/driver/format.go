package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"chisel/internal/format"
	"chisel/internal/scan"
	"chisel/internal/source"
)

// SourceExt is the file extension chisel formats.
const SourceExt = ".chl"

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Options format.Options
	Cache   *Cache
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given files or directories (recursively collecting
// source files). With Check set, files are left untouched and Changed
// reports whether formatting would rewrite them. With Stdout set, formatted
// content is returned in the results instead of being written back.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, formatOne(path, opts))
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	formatted, changed, err := FormatFilePath(path, opts)
	if err != nil {
		result.Err = err
		return result
	}

	switch {
	case opts.Check:
		result.Changed = changed
	case opts.Stdout:
		result.Formatted = formatted
		result.Changed = changed
	case changed:
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Err = err
		} else {
			result.Changed = true
		}
	}
	return result
}

// FormatFilePath loads one file and reports its formatted content plus
// whether it differs from the original.
func FormatFilePath(path string, opts FormatOptions) (formatted []byte, changed bool, err error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, false, err
	}
	sf := fileSet.Get(fileID)

	if opts.Cache != nil {
		if cached, ok := opts.Cache.Get(cacheKey(sf, opts.Options)); ok {
			return cached, !bytes.Equal(sf.Content, cached), nil
		}
	}

	formatted = FormatFile(sf, opts.Options)
	if opts.Cache != nil {
		if err := opts.Cache.Put(cacheKey(sf, opts.Options), path, formatted); err != nil {
			// The cache is an accelerator; a write failure must not fail
			// the formatting run.
			_ = err
		}
	}
	return formatted, !bytes.Equal(sf.Content, formatted), nil
}

// FormatFile rewrites every recognized construct of one loaded file and
// returns the new content. Regions the scanner does not recognize are
// copied through untouched.
func FormatFile(sf *source.File, opts format.Options) []byte {
	opts = opts.WithDefaults()
	constructs := scan.File(sf)

	type edit struct {
		start int
		end   int
		data  []byte
	}
	var edits []edit
	for _, c := range constructs {
		span, text := renderConstruct(sf, c, opts)
		if span.Empty() && text == "" {
			continue
		}
		if sf.TextOf(span) == text {
			continue
		}
		edits = append(edits, edit{start: int(span.Start), end: int(span.End), data: []byte(text)})
	}

	content := append([]byte(nil), sf.Content...)
	if len(edits) == 0 {
		return content
	}

	// Apply back to front so earlier offsets stay valid.
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})
	for _, e := range edits {
		if e.start < 0 || e.start > e.end || e.end > len(content) {
			continue
		}
		content = append(content[:e.start], append(e.data, content[e.end:]...)...)
	}
	return content
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == SourceExt {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if filepath.Ext(p) == SourceExt {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
