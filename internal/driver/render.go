package driver

import (
	"strings"

	"chisel/internal/format"
	"chisel/internal/scan"
	"chisel/internal/source"
)

// renderConstruct turns one scanned construct into its replacement text,
// already indented for the construct's own line.
func renderConstruct(f *source.File, c scan.Construct, opts format.Options) (source.Span, string) {
	switch {
	case c.Header != nil:
		return c.Header.Replace, renderHeader(f, c.Header, opts)
	case c.Import != nil:
		return c.Import.Replace, renderImport(f, c.Import, opts)
	default:
		return source.Span{}, ""
	}
}

func renderHeader(f *source.File, h *scan.Header, opts format.Options) string {
	indent := lineIndentAt(f, h.Replace.Start)
	shape := format.NewShape(opts.MaxWidth-indent, format.AlignTo(indent))
	m := format.Merger{File: f, Opts: opts}
	return format.AssembleHeader(m, shape, h.Fragments)
}

func renderImport(f *source.File, im *scan.Import, opts format.Options) string {
	var prefix strings.Builder
	if im.Vis != "" {
		prefix.WriteString(im.Vis)
		prefix.WriteByte(' ')
	}
	prefix.WriteString("use ")
	prefix.WriteString(strings.Join(im.Path, "::"))
	prefix.WriteString("::{")

	indent := lineIndentAt(f, im.Replace.Start)
	col := indent + len(prefix.String())
	cfg := format.ListConfig{
		Tactic:            opts.Tactic,
		IndentStyle:       opts.IndentStyle,
		TrailingSeparator: opts.TrailingSeparator,
		Separator:         opts.Separator,
		Width:             opts.MaxWidth,
		Indent:            format.AlignTo(indent),
		IndentWidth:       opts.IndentWidth,
		StartColumn:       col,
		VisualColumn:      col,
	}

	body := format.WriteList(im.Items, cfg)
	if !strings.Contains(body, "\n") || opts.IndentStyle == format.IndentVisual {
		return prefix.String() + body + "};"
	}

	// Block style and the list went multi-line: items move onto their own
	// lines between the braces, re-laid-out from the block indent.
	cont := cfg.Indent.BlockIndent(cfg.IndentWidth)
	cfg.StartColumn = cont.Width()
	body = format.WriteList(im.Items, cfg)
	return prefix.String() + "\n" + cont.String() + body + "\n" +
		strings.Repeat(" ", indent) + "};"
}

// lineIndentAt measures the indentation of the line offset sits on.
func lineIndentAt(f *source.File, offset uint32) int {
	start := int(offset)
	if start > len(f.Content) {
		start = len(f.Content)
	}
	lineStart := start
	for lineStart > 0 && f.Content[lineStart-1] != '\n' {
		lineStart--
	}
	indent := 0
	for _, b := range f.Content[lineStart:start] {
		if b == '\t' {
			indent += 4
		} else {
			indent++
		}
	}
	return indent
}
