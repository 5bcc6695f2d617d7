// Package source owns loaded source files and byte-offset spans into them.
// A FileSet normalizes content on load (BOM, CRLF) and keeps a line index so
// spans resolve back to line/column positions; File exposes the snippet
// lookups the formatter uses to read gap text and pin keyword positions.
package source
