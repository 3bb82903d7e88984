// Package highlight applies terminal syntax highlighting to snapshot output.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/willibrandon/enrollview/internal/ui/styles"
)

// YAML highlights a YAML document for a 256-color terminal using the chroma
// style of theme. The source is returned unchanged if highlighting fails.
func YAML(source, theme string) string {
	return WithStyle(source, "yaml", styles.SyntaxStyle(theme))
}

// WithStyle highlights source with the named lexer and chroma style.
func WithStyle(source, lexer, style string) string {
	if source == "" {
		return ""
	}
	if style == "" {
		style = styles.SyntaxDark
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, lexer, "terminal256", style); err != nil {
		return source
	}
	return buf.String()
}
