package styles

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Chroma style names for YAML snapshot highlighting.
const (
	SyntaxDark  = "enrollview"
	SyntaxLight = "enrollview-light"
)

func init() {
	styles.Register(SyntaxTheme)
	styles.Register(SyntaxLightTheme)
}

// SyntaxTheme highlights YAML on dark terminals.
var SyntaxTheme = chroma.MustNewStyle(SyntaxDark, chroma.StyleEntries{
	chroma.Background: "bg:#1e1e2e",
	chroma.Text:       "#eaeaea",
	chroma.Error:      "#ff5555 bold",

	// keys
	chroma.NameTag:       "bold #8be9fd",
	chroma.NameAttribute: "#8be9fd",

	chroma.Keyword:         "#ff79c6",
	chroma.KeywordConstant: "#bd93f9",

	chroma.String:      "#f1fa8c",
	chroma.Number:      "#bd93f9",
	chroma.NumberFloat: "#bd93f9",
	chroma.Punctuation: "#6c7086",
	chroma.Comment:     "italic #6272a4",
})

// SyntaxLightTheme is the light variant.
var SyntaxLightTheme = chroma.MustNewStyle(SyntaxLight, chroma.StyleEntries{
	chroma.Background: "bg:#fafafa",
	chroma.Text:       "#383a42",

	chroma.NameTag:       "bold #0184bc",
	chroma.NameAttribute: "#0184bc",

	chroma.Keyword:         "#a626a4",
	chroma.KeywordConstant: "#986801",

	chroma.String:      "#50a14f",
	chroma.Number:      "#986801",
	chroma.NumberFloat: "#986801",
	chroma.Punctuation: "#a0a1a7",
	chroma.Comment:     "italic #a0a1a7",
})

// SyntaxStyle returns the chroma style name for a UI theme.
func SyntaxStyle(theme string) string {
	if theme == ThemeLight {
		return SyntaxLight
	}
	return SyntaxDark
}
