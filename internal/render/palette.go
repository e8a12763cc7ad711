package render

// Palette holds the SGR fragments the renderers emit. The zero value
// renders plain text with no escape sequences at all.
type Palette struct {
	File      string // filename in the location prefix
	Separator string // the ':' separators
	LineNo    string // line number in the location prefix
	Highlight string // flagged spans and underlines
	Reset     string
}

// DefaultPalette is the classic compiler-style coloring: green file,
// cyan separators, yellow line number, bold red highlights.
func DefaultPalette() Palette {
	return Palette{
		File:      "\x1b[32m",
		Separator: "\x1b[36m",
		LineNo:    "\x1b[33m",
		Highlight: "\x1b[1;31m",
		Reset:     "\x1b[0m",
	}
}
