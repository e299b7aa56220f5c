package ithkuil

import "strings"

// GlossFlags control the output format of glosses.
type GlossFlags uint8

const (
	// GlossNone produces the default compact gloss.
	GlossNone GlossFlags = 0

	// GlossLong expands category abbreviations into full names.
	GlossLong GlossFlags = 1 << iota

	// GlossShowDefaults includes categories whose value is the default.
	GlossShowDefaults

	// GlossMarkdown bolds roots and Cs forms with Markdown markers.
	GlossMarkdown
)

// Matches reports whether all bits of other are set in f.
func (f GlossFlags) Matches(other GlossFlags) bool {
	return f&other == other
}

// Glosser is anything that can render itself as a gloss string.
type Glosser interface {
	// Gloss renders the value, including default category values.
	Gloss(flags GlossFlags) string

	// GlossNonDefault renders the value, or "" if it is the default.
	GlossNonDefault(flags GlossFlags) string
}

// glossPick chooses between the short and long form of a category gloss.
func glossPick(flags GlossFlags, short, long string) string {
	if flags.Matches(GlossLong) {
		return long
	}
	return short
}

// addDotted appends value to b with a "." separator. Used for categories
// sharing one slot.
func addDotted(b *strings.Builder, value string) {
	if value == "" {
		return
	}
	if b.Len() != 0 {
		b.WriteByte('.')
	}
	b.WriteString(value)
}

// addDashed appends value to b with a "-" separator. Used across slots.
func addDashed(b *strings.Builder, value string) {
	if value == "" {
		return
	}
	if b.Len() != 0 {
		b.WriteByte('-')
	}
	b.WriteString(value)
}
