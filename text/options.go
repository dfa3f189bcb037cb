package text

// Option configures Strokes and Measure.
//
// Example:
//
//	// "Ａ" draws as "A", "é" as "e" in a single cell
//	for st := range text.Strokes(origin, 20, s, text.WithFolding()) {
//	    ...
//	}
type Option func(*options)

type options struct {
	fold bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFolding maps text onto the ASCII glyph table before layout:
// full-width forms are narrowed, the text is canonically decomposed, and
// each grapheme cluster takes one cell drawn with its base character.
// Without it, every rune takes a cell and runes outside the table are
// blank.
func WithFolding() Option {
	return func(o *options) {
		o.fold = true
	}
}
