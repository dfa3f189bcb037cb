// Package text draws strings with a built-in stroke font.
//
// Every printable ASCII character has an outline made of straight
// segments in a unit glyph cell: x grows to the right, y grows down, capitals
// span 0 to 0.75, the baseline sits at 0.75, the x-height at 0.375 and
// descenders reach 1.
//
// Layout is monospaced. At size s a character cell is s/φ wide and s tall,
// cells are separated by s/φ², and each rune takes exactly one cell whether
// or not it has an outline. There is no shaping and no kerning. Mandatory
// line breaks start a new line below the first.
//
// WithFolding narrows full-width forms, canonically decomposes the input
// and lays out one cell per grapheme cluster, so accented Latin letters
// draw as their base letter.
//
// The package produces line segments in pixel coordinates; drawing them is
// the caller's job (see vid.Framebuffer.DrawText).
package text
