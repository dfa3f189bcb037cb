// Package color provides the linear-light color type and the fixed
// linear-to-display transfer curve used by the gamma stage.
package color

// ColorF32 represents a linear-light color with float32 components in [0,1].
// A is coverage; it is never gamma-encoded.
type ColorF32 struct {
	R, G, B, A float32
}

// Pack packs three 8-bit display channels as 0x00RRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed 0x??RRGGBB value into its channels.
// The top byte is ignored.
func Unpack(p uint32) (r, g, b uint8) {
	//nolint:gosec // G115: masked to 8 bits
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Encode converts a linear color to a packed display value.
// The RGB channels are scaled by A before encoding.
func Encode(c ColorF32) uint32 {
	return Pack(Encode8(c.R*c.A), Encode8(c.G*c.A), Encode8(c.B*c.A))
}

// Decode converts a packed display value to an opaque linear color.
func Decode(p uint32) ColorF32 {
	r, g, b := Unpack(p)
	return ColorF32{R: Decode8(r), G: Decode8(g), B: Decode8(b), A: 1}
}
