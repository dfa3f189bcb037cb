// Package blend composites coverage-weighted colors onto framebuffer cells.
//
// Only one operator exists: coverage-weighted source-over against an opaque
// destination,
//
//	out = src*a + dst*(1-a)
//
// applied per channel. The destination carries no persistent alpha, so the
// result is always opaque. Blending is physically meaningful on linear-light
// values; OverPacked exists for framebuffers that store display-encoded
// pixels and skip the gamma stage.
package blend

import "github.com/WimbledonLabs/graphics-vid/internal/color"

// Over composites src onto dst with coverage a.
// Coverage outside [0,1] is clamped; the result has A = 1.
func Over(dst, src color.ColorF32, a float32) color.ColorF32 {
	a = coverage(a)
	if a == 1 {
		return color.ColorF32{R: src.R, G: src.G, B: src.B, A: 1}
	}
	ia := 1 - a
	return color.ColorF32{
		R: src.R*a + dst.R*ia,
		G: src.G*a + dst.G*ia,
		B: src.B*a + dst.B*ia,
		A: 1,
	}
}

// OverPacked composites a packed 0x00RRGGBB src onto a packed dst with
// coverage a, rounding each channel. The top byte of the result is zero.
func OverPacked(dst, src uint32, a float32) uint32 {
	a = coverage(a)
	if a == 1 {
		return src & 0xffffff
	}
	sr, sg, sb := color.Unpack(src)
	dr, dg, db := color.Unpack(dst)
	return color.Pack(mix8(dr, sr, a), mix8(dg, sg, a), mix8(db, sb, a))
}

// mix8 returns round(s*a + d*(1-a)).
func mix8(d, s uint8, a float32) uint8 {
	v := float32(s)*a + float32(d)*(1-a)
	//nolint:gosec // G115: v is a convex combination of two bytes
	return uint8(v + 0.5)
}

// coverage clamps a to [0,1]. NaN maps to 0 so that a bad coverage value
// leaves the destination untouched.
func coverage(a float32) float32 {
	if !(a > 0) {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
