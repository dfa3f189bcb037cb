package color

// lutSize gives 12-bit input precision, more than enough for 8-bit output.
const lutSize = 4096

// displayLUT caches Encode8 over lutSize evenly spaced linear inputs.
var displayLUT [lutSize]uint8

func init() {
	for i := range lutSize {
		displayLUT[i] = Encode8(float32(i) / (lutSize - 1))
	}
}

// Encode8Fast is Encode8 through a lookup table. It may differ from
// Encode8 by one step where the curve is steep near black.
func Encode8Fast(x float32) uint8 {
	x = clamp01(x)
	return displayLUT[int(x*(lutSize-1)+0.5)]
}

// EncodeFast is Encode using Encode8Fast.
func EncodeFast(c ColorF32) uint32 {
	return Pack(Encode8Fast(c.R*c.A), Encode8Fast(c.G*c.A), Encode8Fast(c.B*c.A))
}
