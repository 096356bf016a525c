package steg

// Capacity describes how much payload an image of a given size can carry:
// 3 carrier bytes per pixel, 1 bit per carrier byte.
//
// Bytes is the figure reported to the user. Note it does not subtract the
// 32 carrier bytes reserved for the length header, so the last 4 bytes of
// the reported figure never actually fit.
type Capacity struct {
	Bits  int
	Bytes int
}

// CapacityOf returns the embedding capacity for a width x height
// truecolor image.
func CapacityOf(width, height int) Capacity {
	bits := width * height * 3
	return Capacity{
		Bits:  bits,
		Bytes: bits / 8,
	}
}
