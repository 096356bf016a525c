// Package steg implements LSB steganography over the color-channel bytes
// of a decoded truecolor image: a 32-bit payload length header followed by
// one payload bit per carrier byte.
package steg

import "errors"

// headerBits is the number of leading carrier bytes reserved for the
// payload length. One bit of the length goes into each byte's LSB, so the
// 32-bit length occupies carrier indices [0, 32).
const headerBits = 32

var (
	// ErrImageTooSmall is returned when the image cannot even hold the
	// length header.
	ErrImageTooSmall = errors.New("steg: image too small to hold the length header")

	// ErrDeclined is returned when the payload exceeds capacity and the
	// caller declines truncation. The carrier is left untouched.
	ErrDeclined = errors.New("steg: payload exceeds capacity, truncation declined")

	// ErrIncomplete is returned when the carrier runs out before the
	// length declared in the header has been extracted. Bytes decoded up
	// to that point have already been written to the sink.
	ErrIncomplete = errors.New("steg: carrier exhausted before declared payload length")
)

// Carrier is the pixel byte stream an image exposes for embedding.
// Index i addresses the i-th color-channel byte in scanline order
// (row 0 bytes 0..width*3-1, then row 1, ...); valid indices are
// [0, Width()*Height()*3).
type Carrier interface {
	Width() int
	Height() int
	ByteAt(i int) byte
	SetByte(i int, b byte)
}

func carrierBytes(c Carrier) int {
	return c.Width() * c.Height() * 3
}
