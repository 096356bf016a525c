// Package imgio opens raster images for the steganography codec and
// writes the mutated pixels back out. PNG and BMP containers are
// supported; every accepted image is normalized to 8-bit RGBA, and the
// R, G, B bytes of each pixel are exposed as a flat carrier byte stream.
package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

var (
	// ErrNotImage is returned when the file is not a container format we
	// can decode.
	ErrNotImage = errors.New("imgio: not a supported image")

	// ErrUnsupportedDepth is returned for images with more than 8 bits
	// per channel.
	ErrUnsupportedDepth = errors.New("imgio: only 8-bit channel depth is supported")
)

// Image is a decoded image held as an RGBA pixel buffer. The carrier
// byte at index i is color channel i%3 (R, G or B) of pixel i/3, pixels
// in scanline order; the alpha channel never carries data.
type Image struct {
	format string
	rgba   *image.RGBA
}

// Open reads and decodes the image at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a PNG or BMP image from r.
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	switch src.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		return nil, fmt.Errorf("%w: image has 16-bit channels", ErrUnsupportedDepth)
	}

	// Normalize to an RGBA buffer anchored at the origin so carrier
	// indices map straight into Pix.
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	return &Image{format: format, rgba: rgba}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.rgba.Rect.Dx() }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.rgba.Rect.Dy() }

// Format returns the container format the image was decoded from
// ("png" or "bmp").
func (m *Image) Format() string { return m.format }

// ByteAt returns carrier byte i.
func (m *Image) ByteAt(i int) byte {
	return m.rgba.Pix[pixOffset(i)]
}

// SetByte overwrites carrier byte i.
func (m *Image) SetByte(i int, b byte) {
	m.rgba.Pix[pixOffset(i)] = b
}

// Row returns the carrier bytes of scanline y (width*3 bytes, alpha
// stripped). The slice is a copy; use SetByte to mutate pixels.
func (m *Image) Row(y int) []byte {
	w := m.Width()
	row := make([]byte, 0, w*3)
	for x := 0; x < w; x++ {
		off := m.rgba.PixOffset(x, y)
		row = append(row, m.rgba.Pix[off], m.rgba.Pix[off+1], m.rgba.Pix[off+2])
	}
	return row
}

// pixOffset maps a carrier index to its position in the RGBA Pix slice,
// skipping the alpha byte of every pixel.
func pixOffset(i int) int {
	return (i/3)*4 + i%3
}

// Encode writes the image to w in its source container format.
func (m *Image) Encode(w io.Writer) error {
	switch m.format {
	case "bmp":
		return bmp.Encode(w, m.rgba)
	default:
		return png.Encode(w, m.rgba)
	}
}

// WriteFile re-encodes the image to path in its source container format.
func (m *Image) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: %w", err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("imgio: encoding %s: %w", m.format, err)
	}
	return f.Close()
}

// OutputName derives the default output filename for an embedded copy of
// the image at path: the base name gains the given prefix, directory
// unchanged.
func OutputName(path, prefix string) string {
	return filepath.Join(filepath.Dir(path), prefix+filepath.Base(path))
}
