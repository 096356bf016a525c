package imgio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/jdtully/pngsteg/internal/steg"
)

// testImage builds an opaque gradient so every channel byte is known and
// survives both PNG and BMP round trips exactly.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: byte(x * 3),
				G: byte(y * 5),
				B: byte(x + y),
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	m, err := Decode(bytes.NewReader(encodePNG(t, testImage(8, 6))))
	require.NoError(t, err)

	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 6, m.Height())
	assert.Equal(t, "png", m.Format())

	// Carrier index 0,1,2 are R,G,B of pixel (0,0); index 3 starts pixel (1,0).
	assert.Equal(t, byte(0), m.ByteAt(0))
	assert.Equal(t, byte(0), m.ByteAt(1))
	assert.Equal(t, byte(0), m.ByteAt(2))
	assert.Equal(t, byte(3), m.ByteAt(3))

	// Row 1 starts at carrier index width*3.
	assert.Equal(t, byte(5), m.ByteAt(8*3+1))
}

func TestSetByte(t *testing.T) {
	m, err := Decode(bytes.NewReader(encodePNG(t, testImage(4, 4))))
	require.NoError(t, err)

	m.SetByte(7, 0xA5)
	assert.Equal(t, byte(0xA5), m.ByteAt(7))

	// Neighboring carrier bytes are unaffected: index 6 is R of pixel (2,0).
	assert.Equal(t, byte(6), m.ByteAt(6))
}

func TestRow(t *testing.T) {
	m, err := Decode(bytes.NewReader(encodePNG(t, testImage(5, 3))))
	require.NoError(t, err)

	row := m.Row(2)
	require.Len(t, row, 5*3)
	for i, b := range row {
		assert.Equal(t, m.ByteAt(2*5*3+i), b, "row byte %d", i)
	}
}

func TestDecodeNotImage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not pixels")))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDecodeRejects16Bit(t *testing.T) {
	deep := image.NewNRGBA64(image.Rect(0, 0, 4, 4))
	_, err := Decode(bytes.NewReader(encodePNG(t, deep)))
	assert.ErrorIs(t, err, ErrUnsupportedDepth)
}

func TestWriteFileRoundTrip(t *testing.T) {
	formats := []struct {
		name   string
		encode func(t *testing.T) []byte
	}{
		{"png", func(t *testing.T) []byte { return encodePNG(t, testImage(10, 10)) }},
		{"bmp", func(t *testing.T) []byte {
			var buf bytes.Buffer
			require.NoError(t, bmp.Encode(&buf, testImage(10, 10)))
			return buf.Bytes()
		}},
	}

	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			m, err := Decode(bytes.NewReader(f.encode(t)))
			require.NoError(t, err)
			assert.Equal(t, f.name, m.Format())

			m.SetByte(0, m.ByteAt(0)|1)
			m.SetByte(40, m.ByteAt(40)&0xFE)

			path := filepath.Join(t.TempDir(), "out."+f.name)
			require.NoError(t, m.WriteFile(path))

			reopened, err := Open(path)
			require.NoError(t, err)
			assert.Equal(t, f.name, reopened.Format())
			for i := 0; i < 10*10*3; i++ {
				require.Equal(t, m.ByteAt(i), reopened.ByteAt(i), "carrier byte %d", i)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "embedded_in.png", OutputName("in.png", "embedded_"))
	assert.Equal(t,
		filepath.Join("some", "dir", "embedded_in.png"),
		OutputName(filepath.Join("some", "dir", "in.png"), "embedded_"))
}

// Full path: embed through the codec, re-encode the container, decode it
// again and extract.
func TestEmbedThroughContainer(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")

	m, err := Decode(bytes.NewReader(encodePNG(t, testImage(20, 20))))
	require.NoError(t, err)

	n, err := (&steg.Embedder{Carrier: m}).Embed(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	require.Equal(t, len(payload), n)

	var container bytes.Buffer
	require.NoError(t, m.Encode(&container))

	reopened, err := Decode(bytes.NewReader(container.Bytes()))
	require.NoError(t, err)

	var out bytes.Buffer
	n, err = (&steg.Extractor{Carrier: reopened}).Extract(&out)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, out.Bytes())
}
