package steg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 5, 37, 255, 256, 65536, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF}

	for _, v := range values {
		c := newMemCarrier(4, 4)
		before := c.snapshot()

		writeHeader(c, v)
		assert.Equal(t, v, readHeader(c), "value %#x", v)

		for i, b := range c.pix {
			if i < headerBits {
				assert.Equal(t, before[i]&0xFE, b&0xFE, "value %#x touched upper bits of carrier byte %d", v, i)
			} else {
				assert.Equal(t, before[i], b, "value %#x touched carrier byte %d outside the header", v, i)
			}
		}
	}
}

// The header is value-LSB-first: bit i of the length lands in the LSB of
// carrier byte i. 5 = 0b101, so bytes 0 and 2 get a set LSB.
func TestHeaderBitOrder(t *testing.T) {
	c := newMemCarrier(4, 4)
	writeHeader(c, 5)

	for i := 0; i < headerBits; i++ {
		want := byte(0)
		if i == 0 || i == 2 {
			want = 1
		}
		assert.Equal(t, want, c.ByteAt(i)&1, "carrier byte %d", i)
	}
}
