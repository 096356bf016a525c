package steg

import (
	"io"
)

// packBits writes up to payloadBytes bytes from src into the carrier,
// one bit per carrier byte starting at index 32, LSB of each payload
// byte first. It stops early if src is exhausted or the carrier runs
// out mid-stream, and returns the number of bits written.
func packBits(c Carrier, src io.ByteReader, payloadBytes int) (int, error) {
	total := carrierBytes(c)
	idx := headerBits
	bits := 0

	for n := 0; n < payloadBytes; n++ {
		b, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return bits, err
		}
		for bit := 0; bit < 8; bit++ {
			if idx >= total {
				return bits, nil
			}
			v := c.ByteAt(idx)
			if b&(1<<bit) != 0 {
				v |= 1
			} else {
				v &= 0xFE
			}
			c.SetByte(idx, v)
			idx++
			bits++
		}
	}
	return bits, nil
}

// unpackBits reads payloadBytes bytes out of the carrier LSBs starting at
// index 32, streaming each completed byte to dst. It returns the number
// of whole bytes written; if the carrier runs out first the bytes decoded
// so far are kept and ErrIncomplete is returned.
func unpackBits(c Carrier, dst io.Writer, payloadBytes int) (int, error) {
	total := carrierBytes(c)
	idx := headerBits
	written := 0
	buf := make([]byte, 1)

	for written < payloadBytes {
		var b byte
		for bit := 0; bit < 8; bit++ {
			if idx >= total {
				return written, ErrIncomplete
			}
			b |= (c.ByteAt(idx) & 1) << bit
			idx++
		}
		buf[0] = b
		if _, err := dst.Write(buf); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
