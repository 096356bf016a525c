package steg

// writeHeader stores length into the LSBs of the first 32 carrier bytes,
// value bit i into carrier byte i. The upper 7 bits of each carrier byte
// are left alone.
func writeHeader(c Carrier, length uint32) {
	for i := 0; i < headerBits; i++ {
		v := c.ByteAt(i)
		if length&(1<<i) != 0 {
			v |= 1
		} else {
			v &= 0xFE
		}
		c.SetByte(i, v)
	}
}

// readHeader reassembles the payload length from the LSBs of the first
// 32 carrier bytes.
func readHeader(c Carrier) uint32 {
	var length uint32
	for i := 0; i < headerBits; i++ {
		length |= uint32(c.ByteAt(i)&1) << i
	}
	return length
}
