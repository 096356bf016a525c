package steg

import (
	"bufio"
	"fmt"
	"io"
)

// ConfirmFunc decides whether to truncate an oversized payload down to
// available bytes. overage is how many bytes do not fit. Returning false
// aborts the embed before anything is written.
type ConfirmFunc func(overage, available int) bool

// Embedder runs one embed operation against one carrier. Construct a new
// value per operation; it is not safe for concurrent use.
type Embedder struct {
	Carrier Carrier

	// Confirm is consulted when the payload exceeds capacity. A nil
	// Confirm declines.
	Confirm ConfirmFunc
}

// Embed writes size bytes from src into the carrier behind the 32-bit
// length header and returns the number of whole bytes embedded.
//
// If size exceeds the image capacity, Confirm is asked once; on accept
// the payload is clamped to the reported capacity and only its leading
// bytes are embedded. On decline the carrier is left byte-for-byte
// untouched and ErrDeclined is returned.
func (e *Embedder) Embed(src io.Reader, size int64) (int, error) {
	avail := CapacityOf(e.Carrier.Width(), e.Carrier.Height())
	if avail.Bits < headerBits {
		return 0, ErrImageTooSmall
	}

	length := size
	if length > int64(avail.Bytes) {
		if e.Confirm == nil || !e.Confirm(int(length-int64(avail.Bytes)), avail.Bytes) {
			return 0, ErrDeclined
		}
		length = int64(avail.Bytes)
	}

	writeHeader(e.Carrier, uint32(length))

	limited := bufio.NewReader(io.LimitReader(src, length))
	bits, err := packBits(e.Carrier, limited, int(length))
	if err != nil {
		return bits / 8, fmt.Errorf("steg: reading payload: %w", err)
	}
	return bits / 8, nil
}

// Extractor runs one extract operation against one carrier. The carrier
// is only read, never written.
type Extractor struct {
	Carrier Carrier
}

// Extract reads the length header, then streams that many payload bytes
// to dst, returning the count actually produced. The header is trusted:
// if it declares more than the carrier holds, the bytes that do fit are
// written out and ErrIncomplete is returned.
func (x *Extractor) Extract(dst io.Writer) (int, error) {
	if carrierBytes(x.Carrier) < headerBits {
		return 0, ErrImageTooSmall
	}

	length := readHeader(x.Carrier)

	bw := bufio.NewWriter(dst)
	n, err := unpackBits(x.Carrier, bw, int(length))
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("steg: writing payload: %w", ferr)
	}
	return n, err
}
