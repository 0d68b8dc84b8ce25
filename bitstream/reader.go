// Package bitstream provides sequential bit-level reading over a byte slice.
//
// The reader consumes bits most-significant-bit first within each byte, the
// order used by the bitpack wire format. It borrows the byte slice without
// copying and keeps only a private read position, so a single immutable
// buffer can back any number of independent readers.
package bitstream

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/bitpack/errs"
)

// MaxReadBits is the largest number of bits a single ReadBits call may
// request. All fixed-width fields in the wire format fit in 15 bits or less,
// so the result of a successful read always fits in a uint16.
const MaxReadBits = 16

const (
	literalGroupBits   = 5
	literalPayloadBits = 4
	literalContinueBit = 0x10
	literalPayloadMask = 0x0F
)

// Reader reads unsigned integers of arbitrary bit width from a byte slice,
// MSB-first, potentially spanning byte boundaries.
//
// Bits are staged through a left-aligned 64-bit buffer that is refilled from
// the byte slice in 8-byte chunks when possible. Every read is bounds-checked
// against the total bit length up front, so a failed read never advances the
// position.
//
// A Reader is single-use, per-decode state and must not be shared across
// goroutines. The underlying byte slice is never modified and may be shared
// freely.
type Reader struct {
	data      []byte
	bytePos   int    // next byte to load into bitBuf
	bitBuf    uint64 // pending bits, left-aligned (MSB first)
	bitCount  int    // number of valid bits in bitBuf
	totalBits int
}

// NewReader creates a reader positioned at bit offset 0 of data.
// The reader borrows data for its lifetime; the caller must not mutate it.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:      data,
		totalBits: len(data) * 8,
	}
}

// Pos returns the number of bits consumed so far.
func (r *Reader) Pos() int {
	return r.bytePos*8 - r.bitCount
}

// Remaining returns the number of unread bits left in the buffer.
func (r *Reader) Remaining() int {
	return r.totalBits - r.Pos()
}

// ReadBits consumes the next n bits (1 to MaxReadBits) and returns them as
// an unsigned integer with the first-read bit in the most significant
// position of the result.
//
// A read that exactly consumes the last available bit succeeds. A read that
// would cross the end of the buffer fails with errs.ErrEndOfStream and
// leaves the position unchanged. Requests outside 1..MaxReadBits fail with
// errs.ErrInvalidBitCount.
func (r *Reader) ReadBits(n int) (uint16, error) {
	if n < 1 || n > MaxReadBits {
		return 0, fmt.Errorf("%w: requested %d bits, want 1..%d", errs.ErrInvalidBitCount, n, MaxReadBits)
	}
	if r.Pos()+n > r.totalBits {
		return 0, errs.ErrEndOfStream
	}

	// Fast path: the staged buffer already holds all requested bits.
	if n <= r.bitCount {
		result := uint16(r.bitBuf >> (64 - n)) //nolint:gosec // n <= 16, value fits
		r.bitBuf <<= n
		r.bitCount -= n

		return result, nil
	}

	var result uint16
	remaining := n
	for remaining > 0 {
		if r.bitCount == 0 {
			r.fill()
		}

		take := remaining
		if take > r.bitCount {
			take = r.bitCount
		}

		chunk := uint16(r.bitBuf >> (64 - take)) //nolint:gosec // take <= 16, value fits
		result = result<<take | chunk

		r.bitBuf <<= take
		r.bitCount -= take
		remaining -= take
	}

	return result, nil
}

// ReadLiteralValue consumes a grouped literal value: a sequence of 5-bit
// groups, each carrying 4 payload bits plus a continuation flag in the top
// bit. Payload nibbles accumulate most-significant-group first; a clear
// continuation flag marks the final group.
//
// The accumulator is a uint64, which holds up to 16 groups (64 payload
// bits). Wider literals silently wrap; known transmissions stay well below
// this ceiling. Running out of bits mid-sequence fails with
// errs.ErrEndOfStream.
func (r *Reader) ReadLiteralValue() (uint64, error) {
	var value uint64
	for {
		group, err := r.ReadBits(literalGroupBits)
		if err != nil {
			return 0, err
		}

		value = value<<literalPayloadBits | uint64(group&literalPayloadMask)
		if group&literalContinueBit == 0 {
			return value, nil
		}
	}
}

// fill loads up to 8 bytes from the byte slice into the staged bit buffer.
// Callers bounds-check before reading, so fill is only invoked while unread
// bytes remain.
func (r *Reader) fill() {
	avail := len(r.data) - r.bytePos

	// Fast path: stage a full 8 bytes with a single big-endian load.
	if avail >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return
	}

	r.bitBuf = 0
	for i := 0; i < avail; i++ {
		r.bitBuf = r.bitBuf<<8 | uint64(r.data[r.bytePos])
		r.bytePos++
	}

	// Left-align partial loads so extraction always starts at the MSB.
	r.bitBuf <<= uint(8-avail) * 8
	r.bitCount = avail * 8
}
