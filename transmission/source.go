// Package transmission loads and validates raw packet transmissions.
//
// A transmission is stored as a single line of hexadecimal text, one
// character pair per byte, optionally compressed at rest with one of the
// codecs in the compress package. This package converts stored transmissions
// into the byte buffers consumed by the packet decoder; it performs no
// bit-level interpretation itself.
package transmission

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/bitpack/compress"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/hash"
)

// Message is a decoded transmission payload.
//
// The payload bytes are owned by the Message and never mutated after
// construction, so a Message may be shared across concurrent decode calls.
// The ID is the xxHash64 of the payload, used to identify a transmission in
// logs and diagnostics without reproducing its content.
type Message struct {
	data []byte
	id   uint64
}

// NewMessage wraps raw payload bytes in a Message, computing its ID.
// The caller must not mutate data after the call.
func NewMessage(data []byte) Message {
	return Message{
		data: data,
		id:   hash.ID(data),
	}
}

// Bytes returns the raw payload. Callers must treat it as read-only.
func (m Message) Bytes() []byte {
	return m.data
}

// ID returns the 64-bit xxHash identity of the payload.
func (m Message) ID() uint64 {
	return m.id
}

// Len returns the payload length in bytes.
func (m Message) Len() int {
	return len(m.data)
}

// ParseHex converts an even-length string of hexadecimal digits into bytes,
// pairwise ("1A2B" -> [0x1A, 0x2B]). Surrounding whitespace is trimmed.
// Malformed input fails with errs.ErrInvalidHexString.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", errs.ErrInvalidHexString, len(s))
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidHexString, err)
	}

	return data, nil
}

// ParseMessage parses a hexadecimal transmission string into a Message.
func ParseMessage(s string) (Message, error) {
	data, err := ParseHex(s)
	if err != nil {
		return Message{}, err
	}

	return NewMessage(data), nil
}

// Load reads a stored transmission file, reverses its at-rest compression,
// and parses the first line as a hexadecimal transmission.
//
// Use format.CompressionNone for plain text dumps.
func Load(path string, compression format.CompressionType) (Message, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Message{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("failed to read transmission file: %w", err)
	}

	text, err := codec.Decompress(raw)
	if err != nil {
		return Message{}, fmt.Errorf("failed to decompress transmission file: %w", err)
	}

	line := string(text)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	return ParseMessage(line)
}
