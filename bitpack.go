// Package bitpack decodes self-describing, bit-packed binary transmissions.
//
// A transmission is a flat byte buffer interpreted as a bit sequence that
// encodes arbitrarily nested packets: each packet is either a literal
// integer or an operator over an ordered list of sub-packets. Two reductions
// are supported, each computed in a single recursive pass without
// materializing a packet tree:
//
//   - VersionSum: the sum of every packet's 3-bit version field.
//   - Evaluate: the arithmetic value of the root packet (sum, product, min,
//     max, and the two-operand comparisons greater-than, less-than and
//     equal-to over its children).
//
// # Basic Usage
//
// Decoding a hexadecimal transmission string:
//
//	import "github.com/arloliu/bitpack"
//
//	sum, err := bitpack.VersionSumHex("8A004A801A8002F478")
//	if err != nil {
//	    // transmission is malformed or truncated
//	}
//
//	value, err := bitpack.EvaluateHex("C200B40A82")
//	// value == 3 (sum packet over literals 1 and 2)
//
// Decoding an already-converted byte buffer:
//
//	data, _ := transmission.ParseHex("D2FE28")
//	sum, err := bitpack.VersionSum(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lower-level
// packages, simplifying the most common use cases:
//
//   - bitstream: sequential MSB-first bit reading over a byte slice
//   - packet: the recursive-descent packet decoder and its options
//   - transmission: hex parsing and (optionally compressed) file loading
//   - compress: at-rest codecs for stored transmission files
//   - errs: sentinel decode errors
//
// For fine-grained control, such as bounding the nesting depth of untrusted
// input, construct a packet.Decoder directly.
package bitpack

import (
	"github.com/arloliu/bitpack/packet"
	"github.com/arloliu/bitpack/transmission"
)

// VersionSum decodes the root packet in data and returns the sum of all
// version fields across the whole nested structure.
func VersionSum(data []byte) (uint64, error) {
	return packet.VersionSum(data)
}

// Evaluate decodes the root packet in data and returns its arithmetic value.
func Evaluate(data []byte) (uint64, error) {
	return packet.Evaluate(data)
}

// VersionSumHex parses a hexadecimal transmission string and returns the
// version sum of its root packet.
func VersionSumHex(s string) (uint64, error) {
	data, err := transmission.ParseHex(s)
	if err != nil {
		return 0, err
	}

	return packet.VersionSum(data)
}

// EvaluateHex parses a hexadecimal transmission string and returns the
// evaluated value of its root packet.
func EvaluateHex(s string) (uint64, error) {
	data, err := transmission.ParseHex(s)
	if err != nil {
		return 0, err
	}

	return packet.Evaluate(data)
}
