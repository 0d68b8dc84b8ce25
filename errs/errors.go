// Package errs defines the sentinel errors returned by the bitpack decoder.
//
// All errors are comparable with errors.Is. Call sites attach context
// (requested bit counts, offending type IDs) by wrapping these sentinels
// with fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrEndOfStream indicates a bit read or literal-group sequence ran past
	// the end of the available bits. It always signals malformed or truncated
	// input.
	ErrEndOfStream = errors.New("end of bit stream")

	// ErrInvalidBitCount indicates a single read requested more than 16 bits.
	// This is a programmer error in the caller, not a property of the input;
	// neither public decode entry point can trigger it.
	ErrInvalidBitCount = errors.New("invalid bit count")

	// ErrInvalidTypeID indicates a packet declared a type ID outside the
	// defined 0-7 set. Unreachable with a 3-bit header field, but handled
	// defensively rather than assumed impossible.
	ErrInvalidTypeID = errors.New("invalid packet type ID")

	// ErrSubPacketOverrun indicates a child packet decoded past its parent's
	// declared bit-length boundary. Well-formed input never does this; it is
	// a protocol violation, not a truncation.
	ErrSubPacketOverrun = errors.New("sub-packet overran parent boundary")

	// ErrMaxDepthExceeded indicates packet nesting exceeded the decoder's
	// configured depth limit.
	ErrMaxDepthExceeded = errors.New("maximum packet nesting depth exceeded")

	// ErrInvalidOperandCount indicates an operator packet declared fewer
	// sub-packets than its operation requires: at least one for the
	// aggregating operators, exactly two for the comparison operators.
	ErrInvalidOperandCount = errors.New("invalid operand count for operator")

	// ErrInvalidHexString indicates a transmission string is not valid
	// even-length hexadecimal.
	ErrInvalidHexString = errors.New("invalid hexadecimal transmission")
)
