// Package packet implements the recursive-descent decoder for the bitpack
// wire format.
//
// A transmission is a flat byte buffer interpreted as a bit sequence that
// encodes one root packet. Every packet starts with a 3-bit version and a
// 3-bit type ID. Type 4 packets carry a single literal integer encoded as
// 5-bit continuation groups; every other type is an operator over an ordered
// list of sub-packets whose extent is declared either as a 15-bit total bit
// length or an 11-bit sub-packet count.
//
// # Wire Layout
//
//	┌─────────┬─────────┬──────────────────────────────────────────┐
//	│ version │ type ID │ payload                                  │
//	│ 3 bits  │ 3 bits  │                                          │
//	├─────────┴─────────┴──────────────────────────────────────────┤
//	│ type 4 (literal):  5-bit groups, 1 continue bit + 4 payload  │
//	│ other (operator):  1 length-type bit, then either            │
//	│   length type 0:   15-bit total bit length of sub-packets    │
//	│   length type 1:   11-bit count of sub-packets               │
//	└──────────────────────────────────────────────────────────────┘
//
// # Traversals
//
// Two reductions are computed during a single descent, without materializing
// a packet tree:
//
//   - VersionSum: the sum of every packet's version field.
//   - Evaluate: the root packet's arithmetic value. Literals evaluate to
//     their value; operators fold their children per type ID (sum, product,
//     min, max, and the two-operand comparisons greater-than, less-than,
//     equal-to yielding 0 or 1).
//
// Both decode exactly one root packet from bit offset 0 and ignore trailing
// byte-alignment padding. Any malformed bit fails the whole decode; errors
// are the sentinels in github.com/arloliu/bitpack/errs.
package packet
