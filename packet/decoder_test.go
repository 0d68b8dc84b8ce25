package packet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/transmission"
)

// field is one fixed-width value used by buildBits.
type field struct {
	value uint64
	width int
}

// buildBits packs fields MSB-first into a byte slice, zero-padding the final
// byte, mirroring how transmissions byte-align their single root packet.
func buildBits(t *testing.T, fields ...field) []byte {
	t.Helper()

	var (
		out     []byte
		acc     uint64
		accBits int
	)
	for _, f := range fields {
		require.LessOrEqual(t, f.width, 64)
		for i := f.width - 1; i >= 0; i-- {
			acc = acc<<1 | (f.value>>uint(i))&1
			accBits++
			if accBits == 8 {
				out = append(out, byte(acc))
				acc, accBits = 0, 0
			}
		}
	}
	if accBits > 0 {
		out = append(out, byte(acc<<uint(8-accBits)))
	}

	return out
}

// literalFields encodes a literal packet (version 0) holding a value that
// fits in two 5-bit groups.
func literalFields(value uint64) []field {
	return []field{
		{0, versionBits},
		{uint64(TypeLiteral), typeIDBits},
		{1, 1}, {value >> 4, 4}, // leading group, continuation set
		{0, 1}, {value & 0x0F, 4}, // final group
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := transmission.ParseHex(s)
	require.NoError(t, err)

	return data
}

func TestVersionSum_Literal(t *testing.T) {
	sum, err := VersionSum(decodeHex(t, "D2FE28"))
	require.NoError(t, err)
	require.Equal(t, uint64(6), sum)
}

func TestVersionSum_BitLengthDelimited(t *testing.T) {
	// Operator (length-in-bits form) with two literal children 10 and 20.
	sum, err := VersionSum(decodeHex(t, "38006F45291200"))
	require.NoError(t, err)
	require.Equal(t, uint64(9), sum)
}

func TestVersionSum_CountDelimited(t *testing.T) {
	// Operator (count form) with three literal children 1, 2, 3.
	sum, err := VersionSum(decodeHex(t, "EE00D40C823060"))
	require.NoError(t, err)
	require.Equal(t, uint64(14), sum)
}

func TestVersionSum_NestedOperators(t *testing.T) {
	vectors := []struct {
		hex  string
		want uint64
	}{
		{"8A004A801A8002F478", 16},
		{"620080001611562C8802118E34", 12},
		{"C0015000016115A2E0802F182340", 23},
		{"A0016C880162017C3686B18A3D4780", 31},
	}
	for _, vec := range vectors {
		sum, err := VersionSum(decodeHex(t, vec.hex))
		require.NoError(t, err, "transmission %s", vec.hex)
		require.Equal(t, vec.want, sum, "transmission %s", vec.hex)
	}
}

func TestEvaluate_Literal(t *testing.T) {
	value, err := Evaluate(decodeHex(t, "D2FE28"))
	require.NoError(t, err)
	require.Equal(t, uint64(2021), value)
}

func TestEvaluate_Operators(t *testing.T) {
	vectors := []struct {
		hex  string
		want uint64
	}{
		{"C200B40A82", 3},                 // sum of 1 and 2
		{"04005AC33890", 54},              // product of 6 and 9
		{"880086C3E88112", 7},             // minimum of 7, 8, 9
		{"CE00C43D881120", 9},             // maximum of 7, 8, 9
		{"D8005AC2A8F0", 1},               // 5 < 15
		{"F600BC2D8F", 0},                 // not 5 > 15
		{"9C005AC2F8F0", 0},               // not 5 == 15
		{"9C0141080250320F1802104A08", 1}, // 1 + 3 == 2 * 2
	}
	for _, vec := range vectors {
		value, err := Evaluate(decodeHex(t, vec.hex))
		require.NoError(t, err, "transmission %s", vec.hex)
		require.Equal(t, vec.want, value, "transmission %s", vec.hex)
	}
}

func TestEvaluate_OperandOrderSignificant(t *testing.T) {
	comparison := func(typeID uint16, a, b uint64) []byte {
		fields := []field{
			{0, versionBits},
			{uint64(typeID), typeIDBits},
			{uint64(lengthTypeCount), lengthTypeIDBits},
			{2, subPacketCountBits},
		}
		fields = append(fields, literalFields(a)...)
		fields = append(fields, literalFields(b)...)

		return buildBits(t, fields...)
	}

	// Swapping the operands of gt/lt flips the outcome.
	v, err := Evaluate(comparison(TypeGreaterThan, 20, 10))
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)

	v, err = Evaluate(comparison(TypeGreaterThan, 10, 20))
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	v, err = Evaluate(comparison(TypeLessThan, 20, 10))
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	v, err = Evaluate(comparison(TypeLessThan, 10, 20))
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)

	// Swapping preserves eq's outcome.
	v, err = Evaluate(comparison(TypeEqual, 20, 10))
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	v, err = Evaluate(comparison(TypeEqual, 10, 20))
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}

func TestDecode_TruncatedHeader(t *testing.T) {
	// A single zero byte: the header parses as an operator packet but the
	// 15-bit length field runs past the end of the buffer.
	_, err := VersionSum([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrEndOfStream)

	_, err = Evaluate([]byte{0x00})
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestDecode_TruncatedLiteral(t *testing.T) {
	// Version 0, type 4, then two groups filling the buffer exactly, the
	// last with its continuation flag still set.
	data := buildBits(t,
		field{0, versionBits},
		field{uint64(TypeLiteral), typeIDBits},
		field{1, 1}, field{0x0F, 4},
		field{1, 1}, field{0x0F, 4},
	)
	require.Len(t, data, 2)

	_, err := Evaluate(data)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestDecode_EmptyBuffer(t *testing.T) {
	_, err := VersionSum(nil)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestDecode_SubPacketOverrun(t *testing.T) {
	// Bit-length form declaring 10 bits of sub-packets, but the only child
	// is an 11-bit literal that decodes past the declared boundary.
	data := buildBits(t,
		field{0, versionBits},
		field{uint64(TypeSum), typeIDBits},
		field{uint64(lengthTypeBits), lengthTypeIDBits},
		field{10, totalBitLengthBits},
		field{0, versionBits},
		field{uint64(TypeLiteral), typeIDBits},
		field{0, 1}, field{0x05, 4},
		field{0, 16}, // padding so the child itself does not hit end of stream
	)

	_, err := VersionSum(data)
	require.ErrorIs(t, err, errs.ErrSubPacketOverrun)

	_, err = Evaluate(data)
	require.ErrorIs(t, err, errs.ErrSubPacketOverrun)
}

func TestEvaluate_MissingOperands(t *testing.T) {
	// Comparison with a single operand.
	single := buildBits(t, append([]field{
		{0, versionBits},
		{uint64(TypeGreaterThan), typeIDBits},
		{uint64(lengthTypeCount), lengthTypeIDBits},
		{1, subPacketCountBits},
	}, literalFields(10)...)...)

	_, err := Evaluate(single)
	require.ErrorIs(t, err, errs.ErrInvalidOperandCount)

	// Aggregation with no operands at all.
	empty := buildBits(t,
		field{0, versionBits},
		field{uint64(TypeMin), typeIDBits},
		field{uint64(lengthTypeCount), lengthTypeIDBits},
		field{0, subPacketCountBits},
	)

	_, err = Evaluate(empty)
	require.ErrorIs(t, err, errs.ErrInvalidOperandCount)

	// The version-sum traversal never aggregates operands, so the same
	// structurally valid buffers still sum cleanly.
	sum, err := VersionSum(single)
	require.NoError(t, err)
	require.Equal(t, uint64(0), sum)
}

func TestDecoder_MaxDepth(t *testing.T) {
	// Root operator holding two operators whose literals sit at nesting
	// depth 2.
	data := decodeHex(t, "C0015000016115A2E0802F182340")

	decoder, err := NewDecoder(WithMaxDepth(2))
	require.NoError(t, err)

	_, err = decoder.VersionSum(data)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	_, err = decoder.Evaluate(data)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	// A sufficient limit decodes normally.
	decoder, err = NewDecoder(WithMaxDepth(8))
	require.NoError(t, err)

	sum, err := decoder.VersionSum(data)
	require.NoError(t, err)
	require.Equal(t, uint64(23), sum)
}

func TestNewDecoder_InvalidMaxDepth(t *testing.T) {
	_, err := NewDecoder(WithMaxDepth(0))
	require.Error(t, err)
}
