package packet

import (
	"fmt"

	"github.com/arloliu/bitpack/bitstream"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/internal/options"
	"github.com/arloliu/bitpack/internal/pool"
)

// DefaultMaxDepth is the packet nesting depth limit applied when no
// WithMaxDepth option is given. Real transmissions nest a few dozen levels
// at most; the default leaves generous headroom while keeping native stack
// usage bounded for untrusted input.
const DefaultMaxDepth = 512

// Decoder decodes one root packet and its descendants from a byte buffer.
//
// Decoding is a single recursive descent per call: the version-sum and
// evaluation results are reduced while parsing, no packet tree is
// materialized. A Decoder holds only configuration and is safe for
// concurrent use; all per-call state lives in the bit reader and operand
// stack created inside each call.
type Decoder struct {
	maxDepth int
}

// Option represents a functional option for configuring the Decoder.
// This is a type alias for the generic Option interface specialized for Decoder.
type Option = options.Option[*Decoder]

// WithMaxDepth sets the maximum packet nesting depth. Exceeding it during a
// decode fails with errs.ErrMaxDepthExceeded instead of growing the native
// call stack without bound.
func WithMaxDepth(depth int) Option {
	return options.New(func(d *Decoder) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be at least 1, got %d", depth)
		}
		d.maxDepth = depth

		return nil
	})
}

// NewDecoder creates a Decoder with the given options applied over defaults.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{maxDepth: DefaultMaxDepth}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

var defaultDecoder = &Decoder{maxDepth: DefaultMaxDepth}

// VersionSum decodes the root packet in data with the default decoder and
// returns the sum of the version fields of every packet in the structure.
func VersionSum(data []byte) (uint64, error) {
	return defaultDecoder.VersionSum(data)
}

// Evaluate decodes the root packet in data with the default decoder and
// returns its arithmetic value.
func Evaluate(data []byte) (uint64, error) {
	return defaultDecoder.Evaluate(data)
}

// VersionSum decodes exactly one root packet starting at bit offset 0 and
// returns the sum of every packet's 3-bit version field. Literal values are
// decoded and discarded; trailing padding bits after the root packet are
// ignored.
func (d *Decoder) VersionSum(data []byte) (uint64, error) {
	r := bitstream.NewReader(data)

	return d.versionSum(r, 0)
}

// Evaluate decodes exactly one root packet starting at bit offset 0 and
// returns its evaluated value: a literal packet's own value, or an operator
// packet's aggregation over its children, operands taken in decode order.
// Trailing padding bits after the root packet are ignored.
func (d *Decoder) Evaluate(data []byte) (uint64, error) {
	r := bitstream.NewReader(data)

	// Child results accumulate on a shared operand stack; each operator
	// slices off its own operands once its extent is known.
	stack, release := pool.GetUint64Slice(0)
	defer release()

	return d.evaluate(r, &stack, 0)
}

func (d *Decoder) versionSum(r *bitstream.Reader, depth int) (uint64, error) {
	if depth >= d.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	version, err := r.ReadBits(versionBits)
	if err != nil {
		return 0, err
	}
	typeID, err := r.ReadBits(typeIDBits)
	if err != nil {
		return 0, err
	}

	sum := uint64(version)

	if typeID == TypeLiteral {
		if _, err := r.ReadLiteralValue(); err != nil {
			return 0, err
		}

		return sum, nil
	}

	err = d.decodeSubPackets(r, func() error {
		childSum, err := d.versionSum(r, depth+1)
		if err != nil {
			return err
		}
		sum += childSum

		return nil
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

func (d *Decoder) evaluate(r *bitstream.Reader, stack *[]uint64, depth int) (uint64, error) {
	if depth >= d.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	// Version is opaque to evaluation but must still be consumed.
	if _, err := r.ReadBits(versionBits); err != nil {
		return 0, err
	}
	typeID, err := r.ReadBits(typeIDBits)
	if err != nil {
		return 0, err
	}

	if typeID == TypeLiteral {
		return r.ReadLiteralValue()
	}

	base := len(*stack)
	err = d.decodeSubPackets(r, func() error {
		val, err := d.evaluate(r, stack, depth+1)
		if err != nil {
			return err
		}
		*stack = append(*stack, val)

		return nil
	})
	if err != nil {
		return 0, err
	}

	result, err := applyOperator(typeID, (*stack)[base:])

	// Operands are consumed by their parent and never retained.
	*stack = (*stack)[:base]

	return result, err
}

// decodeSubPackets reads an operator packet's length type and iterates its
// sub-packet list, invoking decodeChild once per child. The callback must
// decode exactly one packet from the reader.
func (d *Decoder) decodeSubPackets(r *bitstream.Reader, decodeChild func() error) error {
	lengthTypeID, err := r.ReadBits(lengthTypeIDBits)
	if err != nil {
		return err
	}

	if lengthTypeID == lengthTypeBits {
		totalBitLength, err := r.ReadBits(totalBitLengthBits)
		if err != nil {
			return err
		}

		end := r.Pos() + int(totalBitLength)
		for r.Pos() < end {
			if err := decodeChild(); err != nil {
				return err
			}
		}

		// Well-formed sub-packets land exactly on the declared boundary.
		if r.Pos() != end {
			return fmt.Errorf("%w: sub-packets end at bit %d, declared boundary is bit %d",
				errs.ErrSubPacketOverrun, r.Pos(), end)
		}

		return nil
	}

	count, err := r.ReadBits(subPacketCountBits)
	if err != nil {
		return err
	}

	for i := 0; i < int(count); i++ {
		if err := decodeChild(); err != nil {
			return err
		}
	}

	return nil
}

// applyOperator reduces an operator packet's operands to a single value
// according to its type ID. Operands are in decode order, which is
// significant for the comparison operators.
func applyOperator(typeID uint16, operands []uint64) (uint64, error) {
	switch typeID {
	case TypeSum, TypeProduct, TypeMin, TypeMax:
		if len(operands) == 0 {
			return 0, fmt.Errorf("%w: operator type %d requires at least one operand",
				errs.ErrInvalidOperandCount, typeID)
		}
	case TypeGreaterThan, TypeLessThan, TypeEqual:
		if len(operands) != 2 {
			return 0, fmt.Errorf("%w: operator type %d requires exactly two operands, got %d",
				errs.ErrInvalidOperandCount, typeID, len(operands))
		}
	}

	switch typeID {
	case TypeSum:
		var total uint64
		for _, v := range operands {
			total += v
		}

		return total, nil

	case TypeProduct:
		product := uint64(1)
		for _, v := range operands {
			product *= v
		}

		return product, nil

	case TypeMin:
		minVal := operands[0]
		for _, v := range operands[1:] {
			if v < minVal {
				minVal = v
			}
		}

		return minVal, nil

	case TypeMax:
		maxVal := operands[0]
		for _, v := range operands[1:] {
			if v > maxVal {
				maxVal = v
			}
		}

		return maxVal, nil

	case TypeGreaterThan:
		if operands[0] > operands[1] {
			return 1, nil
		}

		return 0, nil

	case TypeLessThan:
		if operands[0] < operands[1] {
			return 1, nil
		}

		return 0, nil

	case TypeEqual:
		if operands[0] == operands[1] {
			return 1, nil
		}

		return 0, nil

	default:
		// Unreachable with a 3-bit type field, handled defensively.
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidTypeID, typeID)
	}
}
