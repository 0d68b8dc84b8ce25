package packet

// Packet type IDs. Every packet header carries one of these in its 3-bit
// type field; TypeLiteral packets carry a grouped integer value, all others
// are operators over an ordered list of sub-packets.
const (
	TypeSum         uint16 = 0
	TypeProduct     uint16 = 1
	TypeMin         uint16 = 2
	TypeMax         uint16 = 3
	TypeLiteral     uint16 = 4
	TypeGreaterThan uint16 = 5
	TypeLessThan    uint16 = 6
	TypeEqual       uint16 = 7
)

// Length type IDs for operator packets, selecting how the extent of the
// sub-packet list is declared.
const (
	// lengthTypeBits precedes a 15-bit total bit length of all sub-packets.
	lengthTypeBits uint16 = 0
	// lengthTypeCount precedes an 11-bit count of sub-packets.
	lengthTypeCount uint16 = 1
)

// Header and length field widths in bits.
const (
	versionBits        = 3
	typeIDBits         = 3
	lengthTypeIDBits   = 1
	totalBitLengthBits = 15
	subPacketCountBits = 11
)
