// This file contains the fixed Huffman-style decode tables used by the
// chunk codec. They are not derivable from a short description of the
// format; they are part of the format itself, carried here as data (not
// control flow), exactly reproduced from the reference decoder.
//
// Grounded byte-for-byte on icza/screp/repparser/repdecoder/legacy.go's
// off507120/off507160/off5071A0/off5071B0/off5071D0/off5071E0 tables (itself
// a rewrite of JCA's bwreplib / the StormLib PKWARE Data Compression
// ("explode") tables), cross-checked against the original C source at
// 3rdparty/bwreplib/unpack.cpp.

package section

// distSlotBitLen gives, for each of the 64 distance slots, the bit length of
// that slot's prefix code (and, by construction of this particular table,
// doubles as its own "extra bits" count when decoding a slot index).
var distSlotBitLen = [0x40]byte{
	0x02, 0x04, 0x04, 0x05, 0x05, 0x05, 0x05, 0x06,
	0x06, 0x06, 0x06, 0x06, 0x06, 0x06, 0x06, 0x06,
	0x06, 0x06, 0x06, 0x06, 0x06, 0x06, 0x07, 0x07,
	0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07,
	0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07,
	0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07,
	0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08,
	0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08,
}

// distSlotCode gives the prefix code (bit pattern) for each of the 64
// distance slots.
var distSlotCode = [0x40]byte{
	0x03, 0x0D, 0x05, 0x19, 0x09, 0x11, 0x01, 0x3E,
	0x1E, 0x2E, 0x0E, 0x36, 0x16, 0x26, 0x06, 0x3A,
	0x1A, 0x2A, 0x0A, 0x32, 0x12, 0x22, 0x42, 0x02,
	0x7C, 0x3C, 0x5C, 0x1C, 0x6C, 0x2C, 0x4C, 0x0C,
	0x74, 0x34, 0x54, 0x14, 0x64, 0x24, 0x44, 0x04,
	0x78, 0x38, 0x58, 0x18, 0x68, 0x28, 0x48, 0x08,
	0xF0, 0x70, 0xB0, 0x30, 0xD0, 0x50, 0x90, 0x10,
	0xE0, 0x60, 0xA0, 0x20, 0xC0, 0x40, 0x80, 0x00,
}

// lenExtraBits gives, for each of the 16 length codes, how many extra bits
// follow the code to refine the base length.
var lenExtraBits = [0x10]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
}

// lenBase gives, for each of the 16 length codes, the base value the extra
// bits are added to.
var lenBase = [0x10]uint16{
	0x0000, 0x0001, 0x0002, 0x0003, 0x0004, 0x0005, 0x0006, 0x0007,
	0x0008, 0x000A, 0x000E, 0x0016, 0x0026, 0x0046, 0x0086, 0x0106,
}

// lenCodeBitLen gives the bit length of each of the 16 length codes' prefix.
var lenCodeBitLen = [0x10]byte{
	0x03, 0x02, 0x03, 0x03, 0x04, 0x04, 0x04, 0x05,
	0x05, 0x05, 0x05, 0x06, 0x06, 0x06, 0x07, 0x07,
}

// lenCode gives the prefix code (bit pattern) for each of the 16 length codes.
var lenCode = [0x10]byte{
	0x05, 0x03, 0x01, 0x06, 0x0A, 0x02, 0x0C, 0x14,
	0x04, 0x18, 0x08, 0x30, 0x10, 0x20, 0x40, 0x00,
}

// distSlotDecodeTable and lenDecodeTable are 256-entry flattened lookup
// tables: peek 8 bits of the stream and index directly into the table to
// get the decoded slot/length-code index, instead of walking a prefix tree
// bit by bit.
var (
	distSlotDecodeTable [256]byte
	lenDecodeTable      [256]byte
)

func init() {
	buildLookupTable(distSlotBitLen[:], distSlotCode[:], distSlotDecodeTable[:])
	buildLookupTable(lenCodeBitLen[:], lenCode[:], lenDecodeTable[:])
}

// buildLookupTable flattens a canonical prefix code (given as parallel
// bit-length/code arrays) into a 256-entry direct lookup table: every byte
// value whose low bits match a valid code gets that code's index written at
// every position consistent with the remaining (don't-care) high bits.
func buildLookupTable(bitLen, code []byte, dst []byte) {
	for n := len(bitLen) - 1; n >= 0; n-- {
		step := 1 << bitLen[n]
		for x := int(code[n]); x < 256; x += step {
			dst[x] = byte(n)
		}
	}
}
