// Package section implements the container decompression layer: reading a
// compressed section's framing (expected size, chunk count, per-chunk
// lengths) and inflating each chunk, raw or Huffman-coded, into one
// contiguous output buffer.
//
// Grounded on icza/screp/repparser/repdecoder/legacy.go's legacyDecoder,
// restructured around a single []byte input (the reference streams chunks
// through an io.Reader-like Decoder interface; here the whole section is
// already resident in memory, so Decode takes and returns plain slices).
package section

import (
	"encoding/binary"
	"fmt"
)

// Decode inflates one section starting at the beginning of data, returning
// the decompressed payload and the number of bytes of data consumed.
func Decode(data []byte) (payload []byte, consumed int, err error) {
	if len(data) < 8 {
		return nil, 0, corrupt("framing", 0, "section header truncated")
	}
	expectedSize := binary.LittleEndian.Uint32(data[0:4])
	chunkCount := binary.LittleEndian.Uint32(data[4:8])
	pos := 8

	out := make([]byte, 0, expectedSize)

	for i := uint32(0); i < chunkCount; i++ {
		if pos+4 > len(data) {
			return nil, 0, corrupt("framing", pos, fmt.Sprintf("truncated chunk length prefix (chunk %d)", i))
		}
		chunkLen := int(binary.LittleEndian.Uint32(data[pos : pos+4]))
		pos += 4

		if chunkLen < 0 || pos+chunkLen > len(data) {
			return nil, 0, corrupt("framing", pos, fmt.Sprintf("chunk %d length exceeds remaining input", i))
		}
		chunkPayload := data[pos : pos+chunkLen]

		remainingUncompressed := int(expectedSize) - len(out)
		rawLen := remainingUncompressed
		if rawLen > chunkMax {
			rawLen = chunkMax
		}

		if chunkLen == rawLen {
			out = append(out, chunkPayload...)
		} else {
			decoded, derr := decodeChunk(chunkPayload, pos)
			if derr != nil {
				return nil, 0, derr
			}
			if len(decoded) > chunkMax {
				return nil, 0, corrupt("chunk", pos, "chunk decoded to more than the 8192-byte maximum")
			}
			out = append(out, decoded...)
		}
		pos += chunkLen
	}

	if uint32(len(out)) != expectedSize {
		return nil, 0, corrupt("framing", pos, fmt.Sprintf("decoded %d bytes, expected %d", len(out), expectedSize))
	}

	return out, pos, nil
}
