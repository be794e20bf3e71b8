// Package bwrep decodes StarCraft: Brood War replay files into a structured
// in-memory record: a fixed-size header, a lazy action stream, and a
// name-keyed map section directory.
//
// Grounded on icza/screp/repparser/repparser.go's top-level Parse/ParseFile
// entry points, adapted to this format's three-compressed-section layout
// (header, commands, map) instead of icza/screp's larger multi-section
// table.
package bwrep

import (
	"encoding/binary"
	"os"

	"github.com/brooddecode/bwrep/rep"
	"github.com/brooddecode/bwrep/section"
)

// Magic is the constant that must open every replay file.
const Magic uint32 = 0x53526572

const headerUncompressedSize = 633

// Config gates which sections Decode retains on the returned Replay,
// mirroring the teacher's repparser.Config / Sections-list knob. Every
// section is decoded and validated whatever Config says. The header is
// always retained (Decode cannot know the map size or player list without it).
type Config struct {
	// Commands tells whether the commands section is retained. When false,
	// the section is still decoded (so the map section can be located), but
	// Actions() on the returned Replay yields no actions.
	Commands bool

	// MapData tells whether the map section is retained. When false, the
	// section is still decoded, but Map() on the returned Replay yields an
	// empty directory.
	MapData bool

	// Debug retains each section's raw, still-framed bytes (length prefix,
	// chunk headers and all) on the returned Replay for inspection, mirroring
	// the teacher's HeaderDebug/CommandsDebug/MapDataDebug.
	Debug bool
}

// DefaultConfig decodes and retains every section.
func DefaultConfig() Config {
	return Config{Commands: true, MapData: true}
}

// Decode fully decodes a replay from an in-memory byte buffer using
// DefaultConfig. The returned Replay owns its decompressed buffers; data
// itself is not retained.
func Decode(data []byte) (*rep.Replay, error) {
	return DecodeConfig(data, DefaultConfig())
}

// DecodeConfig decodes a replay from an in-memory byte buffer according to
// cfg. The returned Replay owns its decompressed buffers; data itself is not
// retained, except that with cfg.Debug set the Replay's Debug field holds
// sub-slices of data.
func DecodeConfig(data []byte, cfg Config) (*rep.Replay, error) {
	if len(data) < 4 {
		return nil, &rep.TruncatedInput{At: 0}
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != Magic {
		return nil, &rep.BadMagic{Got: magic}
	}
	pos := 4

	headerStart := pos
	headerBlob, n, err := section.Decode(data[pos:])
	if err != nil {
		return nil, err
	}
	if len(headerBlob) != headerUncompressedSize {
		return nil, &rep.HeaderSizeMismatch{Got: len(headerBlob), Want: headerUncompressedSize}
	}
	pos += n
	headerRaw := data[headerStart:pos]

	header, err := rep.ParseHeader(headerBlob)
	if err != nil {
		return nil, err
	}

	cmdsStart := pos
	commands, err := decodeFramedSection(data, &pos, "commands")
	if err != nil {
		return nil, err
	}
	cmdsRaw := data[cmdsStart:pos]

	mapStart := pos
	mapData, err := decodeFramedSection(data, &pos, "map")
	if err != nil {
		return nil, err
	}
	mapRaw := data[mapStart:pos]

	retainedCommands, retainedMapData := commands, mapData
	if !cfg.Commands {
		retainedCommands = nil
	}
	if !cfg.MapData {
		retainedMapData = nil
	}

	r := rep.NewReplay(header, retainedCommands, retainedMapData)
	if cfg.Debug {
		r.Debug = &rep.ReplayDebug{
			RawHeader:   headerRaw,
			RawCommands: cmdsRaw,
			RawMapData:  mapRaw,
		}
	}
	return r, nil
}

// decodeFramedSection reads the commands/map layer of framing: a standalone
// 4-byte little-endian length N, immediately followed by a section framed
// exactly as section.Decode expects (its own expected_uncompressed_size,
// chunk_count, and chunks). N must equal the section's own decoded length;
// section.Decode only validates its own inner framing, not this outer
// prefix, so that check happens here. *pos is advanced past both the prefix
// and the section itself.
func decodeFramedSection(data []byte, pos *int, name string) ([]byte, error) {
	if len(data)-*pos < 4 {
		return nil, &rep.TruncatedInput{At: *pos}
	}
	want := int(binary.LittleEndian.Uint32(data[*pos : *pos+4]))
	*pos += 4

	payload, n, err := section.Decode(data[*pos:])
	if err != nil {
		return nil, err
	}
	if len(payload) != want {
		return nil, &rep.SectionLengthMismatch{Section: name, Got: len(payload), Want: want}
	}
	*pos += n
	return payload, nil
}

// DecodeFile reads and decodes a replay file from disk using DefaultConfig.
func DecodeFile(name string) (*rep.Replay, error) {
	return DecodeFileConfig(name, DefaultConfig())
}

// DecodeFileConfig reads and decodes a replay file from disk according to cfg.
func DecodeFileConfig(name string, cfg Config) (*rep.Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return DecodeConfig(data, cfg)
}
