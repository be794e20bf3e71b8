// This file implements MapDirectory: a name-keyed walk over the
// decompressed map section's FOURCC-tagged block chain.
//
// Grounded on icza/screp/repparser/repparser.go's parseMapData loop (the
// FOURCC walking) and rep/mapdata.go (the MapData/unit-record shapes),
// adapted to expose non-copying views instead of an eagerly-decoded struct.

package rep

import (
	"encoding/binary"
	"strings"
)

const (
	maxMapSections = 36
	unitRecordSize = 36
)

// Special unit_id values in UNIT records (see §6.4).
const (
	UnitIDMineralTier1 = 176
	UnitIDMineralTier2 = 177
	UnitIDMineralTier3 = 178
	UnitIDGeyser       = 188
	UnitIDStartLoc     = 214
)

// mapSection is one (tag, payload) entry in the directory.
type mapSection struct {
	tag     [4]byte
	payload []byte
}

// MapDirectory indexes the decompressed map section's block chain by tag.
// It holds non-owning views into the replay's map buffer.
type MapDirectory struct {
	sections []mapSection
}

// NewMapDirectory walks data as a chain of (tag, length, payload) blocks.
// A truncated final block (declared length exceeding remaining bytes) ends
// the walk without error, per §4.4.
func NewMapDirectory(data []byte) *MapDirectory {
	md := &MapDirectory{}
	pos := 0
	for pos+8 <= len(data) && len(md.sections) < maxMapSections {
		var tag [4]byte
		copy(tag[:], data[pos:pos+4])
		length := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8

		if length < 0 || pos+length > len(data) {
			break
		}
		md.sections = append(md.sections, mapSection{tag: tag, payload: data[pos : pos+length]})
		pos += length
	}
	return md
}

// Section returns the payload of the first block whose tag matches name
// case-insensitively, or nil and false if there is none. name must be
// exactly 4 bytes; shorter names never match.
func (md *MapDirectory) Section(name string) ([]byte, bool) {
	if len(name) != 4 {
		return nil, false
	}
	for _, s := range md.sections {
		if strings.EqualFold(string(s.tag[:]), name) {
			return s.payload, true
		}
	}
	return nil, false
}

// TileSection returns the TILE section, falling back to MTXM if TILE is
// absent (some replays only carry the minimap tile graphics section).
func (md *MapDirectory) TileSection() ([]byte, bool) {
	if b, ok := md.Section("TILE"); ok {
		return b, true
	}
	return md.Section("MTXM")
}

// Unit is one fixed-size 36-byte entry of the UNIT section.
type Unit struct {
	D1             uint16
	D2             uint16
	X, Y           uint16
	UnitID         uint16
	PlayerID       byte
	ResourceAmount uint16
}

// Units returns the decoded UNIT section records. Record count is
// length/36; trailing partial bytes are ignored.
func (md *MapDirectory) Units() []Unit {
	payload, ok := md.Section("UNIT")
	if !ok {
		return nil
	}
	count := len(payload) / unitRecordSize
	units := make([]Unit, count)
	for i := 0; i < count; i++ {
		rec := payload[i*unitRecordSize : (i+1)*unitRecordSize]
		units[i] = Unit{
			D1:             binary.LittleEndian.Uint16(rec[0:2]),
			D2:             binary.LittleEndian.Uint16(rec[2:4]),
			X:              binary.LittleEndian.Uint16(rec[4:6]),
			Y:              binary.LittleEndian.Uint16(rec[6:8]),
			UnitID:         binary.LittleEndian.Uint16(rec[8:10]),
			PlayerID:       rec[16],
			ResourceAmount: binary.LittleEndian.Uint16(rec[20:22]),
		}
	}
	return units
}

// IsMineralField reports whether u.UnitID is one of the three mineral-patch
// tiers.
func (u Unit) IsMineralField() bool {
	switch u.UnitID {
	case UnitIDMineralTier1, UnitIDMineralTier2, UnitIDMineralTier3:
		return true
	}
	return false
}

// IsGeyser reports whether u is a Vespene geyser.
func (u Unit) IsGeyser() bool {
	return u.UnitID == UnitIDGeyser
}

// IsStartLocation reports whether u is a player start location marker.
func (u Unit) IsStartLocation() bool {
	return u.UnitID == UnitIDStartLoc
}
