package rep

import (
	"encoding/binary"
	"testing"
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestMapDirectory_SectionLookup(t *testing.T) {
	var data []byte
	data = append(data, []byte("TILE")...)
	data = append(data, le32(4)...)
	data = append(data, []byte{0x01, 0x02, 0x03, 0x04}...)

	unit := make([]byte, 36)
	binary.LittleEndian.PutUint16(unit[4:6], 1024)
	binary.LittleEndian.PutUint16(unit[6:8], 2048)
	binary.LittleEndian.PutUint16(unit[8:10], UnitIDStartLoc)
	unit[16] = 3

	data = append(data, []byte("UNIT")...)
	data = append(data, le32(36)...)
	data = append(data, unit...)

	md := NewMapDirectory(data)

	got, ok := md.Section("tile")
	if !ok {
		t.Fatal("Section(\"tile\") not found")
	}
	if string(got) != "\x01\x02\x03\x04" {
		t.Fatalf("Section(\"tile\") = %v", got)
	}

	units := md.Units()
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	u := units[0]
	if u.X != 1024 || u.Y != 2048 || u.PlayerID != 3 {
		t.Fatalf("unit = %+v", u)
	}
	if !u.IsStartLocation() {
		t.Fatal("expected start location")
	}
}

func TestMapDirectory_TruncatedFinalBlock(t *testing.T) {
	var data []byte
	data = append(data, []byte("TILE")...)
	data = append(data, le32(100)...) // declares 100 bytes but none follow

	md := NewMapDirectory(data)
	if _, ok := md.Section("TILE"); ok {
		t.Fatal("truncated block should not be indexed")
	}
}

func TestMapDirectory_TileFallsBackToMTXM(t *testing.T) {
	var data []byte
	data = append(data, []byte("MTXM")...)
	data = append(data, le32(2)...)
	data = append(data, []byte{0xAA, 0xBB}...)

	md := NewMapDirectory(data)
	got, ok := md.TileSection()
	if !ok || string(got) != "\xAA\xBB" {
		t.Fatalf("TileSection() = %v, %v", got, ok)
	}
}

func TestMapDirectory_Empty(t *testing.T) {
	md := NewMapDirectory(nil)
	if _, ok := md.Section("TILE"); ok {
		t.Fatal("expected no sections")
	}
	if units := md.Units(); units != nil {
		t.Fatalf("Units() = %v, want nil", units)
	}
}
