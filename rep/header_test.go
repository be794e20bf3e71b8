package rep

import (
	"encoding/binary"
	"testing"

	"github.com/brooddecode/bwrep/rep/repcore"
)

func TestParseHeader_WrongSize(t *testing.T) {
	_, err := ParseHeader(make([]byte, 100))
	if err == nil {
		t.Fatal("expected HeaderSizeMismatch")
	}
	if _, ok := err.(*HeaderSizeMismatch); !ok {
		t.Fatalf("err = %T, want *HeaderSizeMismatch", err)
	}
}

func TestParseHeader_Basic(t *testing.T) {
	buf := make([]byte, headerSize)
	buf[0] = 1
	binary.LittleEndian.PutUint32(buf[1:5], 5000)
	copy(buf[24:], []byte("my game\x00"))
	binary.LittleEndian.PutUint16(buf[52:54], 64)
	binary.LittleEndian.PutUint16(buf[54:56], 64)
	copy(buf[97:], []byte("Lost Temple\x00"))

	off := playerBase
	binary.LittleEndian.PutUint32(buf[off:off+4], 0)
	binary.LittleEndian.PutUint32(buf[off+4:off+8], 0)
	buf[off+8] = 2 // Human
	buf[off+9] = 1 // Terran
	copy(buf[off+11:], []byte("Player One\x00"))

	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Engine != repcore.EngineExpansion {
		t.Fatalf("Engine = %v, want Expansion", h.Engine)
	}
	if h.Frames != 5000 {
		t.Fatalf("Frames = %d, want 5000", h.Frames)
	}
	if h.GameName != "my game" {
		t.Fatalf("GameName = %q", h.GameName)
	}
	if h.MapName != "Lost Temple" {
		t.Fatalf("MapName = %q", h.MapName)
	}
	if h.Players[0].Name != "Player One" {
		t.Fatalf("Players[0].Name = %q", h.Players[0].Name)
	}
	if h.Players[0].Race != repcore.RaceTerran {
		t.Fatalf("Players[0].Race = %v, want Terran", h.Players[0].Race)
	}
	names := h.PlayerNames()
	if len(names) != 1 || names[0] != "Player One" {
		t.Fatalf("PlayerNames() = %v", names)
	}
	if m := h.Matchup(); m != "T" {
		t.Fatalf("Matchup() = %q, want %q", m, "T")
	}
}

func TestHeader_MatchupTwoPlayers(t *testing.T) {
	buf := make([]byte, headerSize)
	setPlayer := func(slot int, team int32, kind, race byte) {
		off := playerBase + slot*playerSize
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(slot))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], uint32(team))
		buf[off+8] = kind
		buf[off+9] = race
	}
	setPlayer(0, 0, 2, 1) // Human Terran, team 0
	setPlayer(1, 1, 2, 0) // Human Zerg, team 1

	h, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if m := h.Matchup(); m != "TvZ" {
		t.Fatalf("Matchup() = %q, want %q", m, "TvZ")
	}
}
