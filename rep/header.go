// This file implements Header: the fixed 633-byte match-metadata record at
// the front of every replay.
//
// Grounded on icza/screp/rep/header.go for the struct shape and the
// Matchup()/PlayerNames() query methods (icza/screp's own byte offsets are
// for a different replay-format revision and are not reused; this file's
// offsets follow §6.2 exactly).

package rep

import (
	"encoding/binary"
	"sort"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/brooddecode/bwrep/rep/repcore"
)

const headerSize = 633

const (
	maxPlayers = 12
	playerSize = 36
	playerBase = 161
)

// Player is one of the header's 12 slots.
type Player struct {
	SlotNumber int32
	TeamSlot   int32 // -1 for none/computer
	Kind       *repcore.PlayerKind
	Race       *repcore.Race
	Marker     byte
	Name       string
}

// Header is the fixed-size metadata block every replay carries.
type Header struct {
	Engine        *repcore.Engine
	Frames        repcore.Frame
	CreationTime  uint32
	GameName      string
	MapWidth      uint16
	MapHeight     uint16
	CreatorName   string
	MapType       byte
	MapName       string
	Players       [maxPlayers]Player
	SpotOrder     [8]uint32
	SpotUsed      [8]byte
}

// ParseHeader decodes a 633-byte decompressed header payload.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) != headerSize {
		return nil, &HeaderSizeMismatch{Got: len(data), Want: headerSize}
	}

	h := &Header{
		Engine:       repcore.EngineByID(data[0]),
		Frames:       repcore.Frame(binary.LittleEndian.Uint32(data[1:5])),
		CreationTime: binary.LittleEndian.Uint32(data[8:12]),
		GameName:     decodeString(data[24:52]),
		MapWidth:     binary.LittleEndian.Uint16(data[52:54]),
		MapHeight:    binary.LittleEndian.Uint16(data[54:56]),
		CreatorName:  decodeString(data[72:96]),
		MapType:      data[96],
		MapName:      decodeString(data[97:120]),
	}

	for i := 0; i < maxPlayers; i++ {
		off := playerBase + i*playerSize
		rec := data[off : off+playerSize]
		h.Players[i] = Player{
			SlotNumber: int32(binary.LittleEndian.Uint32(rec[0:4])),
			TeamSlot:   int32(binary.LittleEndian.Uint32(rec[4:8])),
			Kind:       repcore.PlayerKindByID(rec[8]),
			Race:       repcore.RaceByID(rec[9]),
			Marker:     rec[10],
			Name:       decodeString(rec[11:36]),
		}
	}

	for i := 0; i < 8; i++ {
		h.SpotOrder[i] = binary.LittleEndian.Uint32(data[593+i*4 : 597+i*4])
	}
	copy(h.SpotUsed[:], data[625:633])

	return h, nil
}

// decodeString decodes a NUL-terminated header string. Game/map/player names
// are usually plain ASCII/UTF-8, but replays recorded on Korean clients can
// carry EUC-KR bytes; when the NUL-truncated bytes aren't valid UTF-8, fall
// back to decoding them as EUC-KR rather than emitting replacement runes.
func decodeString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// Duration returns the game length as a time.Duration.
func (h *Header) Duration() time.Duration {
	return h.Frames.Duration()
}

// MapSize returns the map dimensions in walk-tiles.
func (h *Header) MapSize() repcore.Point {
	return repcore.Point{X: h.MapWidth, Y: h.MapHeight}
}

// LogicalPlayers returns the header's slots whose Kind is not None, ordered
// by team then slot number (the same heuristic icza/screp applies for
// melee/FFA matchup strings: team grouping first, original slot order as
// the tiebreaker).
func (h *Header) LogicalPlayers() []Player {
	var players []Player
	for _, p := range h.Players {
		if p.Kind != nil && p.Kind != repcore.PlayerKindNone {
			players = append(players, p)
		}
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].TeamSlot < players[j].TeamSlot
	})
	return players
}

// PlayerNames returns the display names of the logical (non-empty) player
// slots, in the same order as LogicalPlayers.
func (h *Header) PlayerNames() []string {
	logical := h.LogicalPlayers()
	names := make([]string, len(logical))
	for i, p := range logical {
		names[i] = p.Name
	}
	return names
}

// Matchup returns a team-grouped race-letter summary, e.g. "TvZ" for a 1v1
// Terran-vs-Zerg game or "TZvP" for a 2-player team against a lone Protoss.
func (h *Header) Matchup() string {
	logical := h.LogicalPlayers()
	if len(logical) == 0 {
		return ""
	}

	var teams [][]rune
	var teamSlots []int32
	for _, p := range logical {
		idx := -1
		for i, slot := range teamSlots {
			if slot == p.TeamSlot {
				idx = i
				break
			}
		}
		if idx == -1 {
			teamSlots = append(teamSlots, p.TeamSlot)
			teams = append(teams, nil)
			idx = len(teams) - 1
		}
		teams[idx] = append(teams[idx], p.Race.Letter)
	}

	var out []byte
	for i, team := range teams {
		if i > 0 {
			out = append(out, 'v')
		}
		for _, r := range team {
			out = append(out, byte(r))
		}
	}
	return string(out)
}
