// This file contains general types shared across the decoded replay model.

package repcore

import (
	"fmt"
	"time"
)

// Frame is the basic time unit in StarCraft: Brood War.
// There are approximately ~23.81 frames in a second;
// 1 frame = 0.042 second = 42 ms to be exact.
//
// The frame/second conversion is advisory data: it is never consulted by
// the decoder itself, only exposed for callers that want wall-clock time.
type Frame uint32

// Milliseconds returns the time equivalent to the frame count in milliseconds.
func (f Frame) Milliseconds() int64 {
	return int64(f) * 42
}

// Seconds returns the time equivalent to the frame count in seconds.
func (f Frame) Seconds() float64 {
	return float64(f.Milliseconds()) / 1000
}

// Duration returns the frame count as a time.Duration value.
func (f Frame) Duration() time.Duration {
	return time.Millisecond * time.Duration(f.Milliseconds())
}

// Point is a pair of 16-bit map coordinates. Its unit depends on where the
// value comes from: Header.MapSize, for one, reports walk-tiles.
type Point struct {
	X, Y uint16
}

// String returns a string representation of the point in the format "x=X, y=Y".
func (p Point) String() string {
	return fmt.Sprint("x=", p.X, ", y=", p.Y)
}

// Enum is the common part of the small named-constant types below.
type Enum struct {
	Name string
}

// String returns the name of the enum value.
// Defined with a value receiver so it is used even through a non-pointer.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs an Enum for an unrecognized ID, preserving it in the name.
func UnknownEnum(id any) Enum {
	return Enum{Name: fmt.Sprintf("Unknown 0x%x", id)}
}

// Engine identifies the game engine/extension a replay was recorded with.
type Engine struct {
	Enum
	ID byte
}

// Possible engines.
var (
	EngineVanilla   = &Engine{Enum{"Vanilla"}, 0}
	EngineExpansion = &Engine{Enum{"Expansion"}, 1}
)

var engines = []*Engine{EngineVanilla, EngineExpansion}

// EngineByID returns the Engine for a given ID, or an Unknown placeholder.
func EngineByID(id byte) *Engine {
	if int(id) < len(engines) {
		return engines[id]
	}
	return &Engine{UnknownEnum(id), id}
}

// PlayerKind is the occupancy kind of a header player slot.
type PlayerKind struct {
	Enum
	ID byte
}

// Possible player kinds.
var (
	PlayerKindNone     = &PlayerKind{Enum{"None"}, 0}
	PlayerKindComputer = &PlayerKind{Enum{"Computer"}, 1}
	PlayerKindHuman    = &PlayerKind{Enum{"Human"}, 2}
)

var playerKinds = []*PlayerKind{PlayerKindNone, PlayerKindComputer, PlayerKindHuman}

// PlayerKindByID returns the PlayerKind for a given ID, or an Unknown placeholder.
func PlayerKindByID(id byte) *PlayerKind {
	if int(id) < len(playerKinds) {
		return playerKinds[id]
	}
	return &PlayerKind{UnknownEnum(id), id}
}

// Race is a player's chosen race.
type Race struct {
	Enum
	ID     byte
	Letter rune
}

// Possible races.
var (
	RaceZerg    = &Race{Enum{"Zerg"}, 0, 'Z'}
	RaceTerran  = &Race{Enum{"Terran"}, 1, 'T'}
	RaceProtoss = &Race{Enum{"Protoss"}, 2, 'P'}
	RaceOther   = &Race{Enum{"Other"}, 6, 'O'}
)

var raceByID = map[byte]*Race{
	RaceZerg.ID:    RaceZerg,
	RaceTerran.ID:  RaceTerran,
	RaceProtoss.ID: RaceProtoss,
	RaceOther.ID:   RaceOther,
}

// RaceByID returns the Race for a given ID, or an Unknown placeholder.
func RaceByID(id byte) *Race {
	if r := raceByID[id]; r != nil {
		return r
	}
	return &Race{UnknownEnum(id), id, '?'}
}

// TileSet identifies the map's tile set (only derivable from the map section;
// replays themselves don't carry it directly in the header).
type TileSet struct {
	Enum
	ID uint16
}

// Possible tile sets.
var TileSets = []*TileSet{
	{Enum{"Badlands"}, 0},
	{Enum{"Space Platform"}, 1},
	{Enum{"Installation"}, 2},
	{Enum{"Ashworld"}, 3},
	{Enum{"Jungle World"}, 4},
	{Enum{"Desert World"}, 5},
	{Enum{"Arctic World"}, 6},
	{Enum{"Twilight World"}, 7},
}

// TileSetByID returns the TileSet for a given ID, or an Unknown placeholder.
func TileSetByID(id uint16) *TileSet {
	if int(id) < len(TileSets) {
		return TileSets[id]
	}
	return &TileSet{UnknownEnum(id), id}
}
