// This file contains the per-opcode parameter types. Params is a tagged
// union (one concrete type per opcode, plus an Unknown fallback) rather than
// control flow switching on raw bytes, so callers can type-switch on the
// concrete shape instead of re-parsing.

package repcmd

import (
	"fmt"
	"strings"

	"github.com/brooddecode/bwrep/rep/repcore"
)

// Params is the parameter payload of an Action. Its concrete type is
// determined by the Action's Opcode.
type Params interface {
	// Bytes returns the raw parameter bytes the concrete value was decoded
	// from, for debugging / re-encoding callers.
	Bytes() []byte
}

// raw is embedded by every concrete Params type to carry the original bytes.
type raw struct {
	data []byte
}

func (r raw) Bytes() []byte { return r.data }

// EmptyParams is used by opcodes with no parameter bytes at all: Cancel,
// CancelHatch, CancelResearch, CancelNuke, Stim, BuildInterceptor,
// MergeArchon, MergeDarkArchon.
type EmptyParams struct{ raw }

func (EmptyParams) String() string { return "" }

// SelectParams is used by Select, ShiftSelect and ShiftDeselect: a
// length-prefixed list of unit tags.
type SelectParams struct {
	raw
	UnitTags []uint16
}

func (p SelectParams) String() string {
	parts := make([]string, len(p.UnitTags))
	for i, t := range p.UnitTags {
		parts[i] = fmt.Sprint(t)
	}
	return "units=[" + strings.Join(parts, ",") + "]"
}

// BuildParams is used by Build: {u8 btype, u16 x, u16 y, u16 unit_type}.
type BuildParams struct {
	raw
	BuildingType byte
	Pos          repcore.Point
	UnitType     uint16
}

func (p BuildParams) String() string {
	return fmt.Sprintf("type=%d, %s, unit=%d", p.BuildingType, p.Pos, p.UnitType)
}

// RawParams holds opcodes whose fixed-size parameters are opaque tag bytes
// not otherwise interpreted by the core: Vision, Ally, CancelTrain, Unload,
// Lift.
type RawParams struct{ raw }

func (p RawParams) String() string { return fmt.Sprintf("% x", p.data) }

// HotKeyParams is used by HotKey: {u8 kind, u8 slot}.
type HotKeyParams struct {
	raw
	Kind byte
	Slot byte
}

func (p HotKeyParams) String() string { return fmt.Sprintf("kind=%d, slot=%d", p.Kind, p.Slot) }

// MoveParams is used by Move: {u16 x, u16 y, u16 unit, u16 target_u, u8 mod}.
type MoveParams struct {
	raw
	Pos           repcore.Point
	UnitTag       uint16
	TargetUnitTag uint16
	Modifier      byte
}

func (p MoveParams) String() string {
	return fmt.Sprintf("%s, unit=%d, target=%d, mod=%d", p.Pos, p.UnitTag, p.TargetUnitTag, p.Modifier)
}

// AttackParams is used by Attack:
// {u16 x, u16 y, u16 unit, u16 target_u, u8 type, u8 mod}.
type AttackParams struct {
	raw
	Pos           repcore.Point
	UnitTag       uint16
	TargetUnitTag uint16
	OrderType     byte
	Modifier      byte
}

func (p AttackParams) String() string {
	return fmt.Sprintf("%s, unit=%d, target=%d, order=%d, mod=%d",
		p.Pos, p.UnitTag, p.TargetUnitTag, p.OrderType, p.Modifier)
}

// ByteParams holds the common "single opaque byte" shape: Stop, ReturnCargo,
// Unsiege, Siege, UnloadAll, HoldPosition, Burrow, Unburrow, LeaveGame.
type ByteParams struct {
	raw
	Value byte
}

func (p ByteParams) String() string { return fmt.Sprint(p.Value) }

// UnitTypeParams holds the common "u16 unit type" shape: Train, Hatch, Morph.
type UnitTypeParams struct {
	raw
	UnitType uint16
}

func (p UnitTypeParams) String() string { return fmt.Sprint(p.UnitType) }

// TechParams is used by Research: {u8 tech_id}.
type TechParams struct {
	raw
	TechID byte
}

func (p TechParams) String() string { return fmt.Sprint(p.TechID) }

// UpgradeParams is used by Upgrade: {u8 upgrade_id}.
type UpgradeParams struct {
	raw
	UpgradeID byte
}

func (p UpgradeParams) String() string { return fmt.Sprint(p.UpgradeID) }

// TrailingParams is used by Cloak and Decloak: consumes all remaining bytes
// of the current frame block, since these opcodes have no fixed width in
// the wild format.
type TrailingParams struct{ raw }

func (p TrailingParams) String() string { return fmt.Sprintf("% x", p.data) }

// ChatParams is used by Chat: a sender slot byte followed by a NUL-terminated
// (or block-truncated) message.
type ChatParams struct {
	raw
	SenderSlot byte
	Message    string
}

func (p ChatParams) String() string { return fmt.Sprintf("[%d] %s", p.SenderSlot, p.Message) }

// UnknownParams is used for any opcode absent from the dispatch table; the
// remaining bytes of the frame block are kept opaque and decoding continues
// with the next action.
type UnknownParams struct{ raw }

func (p UnknownParams) String() string { return fmt.Sprintf("% x", p.data) }
