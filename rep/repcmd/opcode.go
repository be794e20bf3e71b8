// This file contains the command opcode identifiers and their names.
//
// The opcode set and wire layouts implemented here are authoritative per the
// decoder's dispatch table; mapping an opcode's *parameters* (unit type IDs,
// tech IDs, upgrade IDs, ...) to human-readable names is out of scope: those
// name tables are external lookup inputs the caller supplies.

package repcmd

import "fmt"

// Opcode identifies the shape of an action's parameters.
type Opcode byte

// Opcodes used by the dispatch table (see §6.3 of the format notes).
const (
	OpSelect           Opcode = 0x09
	OpShiftSelect      Opcode = 0x0A
	OpShiftDeselect    Opcode = 0x0B
	OpBuild            Opcode = 0x0C
	OpVision           Opcode = 0x0D
	OpAlly             Opcode = 0x0E
	OpHotKey           Opcode = 0x13
	OpMove             Opcode = 0x14
	OpAttack           Opcode = 0x15
	OpCancel           Opcode = 0x18
	OpCancelHatch      Opcode = 0x19
	OpStop             Opcode = 0x1A
	OpReturnCargo      Opcode = 0x1E
	OpTrain            Opcode = 0x1F
	OpCancelTrain      Opcode = 0x20
	OpCloak            Opcode = 0x21
	OpDecloak          Opcode = 0x22
	OpHatch            Opcode = 0x23
	OpUnsiege          Opcode = 0x25
	OpSiege            Opcode = 0x26
	OpBuildInterceptor Opcode = 0x27
	OpUnloadAll        Opcode = 0x28
	OpUnload           Opcode = 0x29
	OpMergeArchon      Opcode = 0x2A
	OpHoldPosition     Opcode = 0x2B
	OpBurrow           Opcode = 0x2C
	OpUnburrow         Opcode = 0x2D
	OpCancelNuke       Opcode = 0x2E
	OpLift             Opcode = 0x2F
	OpResearch         Opcode = 0x30
	OpCancelResearch   Opcode = 0x31
	OpUpgrade          Opcode = 0x32
	OpMorph            Opcode = 0x35
	OpStim             Opcode = 0x36
	OpLeaveGame        Opcode = 0x57
	OpMergeDarkArchon  Opcode = 0x5A
	OpChat             Opcode = 0x5C
)

// opcodeNames gives every known opcode a display name; anything absent is
// reported as "Unknown 0xXX".
var opcodeNames = map[Opcode]string{
	OpSelect:           "Select",
	OpShiftSelect:      "ShiftSelect",
	OpShiftDeselect:    "ShiftDeselect",
	OpBuild:            "Build",
	OpVision:           "Vision",
	OpAlly:             "Ally",
	OpHotKey:           "HotKey",
	OpMove:             "Move",
	OpAttack:           "Attack",
	OpCancel:           "Cancel",
	OpCancelHatch:      "CancelHatch",
	OpStop:             "Stop",
	OpReturnCargo:      "ReturnCargo",
	OpTrain:            "Train",
	OpCancelTrain:      "CancelTrain",
	OpCloak:            "Cloak",
	OpDecloak:          "Decloak",
	OpHatch:            "Hatch",
	OpUnsiege:          "Unsiege",
	OpSiege:            "Siege",
	OpBuildInterceptor: "BuildInterceptor",
	OpUnloadAll:        "UnloadAll",
	OpUnload:           "Unload",
	OpMergeArchon:      "MergeArchon",
	OpHoldPosition:     "HoldPosition",
	OpBurrow:           "Burrow",
	OpUnburrow:         "Unburrow",
	OpCancelNuke:       "CancelNuke",
	OpLift:             "Lift",
	OpResearch:         "Research",
	OpCancelResearch:   "CancelResearch",
	OpUpgrade:          "Upgrade",
	OpMorph:            "Morph",
	OpStim:             "Stim",
	OpLeaveGame:        "LeaveGame",
	OpMergeDarkArchon:  "MergeDarkArchon",
	OpChat:             "Chat",
}

// String returns the opcode's display name, or "Unknown 0xXX" if unrecognized.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Unknown 0x%02x", byte(o))
}

// Known reports whether the opcode appears in the dispatch table.
func (o Opcode) Known() bool {
	_, ok := opcodeNames[o]
	return ok
}
