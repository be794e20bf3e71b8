// This file implements Computed, derived statistics over an already-decoded
// action stream (chat log, leave-game events, a winner-team guess), and
// IsCmdEffective, an "effective APM" classification per action.
//
// Grounded on icza/screp/rep/computed.go and eapm-util.go. These are query
// operations over the structured action record, not simulation: nothing
// here re-derives game state, it only classifies actions already decoded by
// ActionStream.

package rep

import (
	"github.com/brooddecode/bwrep/rep/repcmd"
)

// effectiveAPMVersion identifies the heuristic revision, in case a caller
// persists EAPM numbers and needs to know whether they're comparable.
const effectiveAPMVersion = 1

// Computed holds statistics derived from a replay's action stream.
type Computed struct {
	LeaveGameActions []repcmd.Action
	ChatActions      []repcmd.Action
	WinnerTeam       int32 // 0 if undeterminable
}

// NewComputed scans actions once and derives Computed.
func NewComputed(h *Header, actions []repcmd.Action) *Computed {
	c := &Computed{}
	left := map[byte]bool{}

	for _, a := range actions {
		switch a.Opcode {
		case repcmd.OpLeaveGame:
			c.LeaveGameActions = append(c.LeaveGameActions, a)
			left[a.Player] = true
		case repcmd.OpChat:
			c.ChatActions = append(c.ChatActions, a)
		}
	}

	c.WinnerTeam = winnerTeam(h, left)
	return c
}

// winnerTeam guesses the winning team as the one team whose players never
// sent a LeaveGame action, when exactly one such team exists. Replays where
// everyone left, nobody left, or more than one team remains return 0.
func winnerTeam(h *Header, left map[byte]bool) int32 {
	remaining := map[int32]bool{}
	for _, p := range h.LogicalPlayers() {
		if !left[byte(p.SlotNumber)] {
			remaining[p.TeamSlot] = true
		}
	}
	if len(remaining) != 1 {
		return 0
	}
	for team := range remaining {
		return team
	}
	return 0
}

// isSelectionChanger reports whether op changes the player's unit selection
// (and so resets the "repeated command" spam window below).
func isSelectionChanger(op repcmd.Opcode) bool {
	switch op {
	case repcmd.OpSelect, repcmd.OpShiftSelect, repcmd.OpShiftDeselect, repcmd.OpHotKey:
		return true
	}
	return false
}

// countSameCmds counts how many actions immediately before i (same player,
// same frame, same opcode) precede it, stopping at a selection change.
func countSameCmds(actions []repcmd.Action, i int) int {
	count := 0
	for j := i - 1; j >= 0; j-- {
		if actions[j].Frame != actions[i].Frame || actions[j].Player != actions[i].Player {
			break
		}
		if isSelectionChanger(actions[j].Opcode) {
			break
		}
		if actions[j].Opcode != actions[i].Opcode {
			break
		}
		count++
	}
	return count
}

// maxSameCmdSpam is the number of identical same-frame repeats of a command
// past which further repeats are presumed to be queue-overflow spam rather
// than deliberate play (a common macro-bot / hotkey-mash artifact).
const maxSameCmdSpam = 6

// cancelWindow is how many frames after a Train/Build/Morph/Hatch a matching
// Cancel-family action must land within to count as "too fast to be a
// considered decision" (and so ineffective for APM purposes).
const cancelWindow = 20

// IsCmdEffective classifies whether actions[i] reflects a meaningful player
// decision, as opposed to spam: the same command repeated past
// maxSameCmdSpam times in one frame, or a cancel landing within
// cancelWindow frames of the order it cancels.
func IsCmdEffective(actions []repcmd.Action, i int) bool {
	a := actions[i]

	if countSameCmds(actions, i) >= maxSameCmdSpam {
		return false
	}

	switch a.Opcode {
	case repcmd.OpCancel, repcmd.OpCancelTrain, repcmd.OpCancelHatch, repcmd.OpCancelNuke, repcmd.OpCancelResearch:
		for j := i - 1; j >= 0 && a.Frame-actions[j].Frame <= cancelWindow; j-- {
			if actions[j].Player != a.Player {
				continue
			}
			switch actions[j].Opcode {
			case repcmd.OpTrain, repcmd.OpBuild, repcmd.OpMorph, repcmd.OpHatch:
				return false
			}
		}
	}

	return true
}
