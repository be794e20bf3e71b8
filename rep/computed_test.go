package rep

import (
	"testing"

	"github.com/brooddecode/bwrep/rep/repcmd"
	"github.com/brooddecode/bwrep/rep/repcore"
)

func action(frame repcore.Frame, player byte, op repcmd.Opcode) repcmd.Action {
	return repcmd.Action{Frame: frame, Player: player, Opcode: op}
}

func TestIsCmdEffective_SpamDetection(t *testing.T) {
	var actions []repcmd.Action
	for i := 0; i < 10; i++ {
		actions = append(actions, action(100, 0, repcmd.OpStop))
	}

	for i := 0; i < maxSameCmdSpam; i++ {
		if !IsCmdEffective(actions, i) {
			t.Fatalf("action %d should still be effective", i)
		}
	}
	if IsCmdEffective(actions, len(actions)-1) {
		t.Fatal("repeated spam past the threshold should be ineffective")
	}
}

func TestIsCmdEffective_QuickCancel(t *testing.T) {
	actions := []repcmd.Action{
		action(100, 0, repcmd.OpTrain),
		action(105, 0, repcmd.OpCancelTrain),
	}
	if IsCmdEffective(actions, 1) {
		t.Fatal("cancel within the window should be ineffective")
	}
}

func TestIsCmdEffective_SlowCancelIsEffective(t *testing.T) {
	actions := []repcmd.Action{
		action(100, 0, repcmd.OpTrain),
		action(200, 0, repcmd.OpCancelTrain),
	}
	if !IsCmdEffective(actions, 1) {
		t.Fatal("cancel well outside the window should be effective")
	}
}

func TestNewComputed_WinnerTeam(t *testing.T) {
	h := &Header{}
	h.Players[0].Kind = repcore.PlayerKindHuman
	h.Players[0].TeamSlot = 0
	h.Players[0].SlotNumber = 0
	h.Players[1].Kind = repcore.PlayerKindHuman
	h.Players[1].TeamSlot = 1
	h.Players[1].SlotNumber = 1

	actions := []repcmd.Action{
		action(500, 1, repcmd.OpLeaveGame),
	}
	c := NewComputed(h, actions)
	if c.WinnerTeam != 0 {
		t.Fatalf("WinnerTeam = %d, want 0 (player slot 0's team)", c.WinnerTeam)
	}
	if len(c.LeaveGameActions) != 1 {
		t.Fatalf("LeaveGameActions = %v", c.LeaveGameActions)
	}
}
