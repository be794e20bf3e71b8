package repcmd

import "testing"

func frameBlock(frame uint32, actions []byte) []byte {
	b := make([]byte, 5)
	b[0] = byte(frame)
	b[1] = byte(frame >> 8)
	b[2] = byte(frame >> 16)
	b[3] = byte(frame >> 24)
	b[4] = byte(len(actions))
	return append(b, actions...)
}

func TestActionStream_SingleStop(t *testing.T) {
	data := frameBlock(100, []byte{0x00, byte(OpStop), 0xAA})
	as := NewActionStream(data)

	a, ok := as.Next()
	if !ok {
		t.Fatal("Next() = false, want one action")
	}
	if a.Frame != 100 || a.Player != 0 || a.Opcode != OpStop {
		t.Fatalf("action = %+v", a)
	}
	bp, ok := a.Params.(ByteParams)
	if !ok || bp.Value != 0xAA {
		t.Fatalf("params = %+v", a.Params)
	}

	if _, ok := as.Next(); ok {
		t.Fatal("expected stream to be exhausted")
	}
	if as.Truncated() {
		t.Fatal("clean end reported as truncated")
	}
}

func TestActionStream_TwoActionsOneBlock(t *testing.T) {
	data := frameBlock(100, []byte{0x00, byte(OpStop), 0xAA, 0x01, byte(OpCancel)})
	actions := Collect(NewActionStream(data))
	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].Opcode != OpStop || actions[1].Opcode != OpCancel {
		t.Fatalf("actions = %+v", actions)
	}
	if actions[1].Player != 1 {
		t.Fatalf("second action player = %d, want 1", actions[1].Player)
	}
}

func TestActionStream_FrameGapTruncates(t *testing.T) {
	var data []byte
	data = append(data, frameBlock(0, []byte{0x00, byte(OpCancel)})...)
	data = append(data, frameBlock(20000, []byte{0x00, byte(OpCancel)})...)

	as := NewActionStream(data)
	a, ok := as.Next()
	if !ok || a.Frame != 0 {
		t.Fatalf("first action = %+v, %v", a, ok)
	}
	if _, ok := as.Next(); ok {
		t.Fatal("expected truncation before the second block")
	}
	if !as.Truncated() {
		t.Fatal("expected Truncated() == true")
	}
}

func TestActionStream_EmptyInput(t *testing.T) {
	as := NewActionStream(nil)
	if _, ok := as.Next(); ok {
		t.Fatal("expected no actions from empty input")
	}
	if as.Truncated() {
		t.Fatal("empty input is not truncation")
	}
}

func TestActionStream_SelectZeroCount(t *testing.T) {
	data := frameBlock(1, []byte{0x00, byte(OpSelect), 0x00})
	actions := Collect(NewActionStream(data))
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	sp := actions[0].Params.(SelectParams)
	if len(sp.UnitTags) != 0 {
		t.Fatalf("UnitTags = %v, want empty", sp.UnitTags)
	}
}

func TestActionStream_CloakConsumesRestOfBlock(t *testing.T) {
	data := frameBlock(1, []byte{0x00, byte(OpCloak)})
	actions := Collect(NewActionStream(data))
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	if len(actions[0].Params.Bytes()) != 0 {
		t.Fatalf("Cloak params = %v, want empty", actions[0].Params.Bytes())
	}
}

func TestActionStream_UnknownOpcode(t *testing.T) {
	data := frameBlock(1, []byte{0x00, 0x02, 0xDE, 0xAD})
	actions := Collect(NewActionStream(data))
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	up, ok := actions[0].Params.(UnknownParams)
	if !ok {
		t.Fatalf("params = %T, want UnknownParams", actions[0].Params)
	}
	if len(up.Bytes()) != 2 {
		t.Fatalf("unknown params bytes = %v, want 2 bytes", up.Bytes())
	}
}

func TestActionStream_ChatMessage(t *testing.T) {
	msg := append([]byte{0x03}, append([]byte("gg"), 0x00, 0xFF)...)
	data := frameBlock(1, append([]byte{0x00, byte(OpChat)}, msg...))
	actions := Collect(NewActionStream(data))
	cp := actions[0].Params.(ChatParams)
	if cp.SenderSlot != 3 || cp.Message != "gg" {
		t.Fatalf("chat params = %+v", cp)
	}
}
