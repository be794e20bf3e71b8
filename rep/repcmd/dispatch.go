// This file contains the opcode dispatch table. It is data, not control
// flow: ActionStream looks an opcode up here to find its decode function,
// instead of switching on the opcode byte directly. Unknown opcodes (absent
// from this map) consume the rest of the frame block as opaque bytes and
// never fail.

package repcmd

import "github.com/brooddecode/bwrep/rep/repcore"

// paramDecoder decodes one opcode's parameters from c, returning false if
// the block ran out of bytes before the fixed shape could be read.
type paramDecoder func(c *cursor) (Params, bool)

var dispatch = map[Opcode]paramDecoder{
	OpSelect:        decodeSelect,
	OpShiftSelect:   decodeSelect,
	OpShiftDeselect: decodeSelect,

	OpBuild: decodeBuild,

	OpVision:      decodeRawN(2),
	OpAlly:        decodeRawN(4),
	OpCancelTrain: decodeRawN(2),
	OpUnload:      decodeRawN(2),
	OpLift:        decodeRawN(4),

	OpHotKey: decodeHotKey,
	OpMove:   decodeMove,
	OpAttack: decodeAttack,

	OpCancel:           decodeEmpty,
	OpCancelHatch:      decodeEmpty,
	OpBuildInterceptor: decodeEmpty,
	OpMergeArchon:      decodeEmpty,
	OpCancelNuke:       decodeEmpty,
	OpCancelResearch:   decodeEmpty,
	OpStim:             decodeEmpty,
	OpMergeDarkArchon:  decodeEmpty,

	OpStop:         decodeByte,
	OpReturnCargo:  decodeByte,
	OpUnsiege:      decodeByte,
	OpSiege:        decodeByte,
	OpUnloadAll:    decodeByte,
	OpHoldPosition: decodeByte,
	OpBurrow:       decodeByte,
	OpUnburrow:     decodeByte,
	OpLeaveGame:    decodeByte,

	OpTrain: decodeUnitType,
	OpHatch: decodeUnitType,
	OpMorph: decodeUnitType,

	OpResearch: decodeTech,
	OpUpgrade:  decodeUpgrade,

	OpCloak:   decodeTrailing,
	OpDecloak: decodeTrailing,

	OpChat: decodeChat,
}

// decodeParams looks up op's decoder and runs it. Opcodes with no entry are
// Unknown: the rest of the block is consumed as opaque bytes and decoding
// never fails on them.
func decodeParams(op Opcode, c *cursor) (Params, bool) {
	if fn, ok := dispatch[op]; ok {
		return fn(c)
	}
	return UnknownParams{raw{c.rest()}}, true
}

func decodeEmpty(c *cursor) (Params, bool) {
	return EmptyParams{raw{c.data[c.pos:c.pos]}}, true
}

func decodeSelect(c *cursor) (Params, bool) {
	start := c.pos
	count, ok := c.u8()
	if !ok {
		return nil, false
	}
	tags := make([]uint16, count)
	for i := range tags {
		t, ok := c.u16()
		if !ok {
			return nil, false
		}
		tags[i] = t
	}
	return SelectParams{raw{c.data[start:c.pos]}, tags}, true
}

func decodeBuild(c *cursor) (Params, bool) {
	start := c.pos
	btype, ok := c.u8()
	if !ok {
		return nil, false
	}
	x, ok := c.u16()
	if !ok {
		return nil, false
	}
	y, ok := c.u16()
	if !ok {
		return nil, false
	}
	unitType, ok := c.u16()
	if !ok {
		return nil, false
	}
	return BuildParams{raw{c.data[start:c.pos]}, btype, repcore.Point{X: x, Y: y}, unitType}, true
}

func decodeRawN(n uint32) paramDecoder {
	return func(c *cursor) (Params, bool) {
		b, ok := c.skip(n)
		if !ok {
			return nil, false
		}
		return RawParams{raw{b}}, true
	}
}

func decodeHotKey(c *cursor) (Params, bool) {
	start := c.pos
	kind, ok := c.u8()
	if !ok {
		return nil, false
	}
	slot, ok := c.u8()
	if !ok {
		return nil, false
	}
	return HotKeyParams{raw{c.data[start:c.pos]}, kind, slot}, true
}

func decodeMove(c *cursor) (Params, bool) {
	start := c.pos
	x, ok := c.u16()
	if !ok {
		return nil, false
	}
	y, ok := c.u16()
	if !ok {
		return nil, false
	}
	unit, ok := c.u16()
	if !ok {
		return nil, false
	}
	target, ok := c.u16()
	if !ok {
		return nil, false
	}
	mod, ok := c.u8()
	if !ok {
		return nil, false
	}
	return MoveParams{raw{c.data[start:c.pos]}, repcore.Point{X: x, Y: y}, unit, target, mod}, true
}

func decodeAttack(c *cursor) (Params, bool) {
	start := c.pos
	x, ok := c.u16()
	if !ok {
		return nil, false
	}
	y, ok := c.u16()
	if !ok {
		return nil, false
	}
	unit, ok := c.u16()
	if !ok {
		return nil, false
	}
	target, ok := c.u16()
	if !ok {
		return nil, false
	}
	orderType, ok := c.u8()
	if !ok {
		return nil, false
	}
	mod, ok := c.u8()
	if !ok {
		return nil, false
	}
	return AttackParams{raw{c.data[start:c.pos]}, repcore.Point{X: x, Y: y}, unit, target, orderType, mod}, true
}

func decodeByte(c *cursor) (Params, bool) {
	start := c.pos
	v, ok := c.u8()
	if !ok {
		return nil, false
	}
	return ByteParams{raw{c.data[start:c.pos]}, v}, true
}

func decodeUnitType(c *cursor) (Params, bool) {
	start := c.pos
	v, ok := c.u16()
	if !ok {
		return nil, false
	}
	return UnitTypeParams{raw{c.data[start:c.pos]}, v}, true
}

func decodeTech(c *cursor) (Params, bool) {
	start := c.pos
	v, ok := c.u8()
	if !ok {
		return nil, false
	}
	return TechParams{raw{c.data[start:c.pos]}, v}, true
}

func decodeUpgrade(c *cursor) (Params, bool) {
	start := c.pos
	v, ok := c.u8()
	if !ok {
		return nil, false
	}
	return UpgradeParams{raw{c.data[start:c.pos]}, v}, true
}

func decodeTrailing(c *cursor) (Params, bool) {
	return TrailingParams{raw{c.rest()}}, true
}

func decodeChat(c *cursor) (Params, bool) {
	start := c.pos
	sender, ok := c.u8()
	if !ok {
		return nil, false
	}
	data := c.rest()
	msg := data
	for i, b := range data {
		if b == 0 {
			msg = data[:i]
			break
		}
	}
	return ChatParams{raw{c.data[start:c.pos]}, sender, string(msg)}, true
}
