// This file implements ActionStream: the lazy, single-pass decoder over a
// replay's decompressed commands section (component 3 of the decoder).
//
// Grounded on icza/screp/repparser/repparser.go's parseCommands loop and
// slicereader.go's cursor helpers, generalized into a standalone, restartable
// iterator (icza/screp eagerly decodes all commands into a slice; here the
// decode happens one action at a time so a caller can stop early without
// paying for the rest of the stream).

package repcmd

import (
	"encoding/binary"

	"github.com/brooddecode/bwrep/rep/repcore"
)

// maxFrameGap is the sanity limit on the difference between consecutive
// frame_block headers. A larger gap is treated as corruption and truncates
// the stream (the replay as a whole still decodes successfully).
const maxFrameGap = 10000

// Action is a single decoded player command.
type Action struct {
	Frame  repcore.Frame
	Player byte
	Opcode Opcode
	Params Params
}

// ActionStream decodes the commands section lazily, one Action at a time.
// It is single-pass: once exhausted (or truncated), construct a new
// ActionStream over the same bytes to iterate again.
type ActionStream struct {
	data []byte

	pos      uint32
	blockEnd uint32

	haveFrame bool
	curFrame  uint32

	truncated bool
	done      bool
}

// NewActionStream returns an ActionStream over the given decompressed
// commands section payload. data is not copied; it must outlive the stream.
func NewActionStream(data []byte) *ActionStream {
	return &ActionStream{data: data}
}

// Next returns the next action in the stream. The second return value is
// false once the stream is exhausted, whether cleanly (all bytes consumed)
// or due to truncation (see Truncated).
func (as *ActionStream) Next() (Action, bool) {
	if as.done {
		return Action{}, false
	}

	for as.pos >= as.blockEnd {
		if !as.nextBlock() {
			as.done = true
			return Action{}, false
		}
	}

	a, ok := as.decodeOne()
	if !ok {
		as.truncated = true
		as.done = true
		return Action{}, false
	}
	return a, true
}

// Truncated reports whether the stream stopped early due to a frame gap
// sanity-check failure or a block that ran out of bytes mid-action. A clean
// end of input is not truncation.
func (as *ActionStream) Truncated() bool {
	return as.truncated
}

// nextBlock advances past a (frame, block_len) header and sets up blockEnd
// for the actions that follow. Returns false at a clean end of input or on
// truncation (check Truncated to distinguish).
func (as *ActionStream) nextBlock() bool {
	size := uint32(len(as.data))

	if as.pos >= size {
		return false
	}
	if as.pos+4 > size {
		as.truncated = true
		return false
	}
	frame := binary.LittleEndian.Uint32(as.data[as.pos:])
	as.pos += 4

	if as.pos >= size {
		as.truncated = true
		return false
	}
	blockLen := uint32(as.data[as.pos])
	as.pos++

	blockEnd := as.pos + blockLen
	if blockEnd > size {
		as.truncated = true
		return false
	}

	if as.haveFrame {
		if frame < as.curFrame || frame-as.curFrame > maxFrameGap {
			as.truncated = true
			return false
		}
	}

	as.curFrame = frame
	as.haveFrame = true
	as.blockEnd = blockEnd
	return true
}

// decodeOne decodes a single (player_id, opcode, params) action within the
// current block.
func (as *ActionStream) decodeOne() (Action, bool) {
	if as.pos+2 > as.blockEnd {
		return Action{}, false
	}
	player := as.data[as.pos]
	opcode := Opcode(as.data[as.pos+1])
	as.pos += 2

	c := cursor{data: as.data, pos: as.pos, end: as.blockEnd}
	params, ok := decodeParams(opcode, &c)
	if !ok {
		return Action{}, false
	}
	as.pos = c.pos

	return Action{
		Frame:  repcore.Frame(as.curFrame),
		Player: player,
		Opcode: opcode,
		Params: params,
	}, true
}

// Collect drains the stream into a slice, for callers that want random
// access instead of a single pass.
func Collect(as *ActionStream) []Action {
	var actions []Action
	for {
		a, ok := as.Next()
		if !ok {
			break
		}
		actions = append(actions, a)
	}
	return actions
}

// cursor is a bounds-checked reader over the parameter bytes of a single
// action, bounded by the enclosing frame block's end.
type cursor struct {
	data []byte
	pos  uint32
	end  uint32
}

func (c *cursor) u8() (byte, bool) {
	if c.pos >= c.end {
		return 0, false
	}
	v := c.data[c.pos]
	c.pos++
	return v, true
}

func (c *cursor) u16() (uint16, bool) {
	if c.pos+2 > c.end {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, true
}

func (c *cursor) skip(n uint32) ([]byte, bool) {
	if c.pos+n > c.end {
		return nil, false
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// rest consumes and returns all remaining bytes up to the block end.
func (c *cursor) rest() []byte {
	b := c.data[c.pos:c.end]
	c.pos = c.end
	return b
}
