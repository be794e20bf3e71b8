// This file implements Replay: the fully-decoded in-memory record, holding
// the parsed header and the decompressed commands and map buffers it owns.
//
// Grounded on icza/screp/rep/replay.go's Replay{Header,Commands,MapData,
// Computed} grouping; ActionStream/MapDirectory here are lazy views rather
// than eagerly-decoded slices, per §9's ownership note.

package rep

import "github.com/brooddecode/bwrep/rep/repcmd"

// Replay is a fully decoded replay file. It holds the parsed Header and owns
// the decompressed commands and map buffers; the decompressed header bytes
// are not kept. ActionStream and MapDirectory hold non-owning views into the
// two buffers that must not outlive the Replay.
type Replay struct {
	Header *Header

	// Debug holds each section's raw, still-framed bytes when the decoder
	// was run with Config.Debug set; nil otherwise.
	Debug *ReplayDebug

	commands []byte
	mapData  []byte

	computed *Computed
}

// ReplayDebug carries the raw, pre-decode bytes of each section (length
// prefix and chunk framing included), for diagnostic inspection. Grounded on
// icza/screp/rep's HeaderDebug/CommandsDebug/MapDataDebug, collapsed into one
// struct since this format doesn't otherwise expose per-section debug hooks.
type ReplayDebug struct {
	RawHeader   []byte
	RawCommands []byte
	RawMapData  []byte
}

// NewReplay builds a Replay from the parsed header and the already-decompressed
// commands and map section payloads.
func NewReplay(header *Header, commands, mapData []byte) *Replay {
	return &Replay{Header: header, commands: commands, mapData: mapData}
}

// Actions returns a fresh lazy iterator over the commands section. Each call
// returns an independent stream positioned at the start.
func (r *Replay) Actions() *repcmd.ActionStream {
	return repcmd.NewActionStream(r.commands)
}

// Map returns the replay's map section directory.
func (r *Replay) Map() *MapDirectory {
	return NewMapDirectory(r.mapData)
}

// Computed returns derived statistics over the action stream (chat log,
// leave events, winner-team guess), computing and caching them on first
// call. Effective-APM classification is not part of Computed; it is the
// separate IsCmdEffective function.
func (r *Replay) Computed() *Computed {
	if r.computed == nil {
		r.computed = NewComputed(r.Header, repcmd.Collect(r.Actions()))
	}
	return r.computed
}
