// Package schedule implements the streaming traversal over a flat sequence
// of (depth, offset) coordinates into a tree of proof commands. The
// checker driver does not recurse over subproofs structurally; it walks
// this iterator instead, which preserves the premise-indexing scheme used
// throughout the rest of the core.
package schedule

import "alethecheck/internal/proof"

// Iterator streams commands from a proof command tree in the order given
// by a precomputed schedule, exposing the currently open subproof frame at
// every step.
type Iterator struct {
	stack  [][]*proof.Command
	coords []proof.Index
	pos    int
}

// New builds an iterator over root (the top-level command list) driven by
// coords (see proof.BuildSchedule for a convenience way to produce one).
func New(root []*proof.Command, coords []proof.Index) *Iterator {
	return &Iterator{
		stack:  [][]*proof.Command{root},
		coords: coords,
	}
}

// Next returns the next command, or nil once the schedule is exhausted. A
// coordinate whose offset is the closing sentinel yields the synthetic
// closing command without advancing into any frame; otherwise the iterator
// pops frames until its stack depth matches the coordinate's depth,
// fetches the referenced command, and pushes a new frame if that command
// is a subproof.
func (it *Iterator) Next() *proof.Command {
	if it.pos >= len(it.coords) {
		return nil
	}
	coord := it.coords[it.pos]
	it.pos++

	if coord.IsClosing() {
		return proof.Closing()
	}

	for coord.Depth != len(it.stack)-1 {
		it.stack = it.stack[:len(it.stack)-1]
	}

	frame := it.stack[len(it.stack)-1]
	command := frame[coord.Offset]
	if command.IsSubproof() {
		it.stack = append(it.stack, command.Commands())
	}
	return command
}

// Depth returns the nesting depth of the innermost open frame, starting at
// zero for the root proof. Right after Next returns a subproof, that
// subproof's frame is already open and counted.
func (it *Iterator) Depth() int { return len(it.stack) - 1 }

// IsInSubproof reports whether the iterator is currently inside a
// subproof, i.e. whether Depth() > 0.
func (it *Iterator) IsInSubproof() bool { return it.Depth() > 0 }

// CurrentSubproof returns the commands of the innermost open subproof, or
// nil if the iterator is at the root.
func (it *Iterator) CurrentSubproof() []*proof.Command {
	if !it.IsInSubproof() {
		return nil
	}
	return it.stack[len(it.stack)-1]
}

// IsEndStep reports whether the last command returned by Next was the
// last command of the innermost open subproof.
func (it *Iterator) IsEndStep() bool {
	if !it.IsInSubproof() || it.pos == 0 {
		return false
	}
	last := it.coords[it.pos-1]
	frame := it.stack[len(it.stack)-1]
	return last.Offset == len(frame)-1
}

// GetPremise resolves a premise index into the command it references. The
// caller guarantees the index is valid (its frame must already have been
// opened by a prior Next call).
func (it *Iterator) GetPremise(idx proof.Index) *proof.Command {
	return it.stack[idx.Depth][idx.Offset]
}
