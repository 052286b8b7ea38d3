package proof

import "math"

// ClosingOffset is the sentinel offset denoting the end of a subproof
// frame in a schedule (see Index.IsClosing).
const ClosingOffset = math.MaxInt

// Index is a premise reference: a pair (depth, offset) locating a command
// in the proof command tree. depth is the nesting level from the root
// (zero); offset is the position of the command within that level's
// command list.
type Index struct {
	Depth  int
	Offset int
}

// IsClosing reports whether this index is the synthetic sentinel denoting
// the end of a subproof frame, rather than a real command position.
func (i Index) IsClosing() bool { return i.Offset == ClosingOffset }

// Premise is a resolved premise record: a premise's identifier, its
// clause, and the index it was resolved from.
type Premise struct {
	ID     string
	Clause Clause
	Index  Index
}
