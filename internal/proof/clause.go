package proof

import "alethecheck/internal/term"

// Clause is an ordered sequence of shared term references. A unit clause
// has length one.
type Clause []*term.Term

func (c Clause) Len() int { return len(c) }

func (c Clause) IsUnit() bool { return len(c) == 1 }

func (c Clause) String() string {
	out := "(cl"
	for _, t := range c {
		out += " " + t.String()
	}
	return out + ")"
}
