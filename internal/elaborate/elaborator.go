package elaborate

import (
	"alethecheck/internal/check"
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
)

// Elaborator runs check.Driver.Elaborate and hands back both the rewritten
// command tree and an IDGenerator seeded from it, so a caller chaining a
// second elaboration pass (or a rule needing a globally fresh id outside
// the "<step>.tN" convention) never collides with a step the first pass
// already produced.
type Elaborator struct {
	driver *check.Driver
}

func NewElaborator(driver *check.Driver) *Elaborator {
	return &Elaborator{driver: driver}
}

// Run elaborates commands once. The IDGenerator is seeded from every id
// already present in the input tree and installed on the driver before
// elaboration runs, so a rule that synthesizes new steps (ElaborateTrans's
// symm reconstructions, for one) draws its fresh ids from it instead of
// rolling its own naming scheme, and can never collide with an id the
// input tree already uses.
func (e *Elaborator) Run(commands []*proof.Command) ([]*proof.Command, *IDGenerator, *errors.CheckError) {
	gen := NewIDGenerator(CollectIDs(commands))
	e.driver.IDs = gen

	out, err := e.driver.Elaborate(commands)
	if err != nil {
		return nil, nil, err
	}
	return out, gen, nil
}

// CollectIDs walks commands (and every nested subproof) and returns every
// step and assumption identifier present.
func CollectIDs(commands []*proof.Command) []string {
	var ids []string
	var walk func([]*proof.Command)
	walk = func(cmds []*proof.Command) {
		for _, cmd := range cmds {
			if cmd.IsSubproof() {
				walk(cmd.Commands())
				continue
			}
			ids = append(ids, cmd.ID())
		}
	}
	walk(commands)
	return ids
}
