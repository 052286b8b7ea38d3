package equality

import (
	"alethecheck/internal/check"
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
)

// Register wires this family's rule names into d.
func Register(d *check.Dispatcher) {
	d.Register("trans", CheckTrans)
	d.Register("eq_transitive", CheckEqTransitive)
	d.RegisterElaboration("trans", func(a *check.RuleArgs) ([]*proof.Command, *errors.CheckError) {
		return ElaborateTrans(a, a.StepID)
	})
}
