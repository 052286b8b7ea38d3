package check

import (
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
	"alethecheck/internal/schedule"
	"alethecheck/internal/term"
)

// StepResult records the outcome of checking a single step, keyed by its
// identifier, for callers that want a full report rather than a first
// error.
type StepResult struct {
	ID    string
	Rule  string
	Error *errors.CheckError
}

// Driver walks a command tree via the schedule iterator, assembling each
// step's RuleArgs and invoking the rule registered in Dispatcher.
type Driver struct {
	Pool       *term.Pool
	Dispatcher *Dispatcher
	Config     Config

	// IDs synthesizes fresh step identifiers for rules that elaborate a
	// step into more than one. Set by an Elaborator before a run that
	// needs it; nil otherwise.
	IDs IDSynth

	context *ContextStack
	timer   DeepEqTimer
}

func NewDriver(pool *term.Pool, dispatcher *Dispatcher, cfg Config) *Driver {
	return &Driver{
		Pool:       pool,
		Dispatcher: dispatcher,
		Config:     cfg,
		context:    NewContextStack(),
	}
}

// Check walks commands in schedule order, checking every step. It stops and
// returns the first error encountered, augmented with the step's identity.
func (d *Driver) Check(commands []*proof.Command) *errors.CheckError {
	results := d.run(commands, false)
	for _, r := range results {
		if r.Error != nil {
			return r.Error
		}
	}
	return nil
}

// CheckAll behaves like Check but keeps going after a step fails, returning
// one StepResult per real (non-closing, non-subproof-entry) command.
func (d *Driver) CheckAll(commands []*proof.Command) []StepResult {
	return d.run(commands, true)
}

func (d *Driver) run(commands []*proof.Command, keepGoing bool) []StepResult {
	coords := proof.BuildSchedule(commands)
	it := schedule.New(commands, coords)

	var results []StepResult
	var lastAtDepth []*proof.Command

	for {
		cmd := it.Next()
		if cmd == nil {
			break
		}

		switch cmd.Kind() {
		case proof.KindClosing:
			d.context.Pop()
			if len(lastAtDepth) > 0 {
				lastAtDepth = lastAtDepth[:len(lastAtDepth)-1]
			}
			continue

		case proof.KindSubproof:
			d.context.Push(d.buildFrame(cmd))
			if len(lastAtDepth) > 0 {
				lastAtDepth[len(lastAtDepth)-1] = cmd
			}
			lastAtDepth = append(lastAtDepth, nil)
			continue

		case proof.KindAssumption:
			results = append(results, StepResult{ID: cmd.ID(), Rule: "assume"})
			if len(lastAtDepth) > 0 {
				lastAtDepth[len(lastAtDepth)-1] = cmd
			}
			continue
		}

		// KindStep.
		args := d.buildRuleArgs(it, cmd, lastAtDepth)
		cerr := d.checkStep(args, cmd)
		if cerr != nil {
			cerr = cerr.WithStep(cmd.Rule(), cmd.ID())
		}
		results = append(results, StepResult{ID: cmd.ID(), Rule: cmd.Rule(), Error: cerr})
		if len(lastAtDepth) > 0 {
			lastAtDepth[len(lastAtDepth)-1] = cmd
		}
		if cerr != nil && !keepGoing {
			break
		}
	}
	return results
}

// Elaborate walks commands the same way Check does, but builds a new
// command tree: every step whose rule has a registered ElaborateFn is
// replaced by that function's output (nil output keeps the original step
// unchanged), and every other command is carried over as-is. Premises are
// always resolved against the original tree, never the one being built.
func (d *Driver) Elaborate(commands []*proof.Command) ([]*proof.Command, *errors.CheckError) {
	coords := proof.BuildSchedule(commands)
	it := schedule.New(commands, coords)

	outFrames := [][]*proof.Command{{}}
	var subproofStack []*proof.Command
	var lastAtDepth []*proof.Command

	for {
		cmd := it.Next()
		if cmd == nil {
			break
		}

		switch cmd.Kind() {
		case proof.KindClosing:
			d.context.Pop()
			inner := outFrames[len(outFrames)-1]
			outFrames = outFrames[:len(outFrames)-1]
			orig := subproofStack[len(subproofStack)-1]
			subproofStack = subproofStack[:len(subproofStack)-1]
			wrapped := proof.NewSubproof(inner, orig.AssignmentArgs(), orig.VariableArgs())
			outFrames[len(outFrames)-1] = append(outFrames[len(outFrames)-1], wrapped)
			if len(lastAtDepth) > 0 {
				lastAtDepth = lastAtDepth[:len(lastAtDepth)-1]
			}
			continue

		case proof.KindSubproof:
			d.context.Push(d.buildFrame(cmd))
			outFrames = append(outFrames, []*proof.Command{})
			subproofStack = append(subproofStack, cmd)
			if len(lastAtDepth) > 0 {
				lastAtDepth[len(lastAtDepth)-1] = cmd
			}
			lastAtDepth = append(lastAtDepth, nil)
			continue

		case proof.KindAssumption:
			outFrames[len(outFrames)-1] = append(outFrames[len(outFrames)-1], cmd)
			if len(lastAtDepth) > 0 {
				lastAtDepth[len(lastAtDepth)-1] = cmd
			}
			continue
		}

		args := d.buildRuleArgs(it, cmd, lastAtDepth)
		var replacement []*proof.Command
		if fn, ok := d.Dispatcher.LookupElaboration(cmd.Rule()); ok {
			r, cerr := fn(args)
			if cerr != nil {
				return nil, cerr.WithStep(cmd.Rule(), cmd.ID())
			}
			replacement = r
		}
		if replacement == nil {
			outFrames[len(outFrames)-1] = append(outFrames[len(outFrames)-1], cmd)
		} else {
			outFrames[len(outFrames)-1] = append(outFrames[len(outFrames)-1], replacement...)
		}
		if len(lastAtDepth) > 0 {
			lastAtDepth[len(lastAtDepth)-1] = cmd
		}
	}
	return outFrames[0], nil
}

func (d *Driver) checkStep(args *RuleArgs, cmd *proof.Command) *errors.CheckError {
	fn, ok := d.Dispatcher.Lookup(cmd.Rule())
	if !ok {
		if d.Config.SkipUnknownRules && !d.Config.Strict {
			return nil
		}
		return errors.UnknownRule(cmd.Rule())
	}
	return fn(args)
}

func (d *Driver) buildRuleArgs(it *schedule.Iterator, cmd *proof.Command, lastAtDepth []*proof.Command) *RuleArgs {
	premises := make([]proof.Premise, 0, len(cmd.PremiseRefs()))
	for _, idx := range cmd.PremiseRefs() {
		ref := it.GetPremise(idx)
		premises = append(premises, proof.Premise{ID: ref.ID(), Clause: ref.Clause(), Index: idx})
	}

	var discharge []*proof.Command
	for _, idx := range cmd.Discharge() {
		discharge = append(discharge, it.GetPremise(idx))
	}

	var prev *proof.Premise
	if it.IsEndStep() && len(lastAtDepth) > 0 && lastAtDepth[len(lastAtDepth)-1] != nil {
		p := lastAtDepth[len(lastAtDepth)-1]
		prev = &proof.Premise{ID: p.ID(), Clause: p.Clause()}
	}

	return &RuleArgs{
		StepID:          cmd.ID(),
		Conclusion:      cmd.Clause(),
		Premises:        premises,
		Args:            cmd.Args(),
		Pool:            d.Pool,
		Context:         d.context,
		PreviousCommand: prev,
		Discharge:       discharge,
		DeepEqTime:      &d.timer,
		IDs:             d.IDs,
	}
}

// buildFrame copies a subproof's assignment- and variable-arguments into a
// Frame. Values and sorts are stored as given; they are not re-interned.
func (d *Driver) buildFrame(sp *proof.Command) *Frame {
	f := NewFrame()
	for _, a := range sp.AssignmentArgs() {
		f.Assignments[a.Name] = a.Value
	}
	for _, v := range sp.VariableArgs() {
		f.Variables[v.Name] = v.Sort
	}
	return f
}
