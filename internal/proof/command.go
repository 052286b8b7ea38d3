package proof

import "alethecheck/internal/term"

// Kind is the closed set of proof-tree node shapes.
type Kind int

const (
	KindAssumption Kind = iota
	KindStep
	KindSubproof
	// KindClosing is the synthetic marker yielded by the schedule
	// iterator to denote the end of a subproof frame; it never appears
	// inside a command tree built by a parser or elaborator.
	KindClosing
)

// Arg is a literal rule argument: either a bare term or an assignment of
// the form (:= name term), distinguished by whether Name is set.
type Arg struct {
	Term *term.Term
	Name string
}

func (a Arg) IsAssign() bool { return a.Name != "" }

func TermArg(t *term.Term) Arg { return Arg{Term: t} }

func AssignArg(name string, value *term.Term) Arg { return Arg{Name: name, Term: value} }

// AssignmentArg is a subproof assignment-argument: a name bound to a value
// term, used by subproof-opening constructs such as `let`/`sko_ex`.
type AssignmentArg struct {
	Name  string
	Value *term.Term
}

// VariableArg is a subproof variable-argument: a name paired with its
// declared sort term.
type VariableArg struct {
	Name string
	Sort *term.Term
}

// Command is a proof-tree node: an assumption, a step, a subproof, or the
// synthetic closing marker used only by the schedule iterator.
type Command struct {
	kind Kind
	id   string

	clause    Clause
	rule      string
	premises  []Index
	args      []Arg
	discharge []Index

	commands       []*Command
	assignmentArgs []AssignmentArg
	variableArgs   []VariableArg
}

var closingCommand = &Command{kind: KindClosing, id: "<closing>"}

// Closing returns the shared synthetic closing marker.
func Closing() *Command { return closingCommand }

// NewAssumption builds a named assumption introducing formula.
func NewAssumption(id string, formula *term.Term) *Command {
	return &Command{kind: KindAssumption, id: id, clause: Clause{formula}}
}

// NewStep builds a proof step.
func NewStep(id string, clause Clause, rule string, premises []Index, args []Arg, discharge []Index) *Command {
	return &Command{
		kind:      KindStep,
		id:        id,
		clause:    clause,
		rule:      rule,
		premises:  premises,
		args:      args,
		discharge: discharge,
	}
}

// NewSubproof builds a subproof from its ordered inner commands. Per the
// data model, a subproof is closed by its final step; the subproof's own
// identifier and clause are therefore those of its last inner command.
func NewSubproof(commands []*Command, assignmentArgs []AssignmentArg, variableArgs []VariableArg) *Command {
	sp := &Command{
		kind:           KindSubproof,
		commands:       commands,
		assignmentArgs: assignmentArgs,
		variableArgs:   variableArgs,
	}
	if len(commands) > 0 {
		last := commands[len(commands)-1]
		sp.id = last.ID()
	}
	return sp
}

func (c *Command) Kind() Kind { return c.kind }

// ID returns the command's identifier. For a subproof, this is the
// identifier of its closing (last) command.
func (c *Command) ID() string {
	if c.kind == KindSubproof && len(c.commands) > 0 {
		return c.commands[len(c.commands)-1].ID()
	}
	return c.id
}

// Clause returns the clause asserted by this command. For a subproof, this
// is the clause of its closing command.
func (c *Command) Clause() Clause {
	if c.kind == KindSubproof && len(c.commands) > 0 {
		return c.commands[len(c.commands)-1].Clause()
	}
	return c.clause
}

func (c *Command) Rule() string           { return c.rule }
func (c *Command) PremiseRefs() []Index   { return c.premises }
func (c *Command) Args() []Arg            { return c.args }
func (c *Command) Discharge() []Index     { return c.discharge }
func (c *Command) Commands() []*Command   { return c.commands }
func (c *Command) AssignmentArgs() []AssignmentArg { return c.assignmentArgs }
func (c *Command) VariableArgs() []VariableArg     { return c.variableArgs }

func (c *Command) IsSubproof() bool { return c.kind == KindSubproof }
