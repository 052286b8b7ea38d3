// Command alethe-check runs the equality-chain checker (and, with
// -elaborate, the trans reconstruction elaborator) over a small built-in
// demonstration proof. Ingesting a real Alethe proof script is out of
// scope for this core (spec.md §1 treats term parsing as an external
// concern); this harness exists to exercise the driver end-to-end and to
// give the checker a real command-line surface to grow into.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	pkgerrors "github.com/pkg/errors"

	"alethecheck/internal/check"
	"alethecheck/internal/elaborate"
	"alethecheck/internal/errors"
	"alethecheck/internal/proof"
	"alethecheck/internal/rules/equality"
	"alethecheck/internal/term"
)

func main() {
	strict := flag.Bool("strict", false, "escalate warnings (e.g. unknown rules) to hard errors")
	skipUnknown := flag.Bool("skip-unknown-rules", true, "accept unregistered rule names as holes")
	doElaborate := flag.Bool("elaborate", false, "reconstruct the demonstration proof instead of just checking it")
	flag.Parse()

	cfg := check.Config{Strict: *strict, SkipUnknownRules: *skipUnknown}

	pool := term.NewPool()
	dispatcher := check.NewDispatcher()
	equality.Register(dispatcher)

	commands, err := demoProof(pool)
	if err != nil {
		log.Fatal(pkgerrors.Wrap(err, "building demonstration proof"))
	}

	driver := check.NewDriver(pool, dispatcher, cfg)
	reporter := errors.NewReporter()

	if *doElaborate {
		elaborated, _, cerr := elaborate.NewElaborator(driver).Run(commands)
		if cerr != nil {
			fmt.Fprintln(os.Stderr, reporter.Format(cerr))
			os.Exit(1)
		}
		if cerr := driver.Check(elaborated); cerr != nil {
			fmt.Fprintln(os.Stderr, reporter.Format(cerr))
			os.Exit(1)
		}
		fmt.Println("elaborated proof checks out")
		return
	}

	if cerr := driver.Check(commands); cerr != nil {
		fmt.Fprintln(os.Stderr, reporter.Format(cerr))
		os.Exit(1)
	}
	fmt.Println("proof checks out")
}

// demoProof builds: a = b, c = b |- a = c, via `trans`, with the second
// premise given in reversed orientation so -elaborate has a flip to
// reconstruct.
func demoProof(pool *term.Pool) ([]*proof.Command, error) {
	intSort := pool.Add(term.NewSortTerm(term.IntSort()))
	a := pool.Add(term.NewVar("a", intSort))
	b := pool.Add(term.NewVar("b", intSort))
	c := pool.Add(term.NewVar("c", intSort))

	eqAB := pool.Add(term.NewOp(term.OpEquals, a, b))
	eqCB := pool.Add(term.NewOp(term.OpEquals, c, b))
	eqAC := pool.Add(term.NewOp(term.OpEquals, a, c))

	// The `trans` step carries an illustrative (:= hint a) argument, parsed
	// from text through the rule-argument grammar rather than built by
	// hand, the way a host reading real step arguments would.
	env := proof.Environment{"a": a, "b": b, "c": c}
	args, err := proof.ParseArgs(pool, env, "(:= hint a)")
	if err != nil {
		return nil, err
	}

	commands := []*proof.Command{
		proof.NewAssumption("h1", eqAB),
		proof.NewAssumption("h2", eqCB),
		proof.NewStep("t1", proof.Clause{eqAC}, "trans",
			[]proof.Index{{Depth: 0, Offset: 0}, {Depth: 0, Offset: 1}}, args, nil),
	}
	return commands, nil
}
