package proof

import (
	"fmt"
	"math/big"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"alethecheck/internal/term"
)

// Textual rule arguments only ever need the small s-expression-atom
// language described in SPEC_FULL.md: bare symbols, integer/decimal
// literals, and (:= symbol symbol) assignment pairs. Full term parsing is
// an external collaborator (see spec.md §1); this grammar exists purely so
// builder helpers and the CLI harness can write step arguments as text
// instead of constructing proof.Arg slices by hand.
var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
	{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[():=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type argListAST struct {
	Items []*argItemAST `@@*`
}

type argItemAST struct {
	Assign *assignAST `  @@`
	Atom   *string    `| @(Ident | Number)`
}

type assignAST struct {
	Name  string `"(" ":" "=" @Ident`
	Value string `@Ident ")"`
}

var argParser = participle.MustBuild[argListAST](
	participle.Lexer(argLexer),
	participle.Elide("Whitespace"),
)

// Environment resolves a bare symbol to an already-interned term, for use
// while parsing argument text (declared constants, bound variables, etc).
type Environment map[string]*term.Term

// ParseArgs parses the textual argument list src into a slice of Arg
// values. Bare numeric atoms are interned as integer/real literals
// directly; bare symbolic atoms and the values of (:= name value) pairs
// are resolved through env.
func ParseArgs(pool *term.Pool, env Environment, src string) ([]Arg, error) {
	ast, err := argParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("proof: parsing argument list %q: %w", src, err)
	}

	args := make([]Arg, 0, len(ast.Items))
	for _, item := range ast.Items {
		switch {
		case item.Assign != nil:
			value, ok := env[item.Assign.Value]
			if !ok {
				return nil, fmt.Errorf("proof: unresolved symbol %q in assignment argument", item.Assign.Value)
			}
			args = append(args, AssignArg(item.Assign.Name, value))
		case item.Atom != nil:
			t, err := resolveAtom(pool, env, *item.Atom)
			if err != nil {
				return nil, err
			}
			args = append(args, TermArg(t))
		}
	}
	return args, nil
}

func resolveAtom(pool *term.Pool, env Environment, atom string) (*term.Term, error) {
	if t, ok := env[atom]; ok {
		return t, nil
	}
	if n, ok := new(big.Int).SetString(atom, 10); ok {
		return pool.Add(term.NewInt(n)), nil
	}
	if r, ok := new(big.Rat).SetString(atom); ok {
		return pool.Add(term.NewReal(r)), nil
	}
	return nil, fmt.Errorf("proof: unresolved symbol %q in argument list", atom)
}
