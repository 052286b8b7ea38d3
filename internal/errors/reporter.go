package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats CheckError values for a terminal, in the same
// Rust-diagnostic-inspired style the teacher toolchain uses for source
// errors, adapted to a proof's step/rule coordinates instead of a
// line/column source position.
type Reporter struct{}

func NewReporter() *Reporter { return &Reporter{} }

// Format renders a single error as a colored, multi-line diagnostic.
func (r *Reporter) Format(err *CheckError) string {
	var b strings.Builder

	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	noteColor := color.New(color.FgBlue).SprintFunc()
	helpColor := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(&b, "%s[%s]: %s\n", red("error"), err.Code, bold(err.Message))
	if err.Rule != "" || err.Step != "" {
		fmt.Fprintf(&b, "  %s step %s, rule %s\n", dim("-->"), bold(err.Step), bold(err.Rule))
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "  %s %s\n", noteColor("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "  %s %s\n", helpColor("help:"), err.HelpText)
	}

	return b.String()
}

// Summary renders a short single-line form of err, without color.
func (r *Reporter) Summary(err *CheckError) string {
	if err.Rule == "" && err.Step == "" {
		return fmt.Sprintf("[%s] %s", err.Code, err.Message)
	}
	return fmt.Sprintf("[%s] step %s (rule %s): %s", err.Code, err.Step, err.Rule, err.Message)
}
