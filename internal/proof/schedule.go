package proof

// BuildSchedule computes the natural depth-first schedule for a command
// tree: one coordinate per real command, plus a closing sentinel after the
// inner commands of every subproof. This is a builder convenience for
// tests and the CLI harness; it does not replace a host-supplied schedule,
// which may reorder independent subproofs for parallel checking (outside
// this core, see spec's concurrency model).
func BuildSchedule(commands []*Command) []Index {
	var out []Index
	appendCommands(&out, commands, 0)
	return out
}

func appendCommands(out *[]Index, commands []*Command, depth int) {
	for offset, cmd := range commands {
		*out = append(*out, Index{Depth: depth, Offset: offset})
		if cmd.IsSubproof() {
			appendCommands(out, cmd.Commands(), depth+1)
			*out = append(*out, Index{Depth: depth + 1, Offset: ClosingOffset})
		}
	}
}
