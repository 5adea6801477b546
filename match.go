package cmdtree

// Bindings maps argument-slot identifiers to the tokens they captured during a
// resolve. Named slots bind one token each; the variadic slot binds the
// ordered leftovers under [VariadicName]. A Bindings value is built fresh per
// invocation and read once by the handler.
type Bindings struct {
	named    map[string]string
	variadic []string
	captured bool
}

// Arg returns the token bound to a named slot.
func (b Bindings) Arg(name string) (string, bool) {
	v, ok := b.named[name]
	return v, ok
}

// Variadic returns the tokens captured by the variadic slot and whether the
// resolved command declared one. The slice may be empty even when ok is true.
func (b Bindings) Variadic() ([]string, bool) {
	return b.variadic, b.captured
}

// Lookup resolves any slot identifier, including [VariadicName], which yields
// the captured []string.
func (b Bindings) Lookup(name string) (any, bool) {
	if name == VariadicName {
		if !b.captured {
			return nil, false
		}
		return b.variadic, true
	}
	v, ok := b.named[name]
	if !ok {
		return nil, false
	}
	return v, true
}

type matchKind int

const (
	// matchNone: the first token matched no top-level command name.
	matchNone matchKind = iota
	// matchPartial: descent stopped at cmd, either a collection whose children
	// rejected the next token or a leaf whose positional binding failed.
	matchPartial
	// matchResolved: cmd is a leaf with complete bindings.
	matchResolved
)

// matchResult is the outcome of walking the command tree against the leading
// positional tokens. path accumulates the collection names traversed; the
// matched leaf (or stuck collection) itself is in cmd.
type matchResult struct {
	kind     matchKind
	cmd      *Command
	bindings Bindings
	path     []string
}

// matchCommands resolves tokens against the command forest. The scan at each
// level is linear and ordered: the first sibling whose name equals the current
// token is taken, with no backtracking when its binding later fails.
func matchCommands(cmds []*Command, tokens []string) matchResult {
	return matchLevel(nil, cmds, tokens, nil)
}

func matchLevel(parent *Command, cmds []*Command, tokens []string, path []string) matchResult {
	if len(tokens) > 0 {
		for _, c := range cmds {
			if c.Name != tokens[0] {
				continue
			}
			if !c.isLeaf() {
				return matchLevel(c, c.SubCommands, tokens[1:], append(path, c.Name))
			}
			b, ok := bindArgs(c.Args, tokens[1:])
			if !ok {
				return matchResult{kind: matchPartial, cmd: c, path: path}
			}
			return matchResult{kind: matchResolved, cmd: c, bindings: b, path: path}
		}
	}
	if parent == nil {
		return matchResult{kind: matchNone}
	}
	return matchResult{kind: matchPartial, cmd: parent, path: path}
}

// bindArgs walks the slot list against the remaining tokens pairwise. A named
// slot consumes exactly one token; the variadic marker consumes everything
// left, including nothing. Leftover tokens with no variadic slot reject the
// leaf.
func bindArgs(slots []string, tokens []string) (Bindings, bool) {
	b := Bindings{named: make(map[string]string, len(slots))}
	for _, slot := range slots {
		if slot == Variadic {
			b.variadic = append([]string(nil), tokens...)
			b.captured = true
			return b, true
		}
		if len(tokens) == 0 {
			return Bindings{}, false
		}
		b.named[slot] = tokens[0]
		tokens = tokens[1:]
	}
	if len(tokens) > 0 {
		return Bindings{}, false
	}
	return b, true
}
