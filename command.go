package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Variadic is the argument-slot marker that captures all remaining positional
// tokens. It may only appear as the last entry in [Command.Args], and the
// captured tokens are bound under [VariadicName].
const Variadic = "..."

// VariadicName is the reserved binding identifier for the variadic capture.
const VariadicName = "others"

// Command is one node in the command tree. A node with SubCommands is a
// collection: it carries no handler and only routes to its children. Every
// other node is a leaf: it declares positional argument slots, option specs,
// and the handler to run.
type Command struct {
	// Name is the single word that selects this command. Siblings are scanned
	// in declaration order and the first name match wins, so a duplicate name
	// shadows every later sibling with the same name. That ordering is part of
	// the contract, not an accident; hosts may rely on it to override commands.
	Name string

	// Help is a one-line description of the command. It is not part of the
	// rendered usage block, but hosts and generated docs may surface it.
	Help string

	// Args lists the positional argument slots for a leaf, in binding order.
	// Each entry is an identifier that binds exactly one token, except the
	// [Variadic] marker which must come last and captures the rest.
	Args []string

	// Options are the flag specs for a leaf. A universal help option is
	// prepended at parse time, so "help" and the short "h" are reserved.
	Options []Option

	// SubCommands makes this node a collection. Collections cannot carry
	// Args, Options, or Exec.
	SubCommands []*Command

	// Exec is the leaf handler. It receives the bound positional arguments
	// and parsed options through [State].
	Exec func(ctx context.Context, s *State) error
}

// isLeaf reports whether the node dispatches to a handler rather than routing
// to children.
func (c *Command) isLeaf() bool { return len(c.SubCommands) == 0 }

// OptionKind selects how an option's argument is parsed.
type OptionKind int

const (
	// FlagKind is a bare presence flag; it takes no typed default.
	FlagKind OptionKind = iota
	StringKind
	IntKind
	BoolKind
)

// Option describes one flag a leaf command accepts. At least one of Short and
// Long must be set for the option to be reachable (and renderable).
type Option struct {
	// Name is the identifier handlers use to look the value up.
	Name string

	// Short is a single-character flag, without the leading dash.
	Short string

	// Long is the long flag name, without the leading dashes.
	Long string

	// Kind selects the argument type. The zero value is a bare flag.
	Kind OptionKind

	// Default is the value reported when the flag is absent. Leave nil for no
	// default; a non-nil default is rendered in the usage table.
	Default any

	// Usage is the help text shown in the usage table.
	Usage string
}

// flagName is the primary name the option registers under in the delegate
// flag set.
func (o Option) flagName() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// flagText renders the left usage column: "-x", "--long", or "-x, --long".
func (o Option) flagText() string {
	switch {
	case o.Short != "" && o.Long != "":
		return "-" + o.Short + ", --" + o.Long
	case o.Short != "":
		return "-" + o.Short
	default:
		return "--" + o.Long
	}
}

func validateCommand(c *Command, path []string) error {
	if c.Name == "" {
		if len(path) == 0 {
			return errors.New("command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.Contains(c.Name, " ") {
		return fmt.Errorf("command name %q contains spaces", c.Name)
	}
	if len(c.SubCommands) > 0 {
		if c.Exec != nil || len(c.Args) > 0 || len(c.Options) > 0 {
			return fmt.Errorf("command %q has subcommands and cannot carry args, options, or a handler", c.Name)
		}
		currentPath := append(path, c.Name)
		for _, sub := range c.SubCommands {
			if err := validateCommand(sub, currentPath); err != nil {
				return err
			}
		}
		return nil
	}
	if c.Exec == nil {
		return fmt.Errorf("command %q has no execution function", c.Name)
	}
	for i, slot := range c.Args {
		if slot == "" {
			return fmt.Errorf("command %q has an empty argument slot", c.Name)
		}
		if slot == Variadic && i != len(c.Args)-1 {
			return fmt.Errorf("command %q: variadic marker must be the last argument slot", c.Name)
		}
	}
	for _, o := range c.Options {
		if o.Short == "" && o.Long == "" {
			return fmt.Errorf("command %q: option %q has neither a short nor a long flag", c.Name, o.Name)
		}
		if len(o.Short) > 1 {
			return fmt.Errorf("command %q: short flag %q must be a single character", c.Name, o.Short)
		}
	}
	return nil
}
