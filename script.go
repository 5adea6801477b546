package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/nightvein/cmdtree/pkg/suggest"
)

// Script is the top-level declaration a host builds once at startup: a display
// name, a version string, an optional config file whose entries overlay parsed
// options, and the root command forest. The tree is never mutated after
// construction, so a Script may be shared freely.
type Script struct {
	// Name is the script's display name, used in usage text.
	Name string

	// Version is printed by the universal version option.
	Version string

	// ConfigFile, when set, names a TOML file whose key/value pairs overlay
	// the parsed options of every dispatched command.
	ConfigFile string

	// Commands is the root of the command tree.
	Commands []*Command

	// Standard streams. Nil values default to the os streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// width overrides terminal width detection; nil means detect at render.
	width func() int
}

// Outcome classifies how an invocation terminated. Every path through [Run]
// lands on exactly one of these, so hosts (and tests) can observe the terminal
// state without the process exiting.
type Outcome int

const (
	// OutcomeDispatched: a leaf resolved and its handler ran.
	OutcomeDispatched Outcome = iota
	// OutcomeUsage: usage or help text was printed instead of a handler.
	OutcomeUsage
	// OutcomeVersion: the version line was printed.
	OutcomeVersion
	// OutcomeFatal: option parsing or config loading failed.
	OutcomeFatal
)

// Result is the terminal state of one invocation. Code is the process exit
// status [Main] would use; Err is the fatal or handler error, if any.
type Result struct {
	Outcome Outcome
	Code    int
	Err     error
}

// Main runs the script against os.Args, reports any error on stderr, and
// exits the process with the result's code. Hosts that need to stay in
// control of process exit should call [Script.Run] instead.
func (s *Script) Main(ctx context.Context) {
	result := s.Run(ctx, os.Args[1:])
	if result.Err != nil {
		fmt.Fprintln(s.stderr(), color.RedString("Error: %v", result.Err))
	}
	os.Exit(result.Code)
}

// Run resolves and dispatches a single invocation. It never exits the
// process: help, usage, and version land on status-0 results, parse and
// config failures on status-1 results, and a resolved handler's error is
// passed through with status 1.
func (s *Script) Run(ctx context.Context, args []string) Result {
	if err := s.validate(); err != nil {
		return Result{Outcome: OutcomeFatal, Code: 1, Err: err}
	}

	pathTokens, flagTokens := splitArgs(args)
	res := matchCommands(s.Commands, pathTokens)
	switch res.kind {
	case matchResolved:
		return s.dispatch(ctx, res, flagTokens)
	case matchPartial:
		if res.cmd.isLeaf() {
			s.writeUsage(s.stdout(), res.path, res.cmd)
			return Result{Outcome: OutcomeUsage}
		}
		return s.usageFallback(res, flagTokens, "")
	default:
		var unknown string
		if len(pathTokens) > 0 {
			unknown = pathTokens[0]
		}
		return s.usageFallback(res, flagTokens, unknown)
	}
}

// dispatch handles a fully resolved leaf: delegate parse, config overlay,
// help short-circuit, then the handler.
func (s *Script) dispatch(ctx context.Context, res matchResult, flagTokens []string) Result {
	specs := append([]Option{helpOption}, res.cmd.Options...)
	opts, _, err := parseOptions(specs, flagTokens)
	if err != nil {
		return Result{Outcome: OutcomeFatal, Code: 1, Err: err}
	}
	if s.ConfigFile != "" {
		pairs, err := LoadConfig(s.ConfigFile)
		if err != nil {
			return Result{Outcome: OutcomeFatal, Code: 1, Err: err}
		}
		opts.overlay(pairs)
	}
	if GetOptionValue[bool](opts, "help") {
		s.writeUsage(s.stdout(), res.path, res.cmd)
		return Result{Outcome: OutcomeUsage}
	}

	st := &State{
		Stdin:    s.stdin(),
		Stdout:   s.stdout(),
		Stderr:   s.stderr(),
		bindings: res.bindings,
		options:  opts,
	}
	if err := res.cmd.Exec(ctx, st); err != nil {
		return Result{Outcome: OutcomeDispatched, Code: 1, Err: err}
	}
	return Result{Outcome: OutcomeDispatched}
}

// usageFallback handles the no-match and stuck-collection states: the flag
// tokens are parsed against the universal options only, so --version still
// works and a malformed flag is still fatal.
func (s *Script) usageFallback(res matchResult, flagTokens []string, unknown string) Result {
	opts, _, err := parseOptions([]Option{helpOption, versionOption}, flagTokens)
	if err != nil {
		return Result{Outcome: OutcomeFatal, Code: 1, Err: err}
	}
	if GetOptionValue[bool](opts, "version") {
		fmt.Fprintf(s.stdout(), "%s %s\n", s.Name, s.Version)
		return Result{Outcome: OutcomeVersion}
	}
	if unknown != "" {
		s.writeSuggestions(unknown)
	}
	s.writeUsage(s.stdout(), res.path, res.cmd)
	return Result{Outcome: OutcomeUsage}
}

// writeSuggestions prints a "did you mean" note on stderr when the first
// token matched no top-level command.
func (s *Script) writeSuggestions(unknown string) {
	var names []string
	for _, c := range s.Commands {
		names = append(names, c.Name)
	}
	similar := suggest.FindSimilar(unknown, names, 3)
	if len(similar) == 0 {
		return
	}
	fmt.Fprintf(s.stderr(), "Unknown command %q. Did you mean one of these?\n\t%s\n\n",
		unknown, strings.Join(similar, "\n\t"))
}

// GetOptionValue retrieves a typed value from an options bag, returning the
// zero value when absent or mistyped.
func GetOptionValue[T any](opts Options, name string) T {
	if v, ok := opts[name]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	var zero T
	return zero
}

// splitArgs separates the leading positional tokens (the candidate command
// path) from everything at and after the first flag-like token.
func splitArgs(args []string) (path, flags []string) {
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func (s *Script) validate() error {
	if s.Name == "" {
		return errors.New("script has no name")
	}
	for _, c := range s.Commands {
		if err := validateCommand(c, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *Script) lineWidth() int {
	if s.width != nil {
		return s.width()
	}
	return terminalWidth()
}

func (s *Script) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *Script) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Script) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
