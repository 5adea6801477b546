package cmdtree

import (
	"flag"
	"io"

	"github.com/mfridman/xflag"
)

// Options holds parsed option values keyed by option identifier. Values carry
// the type the [OptionKind] declared (bool, int, or string); config-file
// entries overlaid afterwards keep whatever type the file declared.
type Options map[string]any

// helpOption is prepended to every leaf's option specs, so help is always
// parseable even when the host declares no options of its own.
var helpOption = Option{
	Name:  "help",
	Short: "h",
	Long:  "help",
	Usage: "Print usage for this command",
}

// versionOption is only in play when no command resolved, alongside help.
var versionOption = Option{
	Name:  "version",
	Short: "v",
	Long:  "version",
	Usage: "Print the version and exit",
}

// parseOptions is the boundary to the option delegate: it compiles the specs
// into a flag set, hands the tokens to xflag so flags may intersperse with
// positionals, and extracts the typed values. Any delegate failure comes back
// as a *ParseError.
func parseOptions(specs []Option, tokens []string) (Options, []string, error) {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, o := range specs {
		registerOption(fs, o)
	}
	if err := xflag.ParseToEnd(fs, tokens); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	opts := make(Options, len(specs))
	for _, o := range specs {
		f := fs.Lookup(o.flagName())
		if f == nil {
			continue
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			opts[o.Name] = getter.Get()
		}
	}
	return opts, fs.Args(), nil
}

// registerOption defines the option under its primary name and aliases the
// short flag onto the same value, so -x and --long stay in sync.
func registerOption(fs *flag.FlagSet, o Option) {
	primary := o.flagName()
	switch o.Kind {
	case StringKind:
		fs.String(primary, asString(o.Default), o.Usage)
	case IntKind:
		fs.Int(primary, asInt(o.Default), o.Usage)
	case BoolKind:
		fs.Bool(primary, asBool(o.Default), o.Usage)
	default:
		fs.Bool(primary, false, o.Usage)
	}
	if o.Short != "" && o.Long != "" {
		f := fs.Lookup(primary)
		fs.Var(f.Value, o.Short, o.Usage)
	}
}

// overlay applies config-file pairs onto parsed options: keyed replace, last
// writer wins per key. A config value replaces a parsed value for the same
// identifier and introduces identifiers the specs never mentioned.
func (o Options) overlay(pairs []Pair) {
	for _, p := range pairs {
		o[p.Key] = p.Value
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
