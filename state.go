package cmdtree

import "io"

// State is the context handed to a leaf handler: the positional bindings from
// the resolve, the parsed (and possibly config-overlaid) options, and the
// standard streams the script was configured with.
type State struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	bindings Bindings
	options  Options
}

// Arg returns the token bound to a named argument slot.
func (s *State) Arg(name string) (string, bool) {
	return s.bindings.Arg(name)
}

// Variadic returns the tokens captured by the variadic slot, if the command
// declared one.
func (s *State) Variadic() ([]string, bool) {
	return s.bindings.Variadic()
}

// Option returns the raw parsed value for an option identifier.
func (s *State) Option(name string) (any, bool) {
	v, ok := s.options[name]
	return v, ok
}

// GetOption retrieves an option value by identifier with type inference,
// returning fallback when the option is absent or the config overlay supplied
// a value of a different type. Example usage:
//
//	verbose := cmdtree.GetOption(s, "verbose", false)
//	output := cmdtree.GetOption(s, "output", "plain")
func GetOption[T any](s *State, name string, fallback T) T {
	if v, ok := s.options[name]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return fallback
}
