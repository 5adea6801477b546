package cmdtree

import "fmt"

// ParseError wraps an option-parsing failure from the flag delegate. It is
// fatal: the dispatcher reports it and exits with status 1.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid options: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports a config file that exists but could not be loaded. It is
// fatal: the dispatcher reports the path and cause and exits with status 1.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
