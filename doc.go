// Package cmdtree is a small toolkit for building command-line tools around a
// declarative tree of subcommands. A host declares a [Script] once at startup:
// nested [Command] nodes, positional argument slots (including a trailing
// variadic capture), and per-command [Option] specs. The toolkit resolves an
// invocation against the tree, parses the remaining flags, applies an optional
// config-file overlay, and either runs the matched handler or prints targeted
// usage text.
//
// Resolution never fails hard: an invocation that is "almost right" is answered
// with usage for the deepest command reached. Only malformed options and
// unreadable config files are fatal.
package cmdtree
