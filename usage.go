package cmdtree

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/nightvein/cmdtree/pkg/textutil"
)

const (
	// fallbackWidth is used when the terminal width cannot be determined.
	fallbackWidth = 75
	// minUsableWidth guards against absurd reported widths.
	minUsableWidth = 30
)

// terminalWidth asks the terminal at render time, falling back to the COLUMNS
// environment variable and finally to a fixed width.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w >= minUsableWidth {
		return w
	}
	if s := os.Getenv("COLUMNS"); s != "" {
		if w, err := strconv.Atoi(s); err == nil && w >= minUsableWidth {
			return w
		}
	}
	return fallbackWidth
}

// writeUsage renders the usage block for a node. cmd is the resolved or
// partially resolved command; nil means top level. path holds the collection
// names already traversed (including cmd itself when cmd is a collection).
func (s *Script) writeUsage(w io.Writer, path []string, cmd *Command) {
	segs := append([]string{s.Name}, path...)

	var opts []Option
	var subs []*Command
	switch {
	case cmd != nil && cmd.isLeaf():
		segs = append(segs, cmd.Name)
		for _, slot := range cmd.Args {
			if slot == Variadic {
				segs = append(segs, "[...]")
			} else {
				segs = append(segs, "<"+slot+">")
			}
		}
		opts = append([]Option{helpOption}, cmd.Options...)
	case cmd != nil:
		opts = []Option{helpOption}
		subs = cmd.SubCommands
	default:
		opts = []Option{helpOption, versionOption}
		subs = s.Commands
	}

	fmt.Fprintf(w, "Usage: %s [options]\n\n", strings.Join(segs, " "))
	writeOptionTable(w, opts, s.lineWidth())
	fmt.Fprint(w, "\n")

	if len(subs) > 0 {
		fmt.Fprint(w, "Available subcommands: \n\n")
		for _, sub := range subs {
			fmt.Fprintf(w, "  %s\n", sub.Name)
		}
		fmt.Fprint(w, "\n")
		fmt.Fprintf(w, "For help on any individual command run `%s COMMAND -h`\n", s.Name)
	}
}

// flagColumnWidth is the width of the left usage column: the maximum flag-text
// length across the specs. Help text never influences it.
func flagColumnWidth(opts []Option) int {
	width := 0
	for _, o := range opts {
		if n := len(o.flagText()); n > width {
			width = n
		}
	}
	return width
}

// writeOptionTable renders the two-column option table. When the flag column
// fits in less than half the line width, help text is aligned after the widest
// flag and wrapped so continuation lines line up under it. Otherwise each flag
// gets its own line with the help text indented below.
func writeOptionTable(w io.Writer, opts []Option, lineWidth int) {
	flagWidth := flagColumnWidth(opts)
	aligned := flagWidth < lineWidth/2

	for _, o := range opts {
		help := o.Usage
		if o.Default != nil {
			help += fmt.Sprintf(" [default: %v]", o.Default)
		}
		if !aligned {
			fmt.Fprintf(w, "  %s\n", o.flagText())
			for _, line := range textutil.Wrap(help, lineWidth-6) {
				fmt.Fprintf(w, "      %s\n", line)
			}
			continue
		}
		lines := textutil.Wrap(help, lineWidth-flagWidth-4)
		if len(lines) == 0 {
			lines = []string{""}
		}
		fmt.Fprintf(w, "  %-*s%s\n", flagWidth+2, o.flagText(), lines[0])
		indent := strings.Repeat(" ", flagWidth+4)
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", indent, line)
		}
	}
}
