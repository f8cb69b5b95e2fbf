package app

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a REPL command.
type CommandKind int

const (
	CommandStart CommandKind = iota
	CommandQuit
	CommandHelp
)

// Command is one parsed line of REPL input.
type Command struct {
	Kind CommandKind

	// Words is the word count for CommandStart. Zero means the configured
	// default.
	Words int
}

// Listed in help order.
var commands = []struct {
	name   string
	kind   CommandKind
	usage  string
	detail string
}{
	{"start", CommandStart, "start [<word_count>]", "Start a new solo game with <word_count> words."},
	{"quit", CommandQuit, "quit", "Quit TermRacer."},
	{"help", CommandHelp, "help", "Print this help text."},
}

// HelpText lists every command with its description.
func HelpText() string {
	var b strings.Builder
	for i, c := range commands {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n\t%s", c.usage, c.detail)
	}
	return b.String()
}

// Parse reads one REPL line. Extra arguments after a complete command are
// ignored.
func Parse(line string) (Command, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return Command{}, ErrUnknownCommand
	}

	for _, c := range commands {
		if args[0] != c.name {
			continue
		}
		cmd := Command{Kind: c.kind}
		if c.kind == CommandStart && len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return Command{}, fmt.Errorf("%w: %q", ErrInvalidWordCount, args[1])
			}
			cmd.Words = n
		}
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
}
