package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

// command is one REPL verb. Arguments are the whitespace-separated words
// after the verb.
type command struct {
	name    string
	usage   string
	minArgs int
	// auth marks commands that act as the logged-in user.
	auth bool
	run  func(ctx context.Context, args []string) error
}

// execIface is the surface the REPL needs; App satisfies it and tests can
// provide a stub.
type execIface interface {
	isLoggedIn() bool
	commands() []command
}

func helpText(cmds []command, loggedIn bool) string {
	var names []string
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		names = append(names, c.name)
	}
	sort.Strings(names)
	return "Available commands: " + strings.Join(names, ", ") + ", help [command], exit"
}

// runREPL reads one command per line and dispatches it until EOF, "exit" or
// "quit". Command errors are printed and the loop continues. Commands that
// prompt read from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := a.commands()
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for {
		printlnFn(fmt.Sprintf("ds %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if len(args) > 0 {
				if c, ok := byName[args[0]]; ok {
					printlnFn("Usage:", c.usage)
					continue
				}
			}
			printlnFn(helpText(cmds, a.isLoggedIn()))
			continue
		}

		c, ok := byName[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if c.auth && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}
		if len(args) < c.minArgs {
			printlnFn("Usage:", c.usage)
			continue
		}
		if err := c.run(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				printlnFn("Usage:", c.usage)
				continue
			}
			printlnFn("Error:", err)
		}
	}
}
