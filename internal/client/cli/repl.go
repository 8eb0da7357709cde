package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// handler runs one command with the words that followed it.
type handler func(ctx context.Context, args []string) error

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	command(name string) (handler, bool)
	usage() string
}

// runREPL starts a simple read–eval–print loop for the Mimamsa CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and looks it up in the command set of the current state.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mimamsa %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			printlnFn(a.usage())

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			h, ok := a.command(cmd)
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = h(ctx, parts[1:])
		}
	}
}
