package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ClearError(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the authkeep CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Signed out:  help, signup (register), login, exit | quit
// Signed in:   help, whoami, logout, clear, reset, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("authkeep> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, logout, clear, reset, exit")
			} else {
				printlnFn("Available commands: signup, login, clear, exit")
			}
		case "signup", "register":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "clear":
			_ = a.ClearError(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", cmd))
		}
	}
}
