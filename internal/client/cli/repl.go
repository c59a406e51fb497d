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
	Login(ctx context.Context) error
	Send(ctx context.Context) error
	Unread(ctx context.Context) error
	List(ctx context.Context) error
	Peek(ctx context.Context) error
	Accounts(ctx context.Context) error
	DeleteMessage(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the gophtalk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gt> %s > ", statusFn()))
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
				printlnFn("Available commands: send, unread, (l)ist, peek, accounts, delmsg, delacct, exit")
			} else {
				printlnFn("Available commands: login, accounts, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "send":
			_ = a.Send(ctx)

		case "unread":
			_ = a.Unread(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "peek":
			_ = a.Peek(ctx)

		case "accounts":
			_ = a.Accounts(ctx)

		case "delmsg":
			_ = a.DeleteMessage(ctx)

		case "delacct":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
