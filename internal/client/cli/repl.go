package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL dispatches to. App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Shorten(ctx context.Context) error
	Delete(ctx context.Context) error
	Open(ctx context.Context, code string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. The loop exits on scanner EOF or "exit"/"quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help            show available commands
//	  - register        create an account
//	  - login           authenticate
//	  - open <code>     resolve a short code
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - help            show available commands
//	  - (l)ist          list your links
//	  - shorten         create a short link
//	  - delete          delete a link by id
//	  - open <code>     resolve a short code
//	  - logout          log out
//	  - exit | quit     leave the program
//
// Handler errors are ignored here; handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sl> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, shorten, delete, open <code>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, open <code>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "shorten":
			_ = a.Shorten(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <code>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
