package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: users, user, send [to], inbox, outbox, show [id], read [id], logout, help, exit"
)

// execIface is the command surface the REPL drives. App implements it;
// tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	User(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	Inbox(ctx context.Context, args []string) error
	Outbox(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
}

var errNotLoggedIn = errors.New("not logged in, use 'login' or 'register'")

// runREPL reads commands from reader until "exit", "quit" or end of input.
// The first word of a line names the command, the rest are its arguments.
// Commands that need an account are refused until the user logs in. Errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	commands := map[string]func(context.Context, []string) error{
		"users":  a.Users,
		"user":   a.User,
		"send":   a.Send,
		"inbox":  a.Inbox,
		"outbox": a.Outbox,
		"show":   a.Show,
		"read":   a.Read,
		"logout": a.Logout,
	}

	for {
		fmt.Fprintf(w, "mly %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx, args)

		case "login":
			cmdErr = a.Login(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fn, ok := commands[cmd]
			if !ok {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			if !a.isLoggedIn() {
				cmdErr = errNotLoggedIn
				break
			}
			cmdErr = fn(ctx, args)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
