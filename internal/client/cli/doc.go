// Package cli provides the interactive Messagely command-line client.
//
// App wires configuration and the gRPC client into a REPL. After login the
// user can list accounts, send messages, read the inbox and outbox, open a
// single message and mark incoming messages as read.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command list.
package cli
