// Package client talks to the Messagely backend over gRPC.
//
// # Overview
//
// Client is the contract the CLI uses. GRPCClient implements it: it keeps
// the access and refresh tokens from the last Register or Login, attaches
// the access token to every protected call through an interceptor, and when
// the server reports an expired access token it refreshes once and retries
// the call.
//
// # Error Handling
//
// gRPC status codes are mapped to the sentinel errors in errors.go so
// callers can match them with errors.Is. Validation failures keep the
// server's message.
package client
