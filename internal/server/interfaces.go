package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// transport is a single listener managed by [server].
type transport interface {
	Server

	// listen binds the listening socket. Calling it before RunServer lets
	// address errors surface synchronously.
	listen() error
	name() string
}
