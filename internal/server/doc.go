// Package server wires and runs the application's transport servers.
//
// It owns the lifecycle of the HTTP API, the gRPC health endpoint and the
// background workers: startup, signal handling and graceful shutdown of
// everything that was enabled.
package server
