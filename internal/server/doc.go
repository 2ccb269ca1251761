// Package server wires and runs the sync backend's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown.
package server
