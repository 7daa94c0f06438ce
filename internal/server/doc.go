// Package server wires and runs the application's HTTP servers.
//
// It provides orchestration for server lifecycles, including startup,
// background workers such as config reloaders, signal handling, and graceful
// shutdown of all enabled listeners.
package server
