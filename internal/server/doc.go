// Package server runs the message endpoint of the background process.
//
// It owns the HTTP listener lifecycle: binding at construction, serving,
// signal handling and graceful shutdown.
package server
