// Package server runs the bookshelf HTTP server.
//
// It covers startup, signal handling and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the listener stops accepting connections and in-flight
// requests get [shutdownTimeout] to finish.
package server
