// Package server owns the process lifecycle of the console: the HTTP and gRPC
// listeners, the session janitor and graceful shutdown on a stop signal.
package server
