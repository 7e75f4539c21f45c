// Package server wraps http.Server with graceful shutdown, functional
// options, environment-driven configuration, and TCP, TLS, and unix socket
// listeners. It is the transport boundary of the framework: it accepts
// connections and hands parsed requests to an http.Handler, typically a
// router App.
package server
