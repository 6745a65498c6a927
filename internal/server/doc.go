// Package server runs the site-vault HTTP server.
//
// It owns the listener lifecycle: plain HTTP or HTTPS depending on the TLS
// configuration, signal handling, and graceful shutdown.
package server
