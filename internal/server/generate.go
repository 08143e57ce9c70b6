// Package server provides the HTTP server for the speakerdir API.
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
//   - Server: lifecycle, graceful shutdown
//   - Config: listen address, static directory, cache TTL, timeouts
//   - Router: route registration and middleware chain
//   - Handlers: HTTP request handlers organized by concern
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 5000
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = srv.Run(ctx) // returns after ctx is cancelled and connections drain
package server

//go:generate gomarkdoc --output README.md .
