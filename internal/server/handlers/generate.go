// Package handlers provides HTTP request handlers for the speakerdir API.
//
// Handlers are organized by concern:
//
//   - speakers.go: search and list-all
//   - debug.go: hook statistics, raw rows and the schema probe
//   - static.go: the bundled frontend
//   - health.go: liveness check
//   - openapi.go: OpenAPI specification endpoints
//
// Data handlers follow the same pattern:
//
//  1. Decode input
//  2. Check cache (list and search only)
//  3. Open a read-only store, query, close it
//  4. Write the envelope
//
// Handlers receive their dependencies through the Handlers struct.
package handlers

//go:generate gomarkdoc --output README.md .
