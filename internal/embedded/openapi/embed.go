// Package openapi embeds the OpenAPI specification for the speakerdir HTTP API.
// The YAML document is the source; JSON is derived from it on first use.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-yaml"
)

// SpecYAML contains the OpenAPI specification in YAML format.
// Served at: GET /api/openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

var specJSON = sync.OnceValues(func() ([]byte, error) {
	return yaml.YAMLToJSON(SpecYAML)
})

// SpecJSON returns the OpenAPI specification converted to JSON.
// Served at: GET /api/openapi.json
func SpecJSON() ([]byte, error) {
	return specJSON()
}
