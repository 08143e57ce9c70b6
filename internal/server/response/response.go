// Package response provides the JSON envelopes written by the speakerdir API.
// Successful list responses carry success, data and count; failures carry
// success=false, a message and an error kind code.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/speakerdir/pkg/errors"
)

// CodeMethodNotAllowed is the code written for requests with an unsupported method.
const CodeMethodNotAllowed = "method_not_allowed"

// List is the envelope for speaker collections.
type List struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

// Failure is the envelope for every error response.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent (best effort)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with 200 status.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Items writes a successful list envelope with 200 status.
func Items(w http.ResponseWriter, data any, count int) {
	OK(w, List{Success: true, Data: data, Count: count})
}

// Fail writes a failure envelope.
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, Failure{Success: false, Error: message, Code: code})
}

// Error classifies err and writes the matching failure envelope.
func Error(w http.ResponseWriter, err error) {
	kind := errors.KindOf(err)
	Fail(w, StatusFor(kind), string(kind), err.Error())
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MethodNotAllowed writes a 405 failure envelope.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	Fail(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed,
		"method "+method+" is not supported for this endpoint")
}

// InternalError writes a 500 failure envelope without exposing err to the client.
func InternalError(w http.ResponseWriter, _ error) {
	Fail(w, http.StatusInternalServerError, string(errors.KindQuery), "internal server error")
}
