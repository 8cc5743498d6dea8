// Package response renders JSON bodies for the HTTP handlers. Every error body
// has the shape {"error": "..."}.
package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RenderInternalError hides the cause; handlers log it before rendering.
func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

// RenderError renders msg with the given status.
func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func RenderNoContent(rw http.ResponseWriter) {
	rw.WriteHeader(http.StatusNoContent)
}

// Render writes res as JSON with status. If res cannot be encoded the client
// gets a bare 500 instead.
func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
