package indexer

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response of the indexer. Message is the server
// supplied "error" field when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("indexer: status %d: %s", e.Status, e.Message)
}

func newHTTPError(status int, body []byte) *HTTPError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Error
		if msg == "" {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &HTTPError{Status: status, Message: msg}
}
