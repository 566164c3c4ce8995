package commerce

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnauthorized marks a 401 from the upstream API after the one-shot
// refresh has already been attempted (or was not possible).
var ErrUnauthorized = errors.New("commerce: unauthorized")

// APIError is a non-2xx upstream response reduced to a human-readable
// message suitable for direct display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce: upstream returned %d: %s", e.StatusCode, e.Message)
}

const genericErrorMessage = "Something went wrong. Please try again."

// extractMessage digs a display message out of an upstream error body. The
// API nests it under error.message on validation failures and uses a flat
// message field elsewhere.
func extractMessage(body []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &nested); err == nil {
		if nested.Error.Message != "" {
			return nested.Error.Message
		}
		if nested.Message != "" {
			return nested.Message
		}
	}
	return genericErrorMessage
}

// Message returns the user-facing message for any error coming out of this
// package, falling back to a generic one for transport failures.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return genericErrorMessage
}
