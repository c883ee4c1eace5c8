package api

import "fmt"

// NetworkErrorMessage is the caller-facing text for transport failures
const NetworkErrorMessage = "Network error or unknown error"

// Error is the normalized failure of an API call. Status carries the HTTP
// status code unmodified for caller-level branching; Status 0 means no
// response was received at all.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: network error: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("api: server returned status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// IsNetwork returns true when no response was received
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

// errorBody matches the message field of the server's error payloads.
// Some endpoints use "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Err
}
