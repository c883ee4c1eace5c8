package service

import (
	"errors"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
)

// Void marks operations whose success carries no payload
type Void struct{}

// Result is the uniform outcome of every service call: Success with Data
// on HTTP 2xx, otherwise the HTTP status (0 for transport failures) and a
// user-facing message.
type Result[T any] struct {
	Success bool
	Status  int
	Message string
	Data    T
}

func succeed[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// fail maps a client error into a Result. The server-supplied message
// wins when present, otherwise the operation's fallback text; anything
// that is not an api.Error counts as a transport failure.
func fail[T any](err error, fallback string) Result[T] {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		if apiErr.IsNetwork() {
			message = api.NetworkErrorMessage
		}
		return Result[T]{Status: apiErr.Status, Message: message}
	}
	return Result[T]{Status: 0, Message: api.NetworkErrorMessage}
}
