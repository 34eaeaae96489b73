package riot

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrorBody bounds how much of an upstream body goes into an error message.
const maxErrorBody = 200

// StatusError is a non-200 upstream reply. Body is kept verbatim so callers can
// relay it.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("riot API error %d: %s", e.StatusCode, string(body))
}

// AsStatusError unwraps err to a *StatusError when there is one.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	statusErr, ok := AsStatusError(err)
	return ok && statusErr.StatusCode == http.StatusNotFound
}
