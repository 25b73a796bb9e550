package frankfurter

import "fmt"

// HTTPError is returned when the API answers with a non-200 status. Message
// carries the error message from the response body when one was provided.
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("frankfurter: %s (status %d): %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("frankfurter: %s (status %d)", e.URL, e.StatusCode)
}

// apiError is the JSON error body returned by the API.
type apiError struct {
	Message string `json:"message"`
}
