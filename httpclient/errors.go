package httpclient

import "fmt"

// maxErrorBody caps how much of a response body is retained on a
// StatusError. Enough to see a JSON error payload without dragging a
// multi-megabyte HTML page into logs.
const maxErrorBody = 512

// StatusError reports a response that carried a non-2xx status code.
// It is returned by the JSON convenience methods and preserved as the
// retry error for retryable statuses, so callers can branch with
// errors.As.
type StatusError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Status is the full status line, e.g. "503 Service Unavailable".
	Status string

	// Body is an excerpt of the response body, capped at maxErrorBody
	// bytes.
	Body []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("httpclient: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("httpclient: unexpected status %d: %s", e.StatusCode, e.Body)
}

// newStatusError builds a StatusError from a completed response,
// truncating the body excerpt.
func newStatusError(resp *Response) *StatusError {
	body := resp.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}
}
