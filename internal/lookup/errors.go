package lookup

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EmptyQueryMessage      = "Please enter a part number to search"
	GenericErrorMessage    = "An error occurred during search. Please try again."
	InvalidResponseMessage = "Received an invalid response from the server. Please try again."
)

// ErrEmptyQuery is returned for blank input. It never reaches the network.
var ErrEmptyQuery = errors.New("part number is empty")

// HTTPError is a non-2xx search response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("search failed with status %d: %s", e.StatusCode, e.Message)
}

// NetworkError covers requests that could not complete and bodies that could
// not be decoded. Message, when set, is what the user sees instead of Err.
type NetworkError struct {
	Err     error
	Message string
}

func (e *NetworkError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("search request failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("search request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage maps err to the single line shown in the error panel.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyQuery) {
		return EmptyQueryMessage
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if strings.TrimSpace(httpErr.Message) != "" {
			return httpErr.Message
		}
		return GenericErrorMessage
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		if netErr.Message != "" {
			return netErr.Message
		}
		if netErr.Err != nil && netErr.Err.Error() != "" {
			return netErr.Err.Error()
		}
		return GenericErrorMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
