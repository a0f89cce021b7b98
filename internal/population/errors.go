package population

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Kind classifies why a population query failed
type Kind int

const (
	KindUnavailable Kind = iota
	KindEmptyResponse
	KindMalformed
	KindAuth
)

// String returns a short label used in logs
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformed:
		return "malformed"
	case KindAuth:
		return "auth"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

const (
	msgUnavailable = "Failed to retrieve population data due to a network or API error. Please try again."
	msgEmpty       = "The API returned an empty response. Please try again."
	msgMalformed   = "The API returned data in an unexpected format. Please try again."
	msgAuth        = "The API key is invalid or missing. Please ensure it is configured correctly in your environment."
)

// Sentinels for errors.Is; every QueryError matches the sentinel of its kind.
var (
	ErrUnavailable   = errors.New("population query failed")
	ErrEmptyResponse = errors.New("API returned an empty response")
	ErrMalformed     = errors.New("API returned a malformed response")
	ErrInvalidAPIKey = errors.New("API key is invalid or missing")
)

// QueryError is returned by FetchPopulationInfo for every failure
type QueryError struct {
	Kind Kind
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *QueryError) Is(target error) bool {
	return target == e.sentinel()
}

// Message is the text shown to the user next to the retry button
func (e *QueryError) Message() string {
	switch e.Kind {
	case KindEmptyResponse:
		return msgEmpty
	case KindMalformed:
		return msgMalformed
	case KindAuth:
		return msgAuth
	default:
		return msgUnavailable
	}
}

func (e *QueryError) sentinel() error {
	switch e.Kind {
	case KindEmptyResponse:
		return ErrEmptyResponse
	case KindMalformed:
		return ErrMalformed
	case KindAuth:
		return ErrInvalidAPIKey
	default:
		return ErrUnavailable
	}
}

// UserMessage reduces any error to the text the dashboard displays
func UserMessage(err error) string {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Message()
	}
	return msgUnavailable
}

// Substrings the Gemini API uses for credential problems
var authErrorMarkers = []string{
	"API key not valid",
	"API Key must be set",
	"Requested entity was not found",
}

// classifyTransportError maps an error from the model call to auth or unavailable
func classifyTransportError(err error) *QueryError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return &QueryError{Kind: KindAuth, Err: err}
	}

	msg := err.Error()
	for _, marker := range authErrorMarkers {
		if strings.Contains(msg, marker) {
			return &QueryError{Kind: KindAuth, Err: err}
		}
	}

	return &QueryError{Kind: KindUnavailable, Err: err}
}
