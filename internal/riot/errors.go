package riot

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an upstream failure.
type ErrorKind int

const (
	// KindTransport means the request never produced an HTTP response.
	KindTransport ErrorKind = iota
	// KindNotFound maps upstream 404.
	KindNotFound
	// KindUnauthorized maps upstream 401/403 (bad or expired API key).
	KindUnauthorized
	// KindRateLimited maps upstream 429.
	KindRateLimited
	// KindUpstream covers every other non-2xx response.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "upstream"
	}
}

// APIError is a failed call to the Riot API. StatusCode and Body keep the
// original response for diagnostics; StatusCode is 0 for transport errors.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Kind == KindTransport {
		return fmt.Sprintf("riot api: transport error: %v", e.Err)
	}
	return fmt.Sprintf("riot api: %s (status %d): %s", e.Kind, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case 404:
		return KindNotFound
	case 401, 403:
		return KindUnauthorized
	case 429:
		return KindRateLimited
	default:
		return KindUpstream
	}
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func IsNotFound(err error) bool    { return IsKind(err, KindNotFound) }
func IsRateLimited(err error) bool { return IsKind(err, KindRateLimited) }
