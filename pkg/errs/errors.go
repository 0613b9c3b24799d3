package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports missing or unusable credentials. It is fatal
// for the whole run and callers render it as setup instructions rather
// than a bare error string.
type ConfigurationError struct {
	Missing []string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("configuration error: missing %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// TransportError wraps a network failure or a non-2xx response from an
// upstream endpoint. The run is aborted, no retry.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s returned status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NoResultError means the endpoint answered but had no usable record for
// the keyword (volume too low, or a typo).
type NoResultError struct {
	Keyword string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf("no result for keyword %q", e.Keyword)
}

func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsNoResult(err error) bool {
	var ne *NoResultError
	return errors.As(err, &ne)
}
