package classify

import (
	"net/http"
	"strconv"
	"time"
)

// Response headers consulted for an explicit server-mandated delay.
// HTTP-date forms of Retry-After are ignored: honoring them would require a
// clock, and classification is a pure function of the attempt.
const (
	retryAfterHeader   = "Retry-After"
	retryAfterMsHeader = "Retry-After-Ms"
)

// Attempt is the record of one completed request attempt, assembled by the
// orchestrator and handed to the classifier chain. Classifiers only read it;
// it must not be mutated once classification starts.
//
// A transport-level failure (no response received at all) is represented by
// StatusCode 0 and a non-nil ConnErr.
type Attempt struct {
	// StatusCode is the raw HTTP status, or 0 when no response was received.
	StatusCode int

	// Header holds the raw response headers, nil without a response.
	Header http.Header

	// Output is the parsed output when deserialization succeeded.
	Output any

	// Err is the parsed service error when the response decoded to one.
	Err error

	// ConnErr is the transport or connection-level failure when no response
	// was received.
	ConnErr error
}

// HasResponse reports whether any HTTP response was received.
func (a *Attempt) HasResponse() bool { return a.StatusCode != 0 }

// HasOutput reports whether deserialization produced an output.
func (a *Attempt) HasOutput() bool { return a.Output != nil }

// RetryAfter returns the server-mandated delay carried in the response
// headers, if any. Only delta forms are honored: Retry-After in whole
// seconds, or the millisecond variant, which wins when both are present.
func (a *Attempt) RetryAfter() (time.Duration, bool) {
	if a.Header == nil {
		return 0, false
	}
	if v := a.Header.Get(retryAfterMsHeader); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond, true
		}
	}
	if v := a.Header.Get(retryAfterHeader); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second, true
		}
	}
	return 0, false
}
