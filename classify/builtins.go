package classify

import (
	"context"
	"errors"
)

// Priorities of the built-in classifiers, ascending. User classifiers
// position themselves relative to these with Before and After; the raw
// ordering key is never exposed.
var (
	HTTPStatusCodeClassifierPriority   = DefaultPriority()
	ServiceErrorCodeClassifierPriority = After(HTTPStatusCodeClassifierPriority)
	ModeledRetryableClassifierPriority = After(ServiceErrorCodeClassifierPriority)
	TransientErrorClassifierPriority   = After(ModeledRetryableClassifierPriority)
)

// Retryable is implemented by parsed service errors whose interface contract
// declares them retryable. The second return value reports whether the
// contract actually takes a position; false means "not specified", not
// "not retryable".
type Retryable interface {
	RetryableCategory() (ErrorCategory, bool)
}

// ErrorCoder is implemented by parsed service errors that carry a service
// error code, such as "ThrottlingException".
type ErrorCoder interface {
	ErrorCode() string
}

// Service error codes recognized by ServiceErrorCodeClassifier. Fixed:
// services with different vocabularies register their own classifier at
// After(ServiceErrorCodeClassifierPriority).
var (
	transientErrorCodes = map[string]struct{}{
		"RequestTimeout":          {},
		"RequestTimeoutException": {},
		"InternalError":           {},
	}

	throttlingErrorCodes = map[string]struct{}{
		"Throttling":           {},
		"ThrottlingException":  {},
		"ThrottledException":   {},
		"TooManyRequests":      {},
		"SlowDown":             {},
		"RequestLimitExceeded": {},
		"LimitExceeded":        {},
	}
)

// TransientErrorClassifier recommends a retry when the attempt failed at the
// transport layer: a timeout, an I/O error, or a connection-level error, all
// of which surface as Attempt.ConnErr with no response received.
//
// It runs at the highest built-in priority so that a transport failure wins
// over anything a response-inspecting classifier might have concluded from
// stale data.
type TransientErrorClassifier struct{}

func (TransientErrorClassifier) Classify(att *Attempt, _ Outcome) Outcome {
	err := att.ConnErr
	if err == nil {
		return Outcome{}
	}
	// A canceled attempt is normally never classified; abstain if it is.
	if errors.Is(err, context.Canceled) {
		return Outcome{}
	}
	return TransientError()
}

func (TransientErrorClassifier) Name() string { return "transient-error" }

func (TransientErrorClassifier) Priority() Priority { return TransientErrorClassifierPriority }

// ModeledRetryableClassifier recommends a retry when the parsed service error
// declares itself retryable through the Retryable interface, using the
// category the contract specifies. It abstains when there is no parsed error
// or the contract takes no position.
type ModeledRetryableClassifier struct{}

func (ModeledRetryableClassifier) Classify(att *Attempt, _ Outcome) Outcome {
	if att.Err == nil {
		return Outcome{}
	}
	var r Retryable
	if !errors.As(att.Err, &r) {
		return Outcome{}
	}
	category, ok := r.RetryableCategory()
	if !ok {
		return Outcome{}
	}
	return Retry(RetryableError{Category: category})
}

func (ModeledRetryableClassifier) Name() string { return "modeled-retryable" }

func (ModeledRetryableClassifier) Priority() Priority { return ModeledRetryableClassifierPriority }

// ServiceErrorCodeClassifier recommends a retry when the parsed error's
// service code is a known transient or throttling code, attaching any
// explicit delay the response headers mandate. It abstains when there is no
// parsed error, the error carries no code, or the code is unrecognized.
type ServiceErrorCodeClassifier struct{}

func (ServiceErrorCodeClassifier) Classify(att *Attempt, _ Outcome) Outcome {
	if att.Err == nil {
		return Outcome{}
	}
	var coded ErrorCoder
	if !errors.As(att.Err, &coded) {
		return Outcome{}
	}

	var category ErrorCategory
	code := coded.ErrorCode()
	if _, ok := throttlingErrorCodes[code]; ok {
		category = CategoryThrottling
	} else if _, ok := transientErrorCodes[code]; ok {
		category = CategoryTransient
	} else {
		return Outcome{}
	}

	if delay, ok := att.RetryAfter(); ok {
		return RetryWithDelay(category, delay)
	}
	return Retry(RetryableError{Category: category})
}

func (ServiceErrorCodeClassifier) Name() string { return "service-error-code" }

func (ServiceErrorCodeClassifier) Priority() Priority { return ServiceErrorCodeClassifierPriority }

// HTTPStatusCodeClassifier recommends a retry as a server error when the raw
// HTTP status is in its retryable set. The set is the one customization
// point exposed on a built-in classifier.
type HTTPStatusCodeClassifier struct {
	// Retryable overrides the default retryable status set
	// {500, 502, 503, 504}. Nil means the default; an empty non-nil set
	// never matches.
	Retryable map[int]struct{}
}

var defaultRetryableStatusCodes = map[int]struct{}{
	500: {},
	502: {},
	503: {},
	504: {},
}

func (c HTTPStatusCodeClassifier) Classify(att *Attempt, _ Outcome) Outcome {
	if !att.HasResponse() {
		return Outcome{}
	}
	set := c.Retryable
	if set == nil {
		set = defaultRetryableStatusCodes
	}
	if _, ok := set[att.StatusCode]; !ok {
		return Outcome{}
	}
	return ServerError()
}

func (HTTPStatusCodeClassifier) Name() string { return "http-status-code" }

func (HTTPStatusCodeClassifier) Priority() Priority { return HTTPStatusCodeClassifierPriority }
