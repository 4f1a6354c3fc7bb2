package classify

import "time"

// ErrorCategory tags the kind of failure a retry reason refers to.
type ErrorCategory int

const (
	CategoryTransient ErrorCategory = iota + 1
	CategoryThrottling
	CategoryServer
	CategoryClient
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryTransient:
		return "transient"
	case CategoryThrottling:
		return "throttling"
	case CategoryServer:
		return "server"
	case CategoryClient:
		return "client"
	default:
		return "unknown"
	}
}

// RetryReason records why a retry is warranted. It is an open set:
// RetryableError is the only kind today, and new kinds may be added without
// breaking existing classifiers, which should ignore kinds they do not
// recognize.
type RetryReason interface {
	retryReason()
}

// RetryableError reports that the attempt failed with an error of the given
// category. Delay, when non-zero, is a wait the failed party itself mandated
// (for example via a Retry-After header) and should be honored over any
// computed backoff.
type RetryableError struct {
	Category ErrorCategory
	Delay    time.Duration
}

func (RetryableError) retryReason() {}

// OutcomeKind is the state of a classification verdict.
type OutcomeKind int

const (
	// NoOpinion is the abstention: it leaves the running chain result
	// unchanged. It is the zero value.
	NoOpinion OutcomeKind = iota
	// RetryIndicated recommends a retry for the attached reason.
	RetryIndicated
	// RetryForbidden vetoes retrying. Once any classifier produces it,
	// chain evaluation stops.
	RetryForbidden
)

func (k OutcomeKind) String() string {
	switch k {
	case NoOpinion:
		return "no_opinion"
	case RetryIndicated:
		return "retry_indicated"
	case RetryForbidden:
		return "retry_forbidden"
	default:
		return "unknown"
	}
}

// Outcome is the verdict of one classifier, or the aggregate verdict of a
// chain. The zero value abstains. Equality is structural.
type Outcome struct {
	Kind OutcomeKind

	// Reason is set only when Kind is RetryIndicated.
	Reason RetryReason
}

// Retry returns an outcome recommending a retry for reason.
func Retry(reason RetryReason) Outcome {
	return Outcome{Kind: RetryIndicated, Reason: reason}
}

// Forbid returns the veto outcome.
func Forbid() Outcome { return Outcome{Kind: RetryForbidden} }

// TransientError recommends a retry for a transient failure.
func TransientError() Outcome {
	return Retry(RetryableError{Category: CategoryTransient})
}

// ThrottlingError recommends a retry for a throttling failure.
func ThrottlingError() Outcome {
	return Retry(RetryableError{Category: CategoryThrottling})
}

// ServerError recommends a retry for a server-side failure.
func ServerError() Outcome {
	return Retry(RetryableError{Category: CategoryServer})
}

// ClientError recommends a retry for a client-side failure.
func ClientError() Outcome {
	return Retry(RetryableError{Category: CategoryClient})
}

// RetryWithDelay recommends a retry for category with an explicit
// server-mandated delay.
func RetryWithDelay(category ErrorCategory, delay time.Duration) Outcome {
	return Retry(RetryableError{Category: category, Delay: delay})
}

// IsNoOpinion reports whether o abstains.
func (o Outcome) IsNoOpinion() bool { return o.Kind == NoOpinion }

// IsRetryIndicated reports whether o recommends a retry.
func (o Outcome) IsRetryIndicated() bool { return o.Kind == RetryIndicated }

// IsRetryForbidden reports whether o vetoes retrying.
func (o Outcome) IsRetryForbidden() bool { return o.Kind == RetryForbidden }
