package classify

import "sort"

// Observer receives classification events. Implementations must not mutate
// the attempt or the outcomes; observation never influences the verdict.
// The observe and metrics packages provide implementations.
type Observer interface {
	// OnOpinion is called once per evaluated classifier with its raw
	// opinion, including abstentions.
	OnOpinion(name string, att *Attempt, out Outcome)

	// OnOutcome is called once per run with the final aggregate outcome.
	OnOutcome(att *Attempt, out Outcome)
}

// Chain is the frozen, priority-ordered classifier sequence evaluated after
// each attempt. It is immutable and safe for concurrent use: evaluating the
// same attempt against the same chain always yields the same outcome.
type Chain struct {
	classifiers []Classifier
	observer    Observer
}

// ChainOption configures a Chain at freeze time.
type ChainOption func(*Chain)

// WithObserver attaches an observer to the chain.
func WithObserver(o Observer) ChainOption {
	return func(c *Chain) {
		c.observer = o
	}
}

// NewChain builds a chain from classifiers, stable-sorting them into
// ascending priority order. The input slice is copied. Most callers reach
// this through Registry.Freeze.
func NewChain(classifiers []Classifier, opts ...ChainOption) *Chain {
	c := &Chain{}
	if len(classifiers) > 0 {
		c.classifiers = make([]Classifier, 0, len(classifiers))
		for _, cl := range classifiers {
			if cl != nil {
				c.classifiers = append(c.classifiers, cl)
			}
		}
		sort.SliceStable(c.classifiers, func(i, j int) bool {
			return c.classifiers[i].Priority().Compare(c.classifiers[j].Priority()) < 0
		})
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classifiers returns the chain's classifiers in evaluation order.
func (c *Chain) Classifiers() []Classifier {
	seq := make([]Classifier, len(c.classifiers))
	copy(seq, c.classifiers)
	return seq
}

// Run classifies one attempt.
//
// Classifiers run in ascending priority order; each non-abstaining opinion
// overwrites the running result, so the highest-priority opinion wins. A
// RetryForbidden result is absolute: it stops evaluation immediately, before
// any remaining (higher-priority) classifier is invoked. If every classifier
// abstains, the result is NoOpinion, which the consuming retry strategy must
// treat as "do not retry".
func (c *Chain) Run(att *Attempt) Outcome {
	if att == nil {
		att = &Attempt{}
	}
	var result Outcome
	for _, cl := range c.classifiers {
		out := cl.Classify(att, result)
		if c.observer != nil {
			c.observer.OnOpinion(cl.Name(), att, out)
		}
		if out.IsNoOpinion() {
			continue
		}
		result = out
		if result.IsRetryForbidden() {
			break
		}
	}
	if c.observer != nil {
		c.observer.OnOutcome(att, result)
	}
	return result
}
