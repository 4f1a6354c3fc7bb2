package classify

// Classifier renders a retry opinion for one completed attempt. Built-in and
// user-supplied rules implement the same interface and run through the same
// chain; nothing special-cases the built-ins.
//
// Classify must be side-effect free and must not block. It cannot fail: a
// classifier that cannot decide (for example, one that needs a parsed
// response when parsing failed) abstains by returning the zero Outcome.
type Classifier interface {
	// Classify inspects att and returns an opinion. prior is the aggregate
	// outcome of the classifiers already evaluated in this run, lower
	// priorities first; a classifier may consult it to decide whether it has
	// anything to add, but need not.
	Classify(att *Attempt, prior Outcome) Outcome

	// Name is a stable identifier used in diagnostics only. It plays no part
	// in ordering or equality.
	Name() string

	// Priority positions the classifier in the chain.
	Priority() Priority
}

type funcClassifier struct {
	name     string
	priority Priority
	fn       func(att *Attempt, prior Outcome) Outcome
}

// NewClassifier adapts fn into a Classifier with the given diagnostic name
// and priority. A nil fn always abstains.
func NewClassifier(name string, priority Priority, fn func(att *Attempt, prior Outcome) Outcome) Classifier {
	return funcClassifier{name: name, priority: priority, fn: fn}
}

func (c funcClassifier) Classify(att *Attempt, prior Outcome) Outcome {
	if c.fn == nil {
		return Outcome{}
	}
	return c.fn(att, prior)
}

func (c funcClassifier) Name() string { return c.name }

func (c funcClassifier) Priority() Priority { return c.priority }
