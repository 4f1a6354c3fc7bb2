package classify

import "sort"

// Registry is the ordered collection of classifiers owned by one
// configuration layer (service-level, operation-level). It is a builder-time
// object: a single goroutine assembles it, then Freeze produces the
// immutable Chain that concurrent calls evaluate. Iteration order is always
// ascending priority, with registration order breaking ties.
type Registry struct {
	entries  []Classifier
	replaced bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// NewDefaultRegistry returns a registry holding the four built-in
// classifiers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Add(HTTPStatusCodeClassifier{})
	r.Add(ServiceErrorCodeClassifier{})
	r.Add(ModeledRetryableClassifier{})
	r.Add(TransientErrorClassifier{})
	return r
}

// Add appends c to the registry. Nil classifiers are ignored.
func (r *Registry) Add(c Classifier) {
	if r == nil || c == nil {
		return
	}
	r.entries = append(r.entries, c)
}

// ReplaceAll discards the current contents and installs cs. A registry that
// has been replaced supersedes lower layers entirely when merged.
func (r *Registry) ReplaceAll(cs ...Classifier) {
	if r == nil {
		return
	}
	r.entries = r.entries[:0]
	r.replaced = true
	for _, c := range cs {
		r.Add(c)
	}
}

// Merge layers overlay on top of r and returns the combined registry,
// leaving both inputs untouched. If overlay performed ReplaceAll, its
// contents supersede r entirely; otherwise overlay's classifiers are
// appended after r's, so ties in priority resolve lower-layer-first.
func (r *Registry) Merge(overlay *Registry) *Registry {
	merged := &Registry{}
	if overlay != nil && overlay.replaced {
		merged.entries = append(merged.entries, overlay.entries...)
		merged.replaced = true
		return merged
	}
	if r != nil {
		merged.entries = append(merged.entries, r.entries...)
		merged.replaced = r.replaced
	}
	if overlay != nil {
		merged.entries = append(merged.entries, overlay.entries...)
	}
	return merged
}

// EffectiveSequence returns the current classifiers in ascending priority
// order. The sort is stable: classifiers of equal priority keep the relative
// order in which they were registered. The returned slice is a copy.
func (r *Registry) EffectiveSequence() []Classifier {
	if r == nil || len(r.entries) == 0 {
		return nil
	}
	seq := make([]Classifier, len(r.entries))
	copy(seq, r.entries)
	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].Priority().Compare(seq[j].Priority()) < 0
	})
	return seq
}

// Freeze snapshots the registry into an immutable Chain. Later mutations of
// the registry do not affect chains already frozen; re-freeze after adding a
// classifier to obtain an updated chain.
func (r *Registry) Freeze(opts ...ChainOption) *Chain {
	return NewChain(r.EffectiveSequence(), opts...)
}
