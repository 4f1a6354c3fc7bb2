package classify

// Priority orders classifiers relative to one another. A chain evaluates
// classifiers in ascending priority order, so the opinion of a
// higher-priority classifier overwrites that of a lower-priority one.
//
// Priorities are opaque: there is no numeric surface, and callers cannot
// depend on any particular encoding. New values are only ever constructed
// relative to existing ones with Before and After, starting from
// DefaultPriority.
type Priority struct {
	// path is an insertion key: comparison is lexicographic, with missing
	// elements reading as zero. Appending -1 or +1 yields a value strictly
	// between the original and its nearest existing neighbor, so relative
	// construction nests indefinitely.
	path []int8
}

// DefaultPriority returns the baseline priority shared by built-in
// classifiers unless they override it; see the priority values in
// builtins.go for their relative order.
func DefaultPriority() Priority { return Priority{} }

// Before returns a priority ordering strictly less than p.
// Before(Before(p)) orders strictly less than Before(p).
func Before(p Priority) Priority { return p.extend(-1) }

// After returns a priority ordering strictly greater than p.
// After(After(p)) orders strictly greater than After(p).
func After(p Priority) Priority { return p.extend(1) }

func (p Priority) extend(step int8) Priority {
	path := make([]int8, len(p.path)+1)
	copy(path, p.path)
	path[len(p.path)] = step
	return Priority{path: path}
}

// Compare returns -1, 0, or 1 as p orders before, equal to, or after q.
// The order is total and stable for the lifetime of the process.
func (p Priority) Compare(q Priority) int {
	n := len(p.path)
	if len(q.path) > n {
		n = len(q.path)
	}
	for i := 0; i < n; i++ {
		var pv, qv int8
		if i < len(p.path) {
			pv = p.path[i]
		}
		if i < len(q.path) {
			qv = q.path[i]
		}
		switch {
		case pv < qv:
			return -1
		case pv > qv:
			return 1
		}
	}
	return 0
}

// Equal reports whether p and q occupy the same position in the order.
// Equal priorities are legal; ties are broken by registration order.
func (p Priority) Equal(q Priority) bool { return p.Compare(q) == 0 }
