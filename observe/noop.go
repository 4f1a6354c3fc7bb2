package observe

import "github.com/aponysus/verdict/classify"

// NoopObserver implements classify.Observer with no-op methods.
//
// Users can embed NoopObserver to implement only the callbacks they need.
type NoopObserver struct{}

func (NoopObserver) OnOpinion(string, *classify.Attempt, classify.Outcome) {}
func (NoopObserver) OnOutcome(*classify.Attempt, classify.Outcome)        {}
