package classify

import (
	"syscall"
	"testing"
)

type recordingObserver struct {
	opinions []string
	finals   []Outcome
}

func (r *recordingObserver) OnOpinion(name string, _ *Attempt, _ Outcome) {
	r.opinions = append(r.opinions, name)
}

func (r *recordingObserver) OnOutcome(_ *Attempt, out Outcome) {
	r.finals = append(r.finals, out)
}

func TestChain_Determinism(t *testing.T) {
	chain := NewDefaultRegistry().Freeze()
	att := &Attempt{StatusCode: 503}

	first := chain.Run(att)
	for i := 0; i < 50; i++ {
		if got := chain.Run(att); got != first {
			t.Fatalf("run %d: out=%+v want %+v", i, got, first)
		}
	}
}

func TestChain_HigherPriorityOverrides(t *testing.T) {
	p := DefaultPriority()
	lower := opinionated("lower", p, ServerError())
	higher := opinionated("higher", After(p), ClientError())

	r := NewRegistry()
	r.Add(higher)
	r.Add(lower)

	out := r.Freeze().Run(&Attempt{StatusCode: 500})
	if out != ClientError() {
		t.Fatalf("out=%+v want higher-priority client retry", out)
	}
}

func TestChain_VetoShortCircuits(t *testing.T) {
	p := DefaultPriority()
	invoked := false
	veto := opinionated("veto", p, Forbid())
	after := NewClassifier("after", After(p), func(*Attempt, Outcome) Outcome {
		invoked = true
		return ServerError()
	})

	r := NewRegistry()
	r.Add(after)
	r.Add(veto)

	out := r.Freeze().Run(&Attempt{StatusCode: 500})
	if !out.IsRetryForbidden() {
		t.Fatalf("out=%+v want retry forbidden", out)
	}
	if invoked {
		t.Fatalf("expected higher-priority classifier to be skipped after veto")
	}
}

func TestChain_AllAbstainYieldsNoOpinion(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		r.Add(opinionated("abstain", DefaultPriority(), Outcome{}))
	}
	out := r.Freeze().Run(&Attempt{StatusCode: 418})
	if !out.IsNoOpinion() {
		t.Fatalf("out=%+v want no opinion", out)
	}
}

func TestChain_AbstentionKeepsRunningResult(t *testing.T) {
	p := DefaultPriority()
	r := NewRegistry()
	r.Add(opinionated("opines", p, ThrottlingError()))
	r.Add(opinionated("abstains", After(p), Outcome{}))

	out := r.Freeze().Run(&Attempt{StatusCode: 429})
	if out != ThrottlingError() {
		t.Fatalf("out=%+v want throttling retry to survive abstention", out)
	}
}

func TestChain_PriorOutcomeVisible(t *testing.T) {
	p := DefaultPriority()
	var seen []Outcome
	r := NewRegistry()
	r.Add(opinionated("first", p, ServerError()))
	r.Add(NewClassifier("second", After(p), func(_ *Attempt, prior Outcome) Outcome {
		seen = append(seen, prior)
		return Outcome{}
	}))

	r.Freeze().Run(&Attempt{StatusCode: 500})
	if len(seen) != 1 || seen[0] != ServerError() {
		t.Fatalf("prior=%v want [server retry]", seen)
	}
}

func TestChain_Scenario_ServerStatusOnly(t *testing.T) {
	// 503 with no modeled error and no transport failure: only the status
	// code classifier opines.
	out := NewDefaultRegistry().Freeze().Run(&Attempt{StatusCode: 503})
	if out != ServerError() {
		t.Fatalf("out=%+v want server retry", out)
	}
}

func TestChain_Scenario_ConnectionReset(t *testing.T) {
	out := NewDefaultRegistry().Freeze().Run(&Attempt{ConnErr: syscall.ECONNRESET})
	if out != TransientError() {
		t.Fatalf("out=%+v want transient retry", out)
	}
}

func TestChain_Scenario_CustomVetoBeatsModeled(t *testing.T) {
	// A modeled-retryable error recommends a retry, but a custom
	// highest-priority classifier vetoes it. The veto wins unconditionally.
	r := NewDefaultRegistry()
	r.Add(NewClassifier("never-retry", After(TransientErrorClassifierPriority),
		func(*Attempt, Outcome) Outcome { return Forbid() }))

	att := &Attempt{
		StatusCode: 500,
		Err:        modeledError{category: CategoryServer, declared: true},
	}
	out := r.Freeze().Run(att)
	if !out.IsRetryForbidden() {
		t.Fatalf("out=%+v want retry forbidden", out)
	}
}

func TestChain_Scenario_VetoEvaluationOrder(t *testing.T) {
	// The veto sits at the highest priority, so every lower classifier is
	// evaluated before it; nothing runs after it.
	r := NewDefaultRegistry()
	r.Add(NewClassifier("never-retry", After(TransientErrorClassifierPriority),
		func(*Attempt, Outcome) Outcome { return Forbid() }))

	obs := &recordingObserver{}
	chain := r.Freeze(WithObserver(obs))
	chain.Run(&Attempt{StatusCode: 500})

	want := []string{"http-status-code", "service-error-code", "modeled-retryable", "transient-error", "never-retry"}
	if !sameNames(obs.opinions, want...) {
		t.Fatalf("opinions=%v want %v", obs.opinions, want)
	}
}

func TestChain_ObserverSeesFinalOutcome(t *testing.T) {
	obs := &recordingObserver{}
	chain := NewDefaultRegistry().Freeze(WithObserver(obs))

	out := chain.Run(&Attempt{StatusCode: 503})
	if len(obs.finals) != 1 || obs.finals[0] != out {
		t.Fatalf("finals=%v want [%+v]", obs.finals, out)
	}
}

func TestChain_NilAttempt(t *testing.T) {
	out := NewDefaultRegistry().Freeze().Run(nil)
	if !out.IsNoOpinion() {
		t.Fatalf("out=%+v want no opinion", out)
	}
}
