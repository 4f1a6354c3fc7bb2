package classify

import (
	"testing"
	"time"
)

func TestOutcome_ZeroValueAbstains(t *testing.T) {
	var o Outcome
	if !o.IsNoOpinion() {
		t.Fatalf("zero outcome: kind=%v want %v", o.Kind, NoOpinion)
	}
	if o.Reason != nil {
		t.Fatalf("zero outcome: reason=%v want nil", o.Reason)
	}
}

func TestOutcome_Constructors(t *testing.T) {
	cases := []struct {
		name     string
		out      Outcome
		category ErrorCategory
	}{
		{"transient", TransientError(), CategoryTransient},
		{"throttling", ThrottlingError(), CategoryThrottling},
		{"server", ServerError(), CategoryServer},
		{"client", ClientError(), CategoryClient},
	}
	for _, tc := range cases {
		if tc.out.Kind != RetryIndicated {
			t.Fatalf("%s: kind=%v want %v", tc.name, tc.out.Kind, RetryIndicated)
		}
		reason, ok := tc.out.Reason.(RetryableError)
		if !ok {
			t.Fatalf("%s: reason=%T want RetryableError", tc.name, tc.out.Reason)
		}
		if reason.Category != tc.category {
			t.Fatalf("%s: category=%v want %v", tc.name, reason.Category, tc.category)
		}
		if reason.Delay != 0 {
			t.Fatalf("%s: delay=%v want 0", tc.name, reason.Delay)
		}
	}
}

func TestOutcome_RetryWithDelay(t *testing.T) {
	out := RetryWithDelay(CategoryThrottling, 3*time.Second)
	reason, ok := out.Reason.(RetryableError)
	if !ok {
		t.Fatalf("reason=%T want RetryableError", out.Reason)
	}
	if reason.Delay != 3*time.Second {
		t.Fatalf("delay=%v want 3s", reason.Delay)
	}
}

func TestOutcome_Forbid(t *testing.T) {
	out := Forbid()
	if !out.IsRetryForbidden() {
		t.Fatalf("kind=%v want %v", out.Kind, RetryForbidden)
	}
	if out.Reason != nil {
		t.Fatalf("reason=%v want nil", out.Reason)
	}
}

func TestOutcome_StructuralEquality(t *testing.T) {
	if TransientError() != TransientError() {
		t.Fatalf("expected identical transient outcomes to compare equal")
	}
	if TransientError() == ThrottlingError() {
		t.Fatalf("expected different categories to compare unequal")
	}
	if RetryWithDelay(CategoryThrottling, time.Second) == ThrottlingError() {
		t.Fatalf("expected delay to participate in equality")
	}
	if Forbid() != Forbid() {
		t.Fatalf("expected forbid outcomes to compare equal")
	}
}

func TestErrorCategory_String(t *testing.T) {
	cases := map[ErrorCategory]string{
		CategoryTransient:  "transient",
		CategoryThrottling: "throttling",
		CategoryServer:     "server",
		CategoryClient:     "client",
		ErrorCategory(0):   "unknown",
	}
	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Fatalf("String(%d)=%q want %q", cat, got, want)
		}
	}
}
