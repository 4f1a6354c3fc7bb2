package observe

import (
	"log/slog"

	"github.com/aponysus/verdict/classify"
)

// MultiObserver fans out classification events to multiple observers.
type MultiObserver struct {
	Observers []classify.Observer
}

func (m MultiObserver) OnOpinion(name string, att *classify.Attempt, out classify.Outcome) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnOpinion(name, att, out)
		}
	}
}

func (m MultiObserver) OnOutcome(att *classify.Attempt, out classify.Outcome) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnOutcome(att, out)
		}
	}
}

// LogObserver logs final classification outcomes through slog, one Info line
// per run. Opinions of individual classifiers are logged at Debug level when
// Opinions is set.
type LogObserver struct {
	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// Opinions additionally logs every individual classifier opinion,
	// including abstentions.
	Opinions bool
}

func (l LogObserver) OnOpinion(name string, att *classify.Attempt, out classify.Outcome) {
	if !l.Opinions {
		return
	}
	args := append([]any{slog.String("classifier", name)}, outcomeArgs(att, out)...)
	l.logger().Debug("classifier opinion", args...)
}

func (l LogObserver) OnOutcome(att *classify.Attempt, out classify.Outcome) {
	l.logger().Info("attempt classified", outcomeArgs(att, out)...)
}

func (l LogObserver) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func outcomeArgs(att *classify.Attempt, out classify.Outcome) []any {
	args := []any{
		slog.String("outcome", out.Kind.String()),
		slog.Int("status", att.StatusCode),
	}
	if reason, ok := out.Reason.(classify.RetryableError); ok {
		args = append(args, slog.String("category", reason.Category.String()))
		if reason.Delay > 0 {
			args = append(args, slog.Duration("delay", reason.Delay))
		}
	}
	return args
}
