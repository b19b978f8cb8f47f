package transaction

import "time"

// Outcome labels how a Run call ended.
type Outcome string

const (
	OutcomeCommitted Outcome = "committed"
	OutcomeFailed    Outcome = "failed"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeJoined    Outcome = "joined"
)

// Observer receives transaction telemetry.
type Observer interface {
	ConflictRetried()
	Finished(outcome Outcome, attempts int, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ConflictRetried()                     {}
func (noopObserver) Finished(Outcome, int, time.Duration) {}
