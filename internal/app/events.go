package app

import "context"

// EventSink receives ledger events after the transition that produced them
// has committed. Implementations must not fail the caller; delivery is
// best-effort by contract.
type EventSink interface {
	Publish(ctx context.Context, event any)
}

// discardSink drops every event. Used when no listener is wired.
type discardSink struct{}

func (discardSink) Publish(context.Context, any) {}
