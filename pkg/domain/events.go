package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEstimate EventType = "estimate"
	EventReject   EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EstimateEvent reports a successful estimation.
type EstimateEvent struct {
	EventBase
	Result   Result        `json:"result"`
	Duration time.Duration `json:"duration"`
	Finite   bool          `json:"finite"`
}

// RejectEvent reports a query refused with an InputError.
type RejectEvent struct {
	EventBase
	Query Query  `json:"query"`
	Field string `json:"field"`
	Err   error  `json:"-"`
}

// LifecycleHooks defines callbacks for estimator observability.
type LifecycleHooks struct {
	OnEstimate func(context.Context, *EstimateEvent)
	OnReject   func(context.Context, *RejectEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEstimate: chain(h.OnEstimate, other.OnEstimate),
		OnReject:   chain(h.OnReject, other.OnReject),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
