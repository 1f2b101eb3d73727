package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRowTransformed EventType = "row_transformed"
	EventUnrecognized   EventType = "unrecognized_symbol"
	EventRunFinish      EventType = "run_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RowEvent describes one block row passing through the transformer.
type RowEvent struct {
	EventBase
	Line        int    `json:"line"` // 1-based line number in the input
	Token       string `json:"token"`
	Replacement string `json:"replacement"`
}

// RunEvent describes the outcome of a full extraction.
type RunEvent struct {
	EventBase
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Lines  int    `json:"lines"`
	Err    error  `json:"-"`
}

// Hooks defines callbacks for pipeline observability.
// Any field may be nil.
type Hooks struct {
	OnRowTransformed func(context.Context, *RowEvent)
	OnUnrecognized   func(context.Context, *RowEvent)
	OnRunFinish      func(context.Context, *RunEvent)
}

// NewRowEvent stamps a RowEvent of the given type.
func NewRowEvent(typ EventType, line int, token, replacement string) *RowEvent {
	return &RowEvent{
		EventBase:   EventBase{Timestamp: time.Now(), Type: typ},
		Line:        line,
		Token:       token,
		Replacement: replacement,
	}
}

// NewRunEvent stamps a RunEvent.
func NewRunEvent(input, output string, lines int, err error) *RunEvent {
	return &RunEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: EventRunFinish},
		Input:     input,
		Output:    output,
		Lines:     lines,
		Err:       err,
	}
}
