package order

import "time"

// Step is one immutable entry of the order's audit trail.
type Step struct {
	kind      Status
	timestamp time.Time
	message   string
}

func NewStep(kind Status, timestamp time.Time, message string) Step {
	return Step{kind: kind, timestamp: timestamp.UTC(), message: message}
}

func (s Step) Kind() Status {
	return s.kind
}

func (s Step) Timestamp() time.Time {
	return s.timestamp
}

func (s Step) Message() string {
	return s.message
}
