package order

import (
	"strings"

	"restaurant/internal/pkg/errs"
)

// DefaultStatus is assigned to orders created without an explicit status.
const DefaultStatus Status = "PENDING"

// Status is the free-form label describing where an order is in fulfillment.
//
// The system deliberately enforces no closed set of values and no transition
// graph: any non-blank string may follow any other at any time. The only
// invariant is that a persisted order is never blank. Callers that want a
// strict workflow must layer it on top.
//
// A blank value at creation time falls back to DefaultStatus; a blank value
// supplied to a status update is rejected.
type Status string

// NewStatus creates a Status from a raw string.
// Surrounding whitespace is trimmed. A blank value is rejected with a
// ValueIsRequiredError; use StatusOrDefault on the creation path where blank
// means "use the default".
func NewStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("status")
	}
	return Status(trimmed), nil
}

// StatusOrDefault creates a Status from a raw string, substituting
// DefaultStatus for blank input. Used when creating orders, where an absent
// status means the order starts out PENDING.
func StatusOrDefault(value string) Status {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultStatus
	}
	return Status(trimmed)
}

// String returns the raw status label.
func (s Status) String() string {
	return string(s)
}

// IsEqual compares two statuses by exact string match.
func (s Status) IsEqual(other Status) bool {
	return s == other
}

// Validate checks that the status is non-blank.
func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}
