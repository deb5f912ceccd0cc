package request

import "github.com/curalink-dev/curalink-server/internal/httperr"

// ===============================
// Request Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no transition leaves the status.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================
//
// The machine is one-way:
//
//	pending --accept--> accepted --complete--> completed
//	pending --reject--> rejected
//	pending --cancel--> cancelled
//	accepted --cancel--> cancelled
//
// Nothing returns to pending and nothing leaves a terminal status.

// CanAccept allows accepting only a pending request
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanReject allows rejecting only a pending request
func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete allows completing only an accepted request
func CanComplete(current Status) error {
	if current != StatusAccepted {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel allows cancelling a request that is not resolved yet
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// InitialStatus is the only status a request may be created with
func InitialStatus() Status {
	return StatusPending
}
