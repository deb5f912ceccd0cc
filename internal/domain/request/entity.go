package request

import (
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action checks the transition guard, then writes the resolution fields
// that belong to the target status and nothing else.

// AcceptInput carries the scheduling decision; date and time are mandatory,
// meeting link and location depend on the consultation type and stay optional
// here.
type AcceptInput struct {
	DoctorNotes   string
	ScheduledDate string
	ScheduledTime string
	MeetingLink   string
	Location      string
}

func Accept(req *models.AppointmentRequest, in AcceptInput) error {
	if err := CanAccept(Status(req.Status)); err != nil {
		return err
	}
	if in.ScheduledDate == "" || in.ScheduledTime == "" {
		return httperr.ErrBusiness("missing_schedule")
	}

	req.Status = string(StatusAccepted)
	req.DoctorNotes = in.DoctorNotes
	req.ScheduledDate = in.ScheduledDate
	req.ScheduledTime = in.ScheduledTime
	req.MeetingLink = in.MeetingLink
	req.Location = in.Location
	return nil
}

func Reject(req *models.AppointmentRequest, reason string) error {
	if err := CanReject(Status(req.Status)); err != nil {
		return err
	}
	if reason == "" {
		return httperr.ErrBusiness("missing_reason")
	}

	req.Status = string(StatusRejected)
	req.RejectionReason = reason
	return nil
}

func Complete(req *models.AppointmentRequest) error {
	if err := CanComplete(Status(req.Status)); err != nil {
		return err
	}

	req.Status = string(StatusCompleted)
	return nil
}

func Cancel(req *models.AppointmentRequest) error {
	if err := CanCancel(Status(req.Status)); err != nil {
		return err
	}

	req.Status = string(StatusCancelled)
	return nil
}
