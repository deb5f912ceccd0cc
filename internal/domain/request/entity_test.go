package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

func pendingRequest() *models.AppointmentRequest {
	return &models.AppointmentRequest{
		ID:            "req-1",
		PatientID:     "pat-1",
		DoctorID:      "doc-1",
		RequestedDate: "2025-03-01",
		RequestedTime: "10:00",
		Symptoms:      "persistent cough",
		Urgency:       models.UrgencyHigh,
		Status:        string(StatusPending),
	}
}

func TestAcceptSetsScheduleFields(t *testing.T) {
	req := pendingRequest()

	err := Accept(req, AcceptInput{
		DoctorNotes:   "Bring prior reports",
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
		Location:      "Room 4",
	})
	require.NoError(t, err)

	assert.Equal(t, string(StatusAccepted), req.Status)
	assert.Equal(t, "2025-03-02", req.ScheduledDate)
	assert.Equal(t, "11:00", req.ScheduledTime)
	assert.Equal(t, "Room 4", req.Location)
	assert.Empty(t, req.MeetingLink)
}

func TestAcceptRequiresSchedule(t *testing.T) {
	req := pendingRequest()

	err := Accept(req, AcceptInput{DoctorNotes: "n"})
	assert.True(t, httperr.IsBusiness(err, "missing_schedule"))
	assert.Equal(t, string(StatusPending), req.Status)
}

func TestRejectSetsReason(t *testing.T) {
	req := pendingRequest()

	require.NoError(t, Reject(req, "Doctor unavailable"))
	assert.Equal(t, string(StatusRejected), req.Status)
	assert.Equal(t, "Doctor unavailable", req.RejectionReason)
}

func TestRejectRequiresReason(t *testing.T) {
	req := pendingRequest()

	err := Reject(req, "")
	assert.True(t, httperr.IsBusiness(err, "missing_reason"))
	assert.Equal(t, string(StatusPending), req.Status)
}

func TestCompleteOnlyFromAccepted(t *testing.T) {
	req := pendingRequest()

	err := Complete(req)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	require.NoError(t, Accept(req, AcceptInput{ScheduledDate: "2025-03-02", ScheduledTime: "11:00"}))
	require.NoError(t, Complete(req))
	assert.Equal(t, string(StatusCompleted), req.Status)
}

func TestCancelFromPendingAndAccepted(t *testing.T) {
	req := pendingRequest()
	require.NoError(t, Cancel(req))
	assert.Equal(t, string(StatusCancelled), req.Status)

	req = pendingRequest()
	require.NoError(t, Accept(req, AcceptInput{ScheduledDate: "2025-03-02", ScheduledTime: "11:00"}))
	require.NoError(t, Cancel(req))
	assert.Equal(t, string(StatusCancelled), req.Status)
}

func TestNoTransitionLeavesTerminalStatus(t *testing.T) {
	for _, terminal := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		req := pendingRequest()
		req.Status = string(terminal)

		assert.True(t, httperr.IsBusiness(Accept(req, AcceptInput{ScheduledDate: "d", ScheduledTime: "t"}), "invalid_transition"), "accept from %s", terminal)
		assert.True(t, httperr.IsBusiness(Reject(req, "r"), "invalid_transition"), "reject from %s", terminal)
		assert.True(t, httperr.IsBusiness(Complete(req), "invalid_transition"), "complete from %s", terminal)
		assert.True(t, httperr.IsBusiness(Cancel(req), "invalid_transition"), "cancel from %s", terminal)
		assert.Equal(t, string(terminal), req.Status)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}
