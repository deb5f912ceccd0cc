package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
)

// End-to-end lifecycle over the real store-backed repository.

func TestAcceptThenComplete(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()

	created, err := NewCreateRequest(repo, d, false).Execute(ctx, validInput())
	require.NoError(t, err)

	accepted, err := NewAcceptRequest(repo, d).Execute(ctx, "doc-1", created.ID, domain.AcceptInput{
		DoctorNotes:   "Bring prior reports",
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
		Location:      "Room 4",
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)
	assert.Equal(t, "2025-03-02", accepted.ScheduledDate)
	assert.Equal(t, "11:00", accepted.ScheduledTime)
	assert.Equal(t, "Room 4", accepted.Location)
	assert.Empty(t, accepted.MeetingLink)

	completed, err := NewCompleteRequest(repo, d).Execute(ctx, "doc-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	// terminal: cancel must now fail
	_, err = NewCancelRequest(repo, d).Execute(ctx, "pat-1", created.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestRejectKeepsReason(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()

	created, err := NewCreateRequest(repo, d, false).Execute(ctx, validInput())
	require.NoError(t, err)

	rejected, err := NewRejectRequest(repo, d).Execute(ctx, "doc-1", created.ID, "Doctor unavailable")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "Doctor unavailable", rejected.RejectionReason)

	// rejection is terminal
	_, err = NewAcceptRequest(repo, d).Execute(ctx, "doc-1", created.ID, domain.AcceptInput{
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestTransitionsScopedToOwningParties(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()

	created, err := NewCreateRequest(repo, d, false).Execute(ctx, validInput())
	require.NoError(t, err)

	_, err = NewAcceptRequest(repo, d).Execute(ctx, "doc-other", created.ID, domain.AcceptInput{
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))

	_, err = NewCancelRequest(repo, d).Execute(ctx, "pat-other", created.ID)
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
}

func TestTransitionOnUnknownIDFails(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()

	_, err := NewAcceptRequest(repo, d).Execute(ctx, "doc-1", "no-such-id", domain.AcceptInput{
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))

	_, err = NewCompleteRequest(repo, d).Execute(ctx, "doc-1", "no-such-id")
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))
}

func TestPendingQueueForDoctor(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()
	createUC := NewCreateRequest(repo, d, false)

	first, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)
	second, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)
	third, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	_, err = NewAcceptRequest(repo, d).Execute(ctx, "doc-1", second.ID, domain.AcceptInput{
		ScheduledDate: "2025-03-02",
		ScheduledTime: "11:00",
	})
	require.NoError(t, err)

	pending, err := NewListForDoctor(repo).Execute(ctx, "doc-1", true)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)

	all, err := NewListForDoctor(repo).Execute(ctx, "doc-1", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPatientListIncludesResolutionFields(t *testing.T) {
	repo := testRepo(t)
	d := testDispatcher()
	ctx := context.Background()

	created, err := NewCreateRequest(repo, d, false).Execute(ctx, validInput())
	require.NoError(t, err)

	_, err = NewRejectRequest(repo, d).Execute(ctx, "doc-1", created.ID, "fully booked")
	require.NoError(t, err)

	mine, err := NewListForPatient(repo).Execute(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "fully booked", mine[0].RejectionReason)
	assert.Equal(t, string(domain.StatusRejected), mine[0].Status)
}
