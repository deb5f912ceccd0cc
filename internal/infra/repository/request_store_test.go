package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
	"github.com/curalink-dev/curalink-server/internal/store"
)

func newTestRepo(t *testing.T) (*RequestStoreRepository, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.New(dir)
	require.NoError(t, err)
	return NewRequestStoreRepository(st), dir
}

func seedRequest(n int, doctorID, status string) *models.AppointmentRequest {
	return &models.AppointmentRequest{
		ID:            fmt.Sprintf("req-%d", n),
		PatientID:     fmt.Sprintf("pat-%d", n),
		DoctorID:      doctorID,
		RequestedDate: "2025-03-01",
		RequestedTime: "10:00",
		Symptoms:      "fever",
		Status:        status,
	}
}

func TestAppendAndGetByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, seedRequest(1, "doc-1", "pending")))

	got, err := repo.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.DoctorID)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))
}

func TestUpdateUnknownIDFails(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	err := repo.Update(ctx, seedRequest(9, "doc-1", "pending"))
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))
}

func TestUpdateRewritesMatchingElement(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, seedRequest(1, "doc-1", "pending")))
	require.NoError(t, repo.Append(ctx, seedRequest(2, "doc-1", "pending")))

	second, err := repo.GetByID(ctx, "req-2")
	require.NoError(t, err)
	second.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.Update(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "pending", list[0].Status)
	assert.Equal(t, "cancelled", list[1].Status)
}

func TestProjectionsFilterAndKeepOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, seedRequest(1, "doc-1", "pending")))
	require.NoError(t, repo.Append(ctx, seedRequest(2, "doc-2", "pending")))
	require.NoError(t, repo.Append(ctx, seedRequest(3, "doc-1", "accepted")))
	require.NoError(t, repo.Append(ctx, seedRequest(4, "doc-1", "pending")))

	byDoctor, err := repo.ListByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, byDoctor, 3)
	assert.Equal(t, []string{"req-1", "req-3", "req-4"}, ids(byDoctor))

	pending, err := repo.ListPendingByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1", "req-4"}, ids(pending))

	byPatient, err := repo.ListByPatient(ctx, "pat-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"req-2"}, ids(byPatient))
}

func TestReadsAreIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, seedRequest(1, "doc-1", "pending")))
	require.NoError(t, repo.Append(ctx, seedRequest(2, "doc-1", "pending")))

	first, err := repo.ListPendingByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	second, err := repo.ListPendingByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListSurvivesReopen(t *testing.T) {
	repo, dir := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, seedRequest(1, "doc-1", "pending")))

	st, err := store.New(dir)
	require.NoError(t, err)
	reopened := NewRequestStoreRepository(st)

	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "req-1", list[0].ID)
}

func ids(list []models.AppointmentRequest) []string {
	out := make([]string, 0, len(list))
	for _, req := range list {
		out = append(out, req.ID)
	}
	return out
}
