package request

import (
	"context"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/models"
)

type ListForPatient struct {
	repo domain.Repository
}

func NewListForPatient(
	repo domain.Repository,
) *ListForPatient {
	return &ListForPatient{
		repo: repo,
	}
}

// Execute returns the patient's own requests with resolution fields included,
// in insertion order.
func (uc *ListForPatient) Execute(
	ctx context.Context,
	patientID string,
) ([]models.AppointmentRequest, error) {
	return uc.repo.ListByPatient(ctx, patientID)
}
