package request

import (
	"context"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/dto"
	"github.com/curalink-dev/curalink-server/internal/models"
)

type ListForDoctor struct {
	repo domain.Repository
}

func NewListForDoctor(
	repo domain.Repository,
) *ListForDoctor {
	return &ListForDoctor{
		repo: repo,
	}
}

// Execute returns the doctor's requests in insertion order; pendingOnly
// narrows to the review queue.
func (uc *ListForDoctor) Execute(
	ctx context.Context,
	doctorID string,
	pendingOnly bool,
) ([]dto.RequestListDTO, error) {

	var (
		requests []models.AppointmentRequest
		err      error
	)

	if pendingOnly {
		requests, err = uc.repo.ListPendingByDoctor(ctx, doctorID)
	} else {
		requests, err = uc.repo.ListByDoctor(ctx, doctorID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.RequestListDTO, 0, len(requests))
	for _, req := range requests {
		out = append(out, dto.RequestListDTO{
			ID:            req.ID,
			PatientName:   req.PatientName,
			PatientVID:    req.PatientVID,
			RequestedDate: req.RequestedDate,
			RequestedTime: req.RequestedTime,
			PreferredType: req.PreferredType,
			Symptoms:      req.Symptoms,
			Urgency:       req.Urgency,
			Status:        req.Status,
			CreatedAt:     req.CreatedAt,
		})
	}

	return out, nil
}
