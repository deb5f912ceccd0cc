package request

import (
	"context"

	"github.com/curalink-dev/curalink-server/internal/audit"
	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

type RejectRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRejectRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RejectRequest {
	return &RejectRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RejectRequest) Execute(
	ctx context.Context,
	doctorID string,
	requestID string,
	reason string,
) (*models.AppointmentRequest, error) {

	req, err := uc.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.DoctorID != doctorID {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if err := domain.Reject(req, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &doctorID,
		ActorRole: models.RoleDoctor,
		Action:    "request_rejected",
		Entity:    "appointment_request",
		EntityID:  &req.ID,
		Metadata:  map[string]any{"reason": reason},
	})

	return req, nil
}
