package request

import (
	"context"

	"github.com/curalink-dev/curalink-server/internal/audit"
	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

type AcceptRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcceptRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AcceptRequest {
	return &AcceptRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AcceptRequest) Execute(
	ctx context.Context,
	doctorID string,
	requestID string,
	in domain.AcceptInput,
) (*models.AppointmentRequest, error) {

	req, err := uc.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// A request belonging to another doctor is indistinguishable from a
	// missing one.
	if req.DoctorID != doctorID {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if err := domain.Accept(req, in); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &doctorID,
		ActorRole: models.RoleDoctor,
		Action:    "request_accepted",
		Entity:    "appointment_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
