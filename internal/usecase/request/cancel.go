package request

import (
	"context"

	"github.com/curalink-dev/curalink-server/internal/audit"
	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

type CancelRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelRequest {
	return &CancelRequest{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the patient's own request; cancellation is the only
// patient-side mutation after creation.
func (uc *CancelRequest) Execute(
	ctx context.Context,
	patientID string,
	requestID string,
) (*models.AppointmentRequest, error) {

	req, err := uc.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.PatientID != patientID {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	if err := domain.Cancel(req); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &patientID,
		ActorRole: models.RolePatient,
		Action:    "request_cancelled",
		Entity:    "appointment_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
