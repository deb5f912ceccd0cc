package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/curalink-dev/curalink-server/internal/audit"
	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRequestInput struct {
	PatientID    string
	PatientName  string
	PatientVID   string
	PatientPhone string

	DoctorID     string
	DoctorName   string
	HospitalID   string
	HospitalName string
	Department   string

	RequestedDate string
	RequestedTime string
	PreferredType string

	Symptoms string
	Urgency  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// When set, requests for a calendar date before today are refused.
	rejectPastDates bool
}

func NewCreateRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rejectPastDates bool,
) *CreateRequest {
	return &CreateRequest{
		repo:            repo,
		audit:           audit,
		rejectPastDates: rejectPastDates,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRequest) Execute(
	ctx context.Context,
	in CreateRequestInput,
) (*models.AppointmentRequest, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if in.RequestedDate == "" || in.RequestedTime == "" || in.Symptoms == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// Enum fields
	// --------------------------------------------------
	if !models.IsValidConsultType(in.PreferredType) {
		return nil, httperr.ErrBusiness("invalid_consult_type")
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	if !models.IsValidUrgency(urgency) {
		return nil, httperr.ErrBusiness("invalid_urgency")
	}

	// --------------------------------------------------
	// Requested date (time stays free text)
	// --------------------------------------------------
	reqDate, err := time.Parse("2006-01-02", in.RequestedDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_requested_date")
	}

	now := time.Now().UTC()
	if uc.rejectPastDates {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if reqDate.Before(today) {
			return nil, httperr.ErrBusiness("requested_date_in_past")
		}
	}

	// --------------------------------------------------
	// Creation (status and timestamps centralized here)
	// --------------------------------------------------
	req := &models.AppointmentRequest{
		ID: uuid.NewString(),

		PatientID:    in.PatientID,
		PatientName:  in.PatientName,
		PatientVID:   in.PatientVID,
		PatientPhone: in.PatientPhone,

		DoctorID:     in.DoctorID,
		DoctorName:   in.DoctorName,
		HospitalID:   in.HospitalID,
		HospitalName: in.HospitalName,
		Department:   in.Department,

		RequestedDate: in.RequestedDate,
		RequestedTime: in.RequestedTime,
		PreferredType: in.PreferredType,

		Symptoms: in.Symptoms,
		Urgency:  urgency,

		Status:    string(domain.InitialStatus()),
		CreatedAt: now.Format(time.RFC3339),
	}

	if err := uc.repo.Append(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &req.PatientID,
		ActorRole: models.RolePatient,
		Action:    "request_created",
		Entity:    "appointment_request",
		EntityID:  &req.ID,
		Metadata: map[string]any{
			"doctor_id": req.DoctorID,
			"urgency":   req.Urgency,
		},
	})

	return req, nil
}
