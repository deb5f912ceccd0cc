package request

import (
	"context"

	"github.com/curalink-dev/curalink-server/internal/models"
)

type Repository interface {
	// -------- Whole list --------
	List(
		ctx context.Context,
	) ([]models.AppointmentRequest, error)

	// -------- Single request --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.AppointmentRequest, error)

	Append(
		ctx context.Context,
		req *models.AppointmentRequest,
	) error

	Update(
		ctx context.Context,
		req *models.AppointmentRequest,
	) error

	// -------- Projections --------
	//
	// All projections preserve insertion order.
	ListByDoctor(
		ctx context.Context,
		doctorID string,
	) ([]models.AppointmentRequest, error)

	ListPendingByDoctor(
		ctx context.Context,
		doctorID string,
	) ([]models.AppointmentRequest, error)

	ListByPatient(
		ctx context.Context,
		patientID string,
	) ([]models.AppointmentRequest, error)
}
