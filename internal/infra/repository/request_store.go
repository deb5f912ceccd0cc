package repository

import (
	"context"
	"sync"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/models"
	"github.com/curalink-dev/curalink-server/internal/store"
)

// RequestStoreRepository keeps the full request list as one JSON array in the
// store. Every mutation is a read-modify-rewrite of the whole array; the mutex
// makes that sequence atomic across handlers.
type RequestStoreRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func NewRequestStoreRepository(st *store.Store) *RequestStoreRepository {
	return &RequestStoreRepository{store: st}
}

func (r *RequestStoreRepository) load() ([]models.AppointmentRequest, error) {
	var list []models.AppointmentRequest
	if err := r.store.Load(store.KeyAppointmentRequests, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Whole list
// --------------------------------------------------

func (r *RequestStoreRepository) List(
	ctx context.Context,
) ([]models.AppointmentRequest, error) {
	return r.load()
}

// --------------------------------------------------
// Single request
// --------------------------------------------------

func (r *RequestStoreRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.AppointmentRequest, error) {

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			req := list[i]
			return &req, nil
		}
	}
	return nil, httperr.ErrBusiness("request_not_found")
}

func (r *RequestStoreRepository) Append(
	ctx context.Context,
	req *models.AppointmentRequest,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	list = append(list, *req)
	return r.store.Save(store.KeyAppointmentRequests, list)
}

func (r *RequestStoreRepository) Update(
	ctx context.Context,
	req *models.AppointmentRequest,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == req.ID {
			list[i] = *req
			return r.store.Save(store.KeyAppointmentRequests, list)
		}
	}
	return httperr.ErrBusiness("request_not_found")
}

// --------------------------------------------------
// Projections (insertion order preserved)
// --------------------------------------------------

func (r *RequestStoreRepository) ListByDoctor(
	ctx context.Context,
	doctorID string,
) ([]models.AppointmentRequest, error) {

	return r.filter(func(req *models.AppointmentRequest) bool {
		return req.DoctorID == doctorID
	})
}

func (r *RequestStoreRepository) ListPendingByDoctor(
	ctx context.Context,
	doctorID string,
) ([]models.AppointmentRequest, error) {

	return r.filter(func(req *models.AppointmentRequest) bool {
		return req.DoctorID == doctorID && req.Status == string(domain.StatusPending)
	})
}

func (r *RequestStoreRepository) ListByPatient(
	ctx context.Context,
	patientID string,
) ([]models.AppointmentRequest, error) {

	return r.filter(func(req *models.AppointmentRequest) bool {
		return req.PatientID == patientID
	})
}

func (r *RequestStoreRepository) filter(
	keep func(*models.AppointmentRequest) bool,
) ([]models.AppointmentRequest, error) {

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.AppointmentRequest, 0, len(list))
	for i := range list {
		if keep(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*RequestStoreRepository)(nil)
