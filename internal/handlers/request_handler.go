package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/curalink-dev/curalink-server/internal/domain/request"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/httpresp"
	"github.com/curalink-dev/curalink-server/internal/middleware"
	"github.com/curalink-dev/curalink-server/internal/models"
	ucRequest "github.com/curalink-dev/curalink-server/internal/usecase/request"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	db *gorm.DB

	createUC   *ucRequest.CreateRequest
	acceptUC   *ucRequest.AcceptRequest
	rejectUC   *ucRequest.RejectRequest
	completeUC *ucRequest.CompleteRequest
	cancelUC   *ucRequest.CancelRequest

	listForDoctorUC  *ucRequest.ListForDoctor
	listForPatientUC *ucRequest.ListForPatient
}

func NewRequestHandler(
	db *gorm.DB,
	createUC *ucRequest.CreateRequest,
	acceptUC *ucRequest.AcceptRequest,
	rejectUC *ucRequest.RejectRequest,
	completeUC *ucRequest.CompleteRequest,
	cancelUC *ucRequest.CancelRequest,
	listForDoctorUC *ucRequest.ListForDoctor,
	listForPatientUC *ucRequest.ListForPatient,
) *RequestHandler {
	return &RequestHandler{
		db:               db,
		createUC:         createUC,
		acceptUC:         acceptUC,
		rejectUC:         rejectUC,
		completeUC:       completeUC,
		cancelUC:         cancelUC,
		listForDoctorUC:  listForDoctorUC,
		listForPatientUC: listForPatientUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRequestBody struct {
	DoctorID      string `json:"doctor_id" binding:"required"`
	RequestedDate string `json:"requested_date" binding:"required"`
	RequestedTime string `json:"requested_time" binding:"required"`
	PreferredType string `json:"preferred_type" binding:"required,oneof=video_call audio_call in_person"`
	Symptoms      string `json:"symptoms" binding:"required"`
	Urgency       string `json:"urgency" binding:"omitempty,oneof=low medium high"`
}

type AcceptRequestBody struct {
	DoctorNotes   string `json:"doctor_notes"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"required"`
	MeetingLink   string `json:"meeting_link"`
	Location      string `json:"location"`
}

type RejectRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// PATIENT SIDE
// ======================================================

func (h *RequestHandler) Create(c *gin.Context) {
	patientID := c.GetString(middleware.ContextUserID)

	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var patient models.User
	if err := h.db.First(&patient, "id = ?", patientID).Error; err != nil {
		httperr.Internal(c, "patient_not_found", "Patient profile not found.")
		return
	}

	var doctor models.User
	if err := h.db.First(&doctor, "id = ? AND role = ?", body.DoctorID, models.RoleDoctor).Error; err != nil {
		httperr.BadRequest(c, "doctor_not_found", "Doctor not found.")
		return
	}

	// Party fields are copied here, once; later profile edits do not reach
	// existing requests.
	created, err := h.createUC.Execute(c.Request.Context(), ucRequest.CreateRequestInput{
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		PatientVID:   patient.VID,
		PatientPhone: patient.Phone,

		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		HospitalID:   doctor.HospitalID,
		HospitalName: doctor.HospitalName,
		Department:   doctor.Department,

		RequestedDate: body.RequestedDate,
		RequestedTime: body.RequestedTime,
		PreferredType: body.PreferredType,

		Symptoms: body.Symptoms,
		Urgency:  body.Urgency,
	})
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	patientID := c.GetString(middleware.ContextUserID)

	requests, err := h.listForPatientUC.Execute(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_requests", "Failed to list requests.")
		return
	}

	httpresp.List(c, requests)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	patientID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	req, err := h.cancelUC.Execute(c.Request.Context(), patientID, id)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, req)
}

// ======================================================
// DOCTOR SIDE
// ======================================================

func (h *RequestHandler) ListForDoctor(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)

	requests, err := h.listForDoctorUC.Execute(c.Request.Context(), doctorID, false)
	if err != nil {
		httperr.Internal(c, "failed_to_list_requests", "Failed to list requests.")
		return
	}

	httpresp.List(c, requests)
}

func (h *RequestHandler) ListPending(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)

	requests, err := h.listForDoctorUC.Execute(c.Request.Context(), doctorID, true)
	if err != nil {
		httperr.Internal(c, "failed_to_list_requests", "Failed to list requests.")
		return
	}

	httpresp.List(c, requests)
}

func (h *RequestHandler) Accept(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var body AcceptRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	req, err := h.acceptUC.Execute(c.Request.Context(), doctorID, id, domain.AcceptInput{
		DoctorNotes:   body.DoctorNotes,
		ScheduledDate: body.ScheduledDate,
		ScheduledTime: body.ScheduledTime,
		MeetingLink:   body.MeetingLink,
		Location:      body.Location,
	})
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, req)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var body RejectRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rejection reason is required.")
		return
	}

	req, err := h.rejectUC.Execute(c.Request.Context(), doctorID, id, body.Reason)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, req)
}

func (h *RequestHandler) Complete(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	req, err := h.completeUC.Execute(c.Request.Context(), doctorID, id)
	if err != nil {
		h.writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, req)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *RequestHandler) writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "request_not_found":
		httperr.NotFound(c, code, "Appointment request not found.")
	case "invalid_transition":
		httperr.Conflict(c, code, "The request is not in a state that allows this action.")
	case "missing_required_fields", "missing_schedule", "missing_reason",
		"invalid_consult_type", "invalid_urgency", "invalid_requested_date",
		"requested_date_in_past":
		httperr.BadRequest(c, code, "Invalid request data.")
	default:
		httperr.Internal(c, "request_operation_failed", "Operation failed.")
	}
}
