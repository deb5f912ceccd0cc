package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/curalink-dev/curalink-server/internal/audit"
	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/httpresp"
	"github.com/curalink-dev/curalink-server/internal/middleware"
	"github.com/curalink-dev/curalink-server/internal/models"
)

// attachments stay inline in the database; anything bigger belongs in real
// object storage, which this demo does not have
const maxAttachmentBytes = 5 << 20

type MedicalRecordHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMedicalRecordHandler(db *gorm.DB, audit *audit.Dispatcher) *MedicalRecordHandler {
	return &MedicalRecordHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateRecordBody struct {
	PatientID  string `json:"patient_id" binding:"required"`
	RecordType string `json:"record_type" binding:"required"`
	RecordDate string `json:"record_date" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Department string `json:"department"`
	Summary    string `json:"summary"`
	Details    string `json:"details"`
}

// --------- Doctor side ---------

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)

	var body CreateRecordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid record data.")
		return
	}

	var patient models.User
	if err := h.db.First(&patient, "id = ? AND role = ?", body.PatientID, models.RolePatient).Error; err != nil {
		httperr.BadRequest(c, "patient_not_found", "Patient not found.")
		return
	}

	record := models.MedicalRecord{
		PatientID:  patient.ID,
		DoctorID:   doctorID,
		RecordType: body.RecordType,
		RecordDate: body.RecordDate,
		Title:      body.Title,
		Department: body.Department,
		Summary:    body.Summary,
		Details:    body.Details,
	}

	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_record", "Failed to create record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:   &record.DoctorID,
		ActorRole: models.RoleDoctor,
		Action:    "record_created",
		Entity:    "medical_record",
		EntityID:  &record.ID,
	})

	httpresp.Created(c, record)
}

func (h *MedicalRecordHandler) ListAuthored(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)

	var records []models.MedicalRecord
	if err := h.db.
		Preload("Attachments").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_records", "Failed to list records.")
		return
	}

	httpresp.List(c, records)
}

// --------- Patient side ---------

func (h *MedicalRecordHandler) ListMine(c *gin.Context) {
	patientID := c.GetString(middleware.ContextUserID)

	var records []models.MedicalRecord
	if err := h.db.
		Preload("Attachments").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		httperr.Internal(c, "failed_to_list_records", "Failed to list records.")
		return
	}

	httpresp.List(c, records)
}

// --------- Shared ---------

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	record, ok := h.loadAccessible(c)
	if !ok {
		return
	}
	httpresp.OK(c, record)
}

func (h *MedicalRecordHandler) UploadAttachment(c *gin.Context) {
	record, ok := h.loadAccessible(c)
	if !ok {
		return
	}

	// patients read records, only the authoring doctor extends them
	if c.GetString(middleware.ContextUserRole) != models.RoleDoctor {
		httperr.Forbidden(c, "not_record_author", "Only the authoring doctor can attach files.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file part named 'file' is required.")
		return
	}
	if fileHeader.Size > maxAttachmentBytes {
		httperr.BadRequest(c, "file_too_large", "Attachments are limited to 5 MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read upload.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAttachmentBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read upload.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment := models.MedicalRecordAttachment{
		MedicalRecordID: record.ID,
		FileName:        fileHeader.Filename,
		FileType:        contentType,
		FileData:        data,
	}

	if err := h.db.Create(&attachment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_attachment", "Failed to save attachment.")
		return
	}

	httpresp.Created(c, attachment)
}

func (h *MedicalRecordHandler) DownloadAttachment(c *gin.Context) {
	id := c.Param("id")

	var attachment models.MedicalRecordAttachment
	if err := h.db.First(&attachment, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "attachment_not_found", "Attachment not found.")
		return
	}

	var record models.MedicalRecord
	if err := h.db.First(&record, "id = ?", attachment.MedicalRecordID).Error; err != nil {
		httperr.NotFound(c, "record_not_found", "Medical record not found.")
		return
	}

	if !h.canAccess(c, &record) {
		httperr.Forbidden(c, "record_access_denied", "You cannot access this record.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	c.Data(200, attachment.FileType, attachment.FileData)
}

// --------- Helpers ---------

func (h *MedicalRecordHandler) loadAccessible(c *gin.Context) (*models.MedicalRecord, bool) {
	id := c.Param("id")

	var record models.MedicalRecord
	if err := h.db.Preload("Attachments").First(&record, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "record_not_found", "Medical record not found.")
		return nil, false
	}

	if !h.canAccess(c, &record) {
		httperr.Forbidden(c, "record_access_denied", "You cannot access this record.")
		return nil, false
	}

	return &record, true
}

func (h *MedicalRecordHandler) canAccess(c *gin.Context, record *models.MedicalRecord) bool {
	userID := c.GetString(middleware.ContextUserID)
	return record.PatientID == userID || record.DoctorID == userID
}
