package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medical record types
const (
	RecordTypeConsultation = "ConsultationNote"
	RecordTypeLabResult    = "LabResult"
	RecordTypePrescription = "Prescription"
	RecordTypeImaging      = "ImagingReport"
	RecordTypeVaccination  = "VaccinationRecord"
)

type MedicalRecord struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PatientID string `gorm:"size:36;index" json:"patientId"`
	DoctorID  string `gorm:"size:36;index" json:"doctorId"`

	RecordType string `gorm:"size:50" json:"recordType"`
	RecordDate string `gorm:"size:10" json:"recordDate"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Department string `gorm:"size:100" json:"department"`
	Summary    string `gorm:"type:text" json:"summary"`
	Details    string `gorm:"type:text" json:"details"`

	Attachments []MedicalRecordAttachment `gorm:"foreignKey:MedicalRecordID" json:"attachments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MedicalRecordAttachment keeps the file bytes in the database; the demo has
// no object storage tier.
type MedicalRecordAttachment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	MedicalRecordID string `gorm:"size:36;index;not null" json:"medicalRecordId"`
	FileName        string `gorm:"size:255;not null" json:"fileName"`
	FileType        string `gorm:"size:100;not null" json:"fileType"`
	FileData        []byte `gorm:"type:blob;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *MedicalRecordAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
