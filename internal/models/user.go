package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RolePatient  = "patient"
	RoleDoctor   = "doctor"
	RolePharmacy = "pharmacy"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'patient'" json:"role"`

	// Display-only patient identifier, assigned at registration.
	VID string `gorm:"size:20" json:"vid,omitempty"`

	// Doctor profile
	HospitalID      string  `gorm:"size:36" json:"hospitalId,omitempty"`
	HospitalName    string  `gorm:"size:100" json:"hospitalName,omitempty"`
	Department      string  `gorm:"size:100" json:"department,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
