package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/curalink-dev/curalink-server/internal/httperr"
	"github.com/curalink-dev/curalink-server/internal/httpresp"
	"github.com/curalink-dev/curalink-server/internal/models"
)

// Verification outcomes
const (
	VerifyAuthentic   = "authentic"
	VerifyCounterfeit = "counterfeit"
	VerifyExpired     = "expired"
	VerifyUnknown     = "unknown"
)

type MedicineHandler struct {
	db *gorm.DB
}

func NewMedicineHandler(db *gorm.DB) *MedicineHandler {
	return &MedicineHandler{db: db}
}

type VerifyMedicineBody struct {
	BatchCode string `json:"batch_code" binding:"required"`
}

func (h *MedicineHandler) List(c *gin.Context) {
	var medicines []models.Medicine
	if err := h.db.Order("name ASC").Find(&medicines).Error; err != nil {
		httperr.Internal(c, "failed_to_list_medicines", "Failed to list medicines.")
		return
	}

	httpresp.List(c, medicines)
}

// Verify answers a batch-code lookup against the seeded catalog. This is a
// plain table lookup, not a provenance proof.
func (h *MedicineHandler) Verify(c *gin.Context) {
	var body VerifyMedicineBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "A batch code is required.")
		return
	}

	batchCode := strings.ToUpper(strings.TrimSpace(body.BatchCode))

	var med models.Medicine
	if err := h.db.First(&med, "batch_code = ?", batchCode).Error; err != nil {
		httpresp.OK(c, gin.H{
			"batch_code": batchCode,
			"status":     VerifyUnknown,
		})
		return
	}

	status := VerifyAuthentic
	switch {
	case med.Flagged:
		status = VerifyCounterfeit
	case isExpired(med.ExpiryDate):
		status = VerifyExpired
	}

	httpresp.OK(c, gin.H{
		"batch_code": batchCode,
		"status":     status,
		"medicine": gin.H{
			"name":         med.Name,
			"manufacturer": med.Manufacturer,
			"expiry_date":  med.ExpiryDate,
			"mrp":          med.MRP,
		},
	})
}

func isExpired(expiryDate string) bool {
	exp, err := time.Parse("2006-01-02", expiryDate)
	if err != nil {
		return false
	}
	return exp.Before(time.Now().UTC().Truncate(24 * time.Hour))
}
