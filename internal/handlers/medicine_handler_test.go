package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/curalink-dev/curalink-server/internal/db"
	"github.com/curalink-dev/curalink-server/internal/models"
)

func setupMedicineRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Medicine{}))
	dbpkg.SeedMedicines(db)

	h := NewMedicineHandler(db)
	r := gin.New()
	r.GET("/api/public/medicines", h.List)
	r.POST("/api/public/medicines/verify", h.Verify)
	return r
}

func verify(t *testing.T, r *gin.Engine, batchCode string) map[string]any {
	t.Helper()
	body, _ := json.Marshal(gin.H{"batch_code": batchCode})
	req := httptest.NewRequest(http.MethodPost, "/api/public/medicines/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestVerifyKnownBatchIsAuthentic(t *testing.T) {
	r := setupMedicineRouter(t)

	out := verify(t, r, "PCM-2025-0117")
	assert.Equal(t, "authentic", out["status"])

	med, ok := out["medicine"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Paracetamol 500mg", med["name"])
}

func TestVerifyIsCaseAndSpaceInsensitive(t *testing.T) {
	r := setupMedicineRouter(t)

	out := verify(t, r, "  pcm-2025-0117 ")
	assert.Equal(t, "authentic", out["status"])
}

func TestVerifyFlaggedBatchIsCounterfeit(t *testing.T) {
	r := setupMedicineRouter(t)

	out := verify(t, r, "AMX-2024-9999")
	assert.Equal(t, "counterfeit", out["status"])
}

func TestVerifyExpiredBatch(t *testing.T) {
	r := setupMedicineRouter(t)

	// seeded Cetirizine batch expired 2025-08-14
	out := verify(t, r, "CTZ-2023-0815")
	assert.Equal(t, "expired", out["status"])
}

func TestVerifyUnknownBatch(t *testing.T) {
	r := setupMedicineRouter(t)

	out := verify(t, r, "NOPE-0000")
	assert.Equal(t, "unknown", out["status"])
	assert.Nil(t, out["medicine"])
}

func TestListMedicines(t *testing.T) {
	r := setupMedicineRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/public/medicines", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Data  []models.Medicine `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 6, out.Total)
}
