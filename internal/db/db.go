package db

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/curalink-dev/curalink-server/internal/config"
	"github.com/curalink-dev/curalink-server/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.DataDir, "curalink.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.MedicalRecord{},
		&models.MedicalRecordAttachment{},
		&models.WalletTransaction{},
		&models.Medicine{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE users
        SET role = 'patient'
        WHERE role IS NULL OR role = ''
    `)

	SeedMedicines(db)

	return db
}

// SeedMedicines loads the demo authenticity catalog once; an already-seeded
// database is left alone.
func SeedMedicines(db *gorm.DB) {
	var count int64
	db.Model(&models.Medicine{}).Count(&count)
	if count > 0 {
		return
	}

	catalog := []models.Medicine{
		{Name: "Paracetamol 500mg", Manufacturer: "Cipla Ltd", BatchCode: "PCM-2025-0117", ExpiryDate: "2027-01-31", MRP: 25.50},
		{Name: "Amoxicillin 250mg", Manufacturer: "Sun Pharma", BatchCode: "AMX-2025-0342", ExpiryDate: "2026-09-30", MRP: 78.00},
		{Name: "Metformin 500mg", Manufacturer: "USV Pvt Ltd", BatchCode: "MET-2024-1108", ExpiryDate: "2026-11-30", MRP: 42.75},
		{Name: "Atorvastatin 10mg", Manufacturer: "Dr. Reddy's", BatchCode: "ATR-2025-0221", ExpiryDate: "2027-02-28", MRP: 112.00},
		{Name: "Cetirizine 10mg", Manufacturer: "Zydus Lifesciences", BatchCode: "CTZ-2023-0815", ExpiryDate: "2025-08-14", MRP: 18.25},
		// reported counterfeit batch kept for lookup
		{Name: "Amoxicillin 250mg", Manufacturer: "Sun Pharma", BatchCode: "AMX-2024-9999", ExpiryDate: "2026-03-31", MRP: 78.00, Flagged: true},
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("failed to seed medicine catalog: %v", err)
	}
}
