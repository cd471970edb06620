package db

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendly/booking-api/internal/config"
	"github.com/agendly/booking-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BusinessHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	seedDefaults(db, log)

	return db
}

// seedDefaults popula serviços e business hours quando as tabelas
// estão vazias (primeiro boot).
func seedDefaults(db *gorm.DB, log *zap.Logger) {
	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)

	if serviceCount == 0 {
		defaults := []models.Service{
			{
				ID:          uuid.NewString(),
				Name:        "Standard Consultation",
				Description: "Regular 30-minute consultation",
				DurationMin: 30,
				Price:       50,
				Active:      true,
			},
			{
				ID:          uuid.NewString(),
				Name:        "Extended Consultation",
				Description: "In-depth 60-minute consultation",
				DurationMin: 60,
				Price:       90,
				Active:      true,
			},
			{
				ID:          uuid.NewString(),
				Name:        "Quick Check-up",
				Description: "Brief 15-minute check-up session",
				DurationMin: 15,
				Price:       30,
				Active:      true,
			},
		}

		if err := db.Create(&defaults).Error; err != nil {
			log.Warn("failed to seed services", zap.Error(err))
		}
	}

	var hoursCount int64
	db.Model(&models.BusinessHours{}).Count(&hoursCount)

	if hoursCount == 0 {
		days := make([]models.BusinessHours, 0, 7)
		for weekday := 0; weekday <= 6; weekday++ {
			days = append(days, models.BusinessHours{
				DayOfWeek: weekday,
				IsOpen:    weekday >= 1 && weekday <= 5, // seg a sex
				OpenTime:  "09:00",
				CloseTime: "17:00",
			})
		}

		if err := db.Create(&days).Error; err != nil {
			log.Warn("failed to seed business hours", zap.Error(err))
		}
	}
}
