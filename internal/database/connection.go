// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/models"
)

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		TranslateError: true,
	}

	logrus.WithField("dsn", cfg.Redacted()).Info("Connecting to database")
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_jobs_title_lower ON jobs(lower(title))",
		"CREATE INDEX IF NOT EXISTS idx_applications_interviews ON applications(jobseeker_id, interview_status, interview_date)",
		"CREATE INDEX IF NOT EXISTS idx_applications_created_at ON applications(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}

// SeedDemoData creates a demo recruiter with a handful of jobs when the jobs table is empty.
func SeedDemoData(db *gorm.DB) error {
	var jobCount int64
	if err := db.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if jobCount > 0 {
		return nil
	}

	logrus.Info("Seeding demo data...")

	return WithTransaction(db, func(tx *gorm.DB) error {
		recruiter := &models.User{
			Name:  "Demo Recruiter",
			Email: "recruiter@hireswipe.app",
			Role:  models.RoleRecruiter,
			Age:   30,
		}
		if err := recruiter.SetPassword("recruiter123"); err != nil {
			return fmt.Errorf("failed to set recruiter password: %w", err)
		}
		if err := tx.Where(models.User{Email: recruiter.Email}).FirstOrCreate(recruiter).Error; err != nil {
			return fmt.Errorf("failed to create demo recruiter: %w", err)
		}

		jobs := []models.Job{
			{
				Title:         "Frontend Developer",
				Company:       "Acme Corp",
				Location:      "Bengaluru",
				Description:   "Build and maintain the candidate-facing web app.",
				Requirements:  pq.StringArray{"React", "TypeScript", "CSS"},
				Salary:        "8-12 LPA",
				MinExperience: 1,
			},
			{
				Title:         "Backend Engineer",
				Company:       "Globex",
				Location:      "Pune",
				Description:   "Own REST APIs and the data layer.",
				Requirements:  pq.StringArray{"Go", "PostgreSQL"},
				Salary:        "12-18 LPA",
				MinExperience: 2,
			},
			{
				Title:         "Data Analyst Intern",
				Company:       "Initech",
				Location:      "Remote",
				Description:   "Help the growth team answer product questions with data.",
				Requirements:  pq.StringArray{"SQL", "Excel"},
				Salary:        "25k/month",
				MinExperience: 0,
			},
		}
		for i := range jobs {
			jobs[i].PostedBy = recruiter.ID
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return fmt.Errorf("failed to create demo jobs: %w", err)
		}

		logrus.WithField("jobs", len(jobs)).Info("Demo data seeded")
		return nil
	})
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
