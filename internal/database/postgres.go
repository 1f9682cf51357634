package database

import (
	"fmt"
	"log"

	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Database connected successfully")
	return db, nil
}

// RunMigrations creates the thesis schema. The supervisor join table carries
// an is_co_supervisor column, so all three join tables use explicit join
// models instead of gorm's implicit ones.
func RunMigrations(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Thesis{}, "Keywords", &models.ThesisKeyword{}); err != nil {
		return fmt.Errorf("failed to set up thesis_keyword join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Thesis{}, "Supervisors", &models.ThesisSupervisor{}); err != nil {
		return fmt.Errorf("failed to set up thesis_supervisor join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Thesis{}, "Topics", &models.ThesisTopic{}); err != nil {
		return fmt.Errorf("failed to set up thesis_topic join table: %w", err)
	}

	return db.AutoMigrate(
		&models.University{},
		&models.Institute{},
		&models.Author{},
		&models.Language{},
		&models.Keyword{},
		&models.SubjectTopic{},
		&models.Supervisor{},
		&models.Thesis{},
	)
}
