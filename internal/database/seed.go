package database

import (
	"log"

	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

var defaultLanguages = []string{"Turkish", "English", "German", "French"}

// SeedLanguages inserts a default language set if the table is empty.
func SeedLanguages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Language{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Languages already present, skipping seed")
		return nil
	}

	languages := make([]models.Language, len(defaultLanguages))
	for i, name := range defaultLanguages {
		languages[i] = models.Language{LanguageName: name}
	}

	if err := db.Create(&languages).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d default languages", len(languages))
	return nil
}
