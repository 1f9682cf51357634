package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/tezbase/thesis-api/internal/config"
	"github.com/tezbase/thesis-api/internal/database"
	"github.com/tezbase/thesis-api/internal/models"
	"gorm.io/gorm"
)

// Loads a small demo dataset for local development. Safe to run repeatedly;
// every row is get-or-created by its natural key.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedLanguages(db); err != nil {
		log.Fatalf("Failed to seed languages: %v", err)
	}

	if err := seedDemoData(db); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("Seed completed successfully")
}

func seedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var university models.University
		if err := tx.Where(models.University{Name: "Middle East Technical University"}).FirstOrCreate(&university).Error; err != nil {
			return err
		}

		var institute models.Institute
		if err := tx.Where(models.Institute{
			Name:         "Graduate School of Natural and Applied Sciences",
			UniversityID: university.ID,
		}).FirstOrCreate(&institute).Error; err != nil {
			return err
		}

		var author models.Author
		if err := tx.Where(models.Author{FirstName: "Ayse", LastName: "Demir"}).FirstOrCreate(&author).Error; err != nil {
			return err
		}

		var english models.Language
		if err := tx.Where(models.Language{LanguageName: "English"}).FirstOrCreate(&english).Error; err != nil {
			return err
		}

		var supervisor models.Supervisor
		if err := tx.Where(models.Supervisor{
			FirstName: "Mehmet",
			LastName:  "Kaya",
			Title:     "Prof. Dr.",
		}).FirstOrCreate(&supervisor).Error; err != nil {
			return err
		}

		keywords := make([]models.Keyword, 2)
		for i, name := range []string{"distributed systems", "consensus"} {
			if err := tx.Where(models.Keyword{KeywordName: name}).FirstOrCreate(&keywords[i]).Error; err != nil {
				return err
			}
		}

		var topic models.SubjectTopic
		if err := tx.Where(models.SubjectTopic{TopicName: "Computer Engineering"}).FirstOrCreate(&topic).Error; err != nil {
			return err
		}

		var thesis models.Thesis
		if err := tx.Where(models.Thesis{
			Title:    "Consensus Protocols in Partially Synchronous Networks",
			AuthorID: author.ID,
		}).Attrs(models.Thesis{
			Abstract:       "A study of consensus protocol behaviour under partial synchrony.",
			Year:           2023,
			Type:           models.TypeDoctorate,
			UniversityID:   university.ID,
			InstituteID:    institute.ID,
			NumberOfPages:  142,
			SubmissionDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			LanguageID:     english.ID,
		}).FirstOrCreate(&thesis).Error; err != nil {
			return err
		}

		for _, keyword := range keywords {
			link := models.ThesisKeyword{ThesisNo: thesis.ID, KeywordID: keyword.ID}
			if err := tx.Where(link).FirstOrCreate(&link).Error; err != nil {
				return err
			}
		}

		topicLink := models.ThesisTopic{ThesisNo: thesis.ID, TopicID: topic.ID}
		if err := tx.Where(topicLink).FirstOrCreate(&topicLink).Error; err != nil {
			return err
		}

		supervisorLink := models.ThesisSupervisor{ThesisNo: thesis.ID, SupervisorID: supervisor.ID}
		if err := tx.Where(supervisorLink).FirstOrCreate(&supervisorLink).Error; err != nil {
			return err
		}

		return nil
	})
}
