package router

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tezbase/thesis-api/internal/config"
	"github.com/tezbase/thesis-api/internal/handlers"
	"github.com/tezbase/thesis-api/internal/middleware"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	r := gin.Default()

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestID())

	// Rate limiting is optional; the API stays up without Redis
	if cfg.RedisURL != "" {
		rateLimiter, err := middleware.NewRateLimiter(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize rate limiter: %v", err)
		} else {
			r.Use(rateLimiter.RateLimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
		}
	}

	// Health check endpoint
	r.GET("/health", handlers.HealthCheck(db))

	authors := r.Group("/authors")
	{
		authors.POST("/", handlers.CreateAuthor(db))
		authors.GET("/", handlers.ListAuthors(db))
		authors.GET("/:id", handlers.GetAuthor(db))
		authors.PUT("/:id", handlers.UpdateAuthor(db))
		authors.DELETE("/:id", handlers.DeleteAuthor(db))
	}

	universities := r.Group("/universities")
	{
		universities.POST("/", handlers.CreateUniversity(db))
		universities.GET("/", handlers.ListUniversities(db))
		universities.GET("/:id", handlers.GetUniversity(db))
		universities.PUT("/:id", handlers.UpdateUniversity(db))
		universities.DELETE("/:id", handlers.DeleteUniversity(db))
	}

	institutes := r.Group("/institutes")
	{
		institutes.POST("/", handlers.CreateInstitute(db))
		institutes.GET("/", handlers.ListInstitutes(db))
		institutes.GET("/university/:university_id", handlers.GetInstitutesByUniversity(db))
		institutes.GET("/:id", handlers.GetInstitute(db))
		institutes.PUT("/:id", handlers.UpdateInstitute(db))
		institutes.DELETE("/:id", handlers.DeleteInstitute(db))
	}

	languages := r.Group("/languages")
	{
		languages.POST("/", handlers.CreateLanguage(db))
		languages.GET("/", handlers.ListLanguages(db))
		languages.GET("/:id", handlers.GetLanguage(db))
		languages.PUT("/:id", handlers.UpdateLanguage(db))
		languages.DELETE("/:id", handlers.DeleteLanguage(db))
	}

	keywords := r.Group("/keywords")
	{
		keywords.POST("/", handlers.CreateKeyword(db))
		keywords.GET("/", handlers.ListKeywords(db))
		keywords.GET("/:id", handlers.GetKeyword(db))
		keywords.PUT("/:id", handlers.UpdateKeyword(db))
		keywords.DELETE("/:id", handlers.DeleteKeyword(db))
	}

	topics := r.Group("/topics")
	{
		topics.POST("/", handlers.CreateTopic(db))
		topics.GET("/", handlers.ListTopics(db))
		topics.GET("/:id", handlers.GetTopic(db))
		topics.PUT("/:id", handlers.UpdateTopic(db))
		topics.DELETE("/:id", handlers.DeleteTopic(db))
	}

	supervisors := r.Group("/supervisors")
	{
		supervisors.POST("/", handlers.CreateSupervisor(db))
		supervisors.GET("/", handlers.ListSupervisors(db))
		supervisors.GET("/:id", handlers.GetSupervisor(db))
		supervisors.PUT("/:id", handlers.UpdateSupervisor(db))
		supervisors.DELETE("/:id", handlers.DeleteSupervisor(db))
	}

	theses := r.Group("/theses")
	{
		theses.GET("/", handlers.SearchTheses(db))
		theses.POST("/", handlers.CreateThesis(db))
		theses.GET("/:id", handlers.GetThesis(db))
		theses.PUT("/:id", handlers.UpdateThesis(db))
		theses.DELETE("/:id", handlers.DeleteThesis(db))

		theses.POST("/:id/keywords", handlers.AddThesisKeyword(db))
		theses.DELETE("/:id/keywords/:keyword_id", handlers.RemoveThesisKeyword(db))
		theses.POST("/:id/topics", handlers.AddThesisTopic(db))
		theses.DELETE("/:id/topics/:topic_id", handlers.RemoveThesisTopic(db))
		theses.POST("/:id/supervisors", handlers.AddThesisSupervisor(db))
		theses.DELETE("/:id/supervisors/:supervisor_id", handlers.RemoveThesisSupervisor(db))
	}

	return r
}
