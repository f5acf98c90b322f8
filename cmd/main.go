package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Careerly/config"
	"github.com/lshigami/Careerly/database"
	_ "github.com/lshigami/Careerly/docs" // Swagger docs
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/controller"
	userctrl "github.com/lshigami/Careerly/internal/controller/user"
	"github.com/lshigami/Careerly/internal/events"
	"github.com/lshigami/Careerly/internal/logger"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/lshigami/Careerly/internal/repository"
	"github.com/lshigami/Careerly/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Careerly Interview Preparation API
// @version 1.0
// @description AI generated multiple-choice interview assessments, scoring and progress statistics.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			auth.NewTokenVerifier,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewUserRepository,
		),

		// Services
		fx.Provide(
			service.NewTextGenerator,
			events.NewPublisher,
			service.NewAssessmentService,
			service.NewProfileService,
		),

		// Controllers
		fx.Provide(
			controller.NewHealthController,
			userctrl.NewAssessmentController,
			userctrl.NewProfileController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application did not stop cleanly")
	}
}

func NewGinEngine(verifier *auth.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(auth.Middleware(verifier))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts every API route on router. Split from the server
// lifecycle so handlers can be exercised with httptest.
func RegisterRoutes(
	router *gin.Engine,
	healthCtrl *controller.HealthController,
	assessmentCtrl *userctrl.AssessmentController,
	profileCtrl *userctrl.ProfileController,
) {
	router.GET("/healthz", healthCtrl.Healthz)

	api := router.Group("/api/v1")
	{
		assessments := api.Group("/assessments")
		assessments.POST("", assessmentCtrl.GenerateAssessment)
		assessments.GET("", assessmentCtrl.GetAssessments)
		assessments.GET("/stats", assessmentCtrl.GetAssessmentStats)
		assessments.GET("/:assessment_id", assessmentCtrl.GetAssessment)
		assessments.POST("/:assessment_id/submissions", assessmentCtrl.SubmitAssessmentAnswers)
		assessments.DELETE("/:assessment_id", assessmentCtrl.DeleteAssessment)

		api.GET("/profile", profileCtrl.GetProfile)
		api.PUT("/profile", profileCtrl.UpdateProfile)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	publisher events.Publisher,
	healthCtrl *controller.HealthController,
	assessmentCtrl *userctrl.AssessmentController,
	profileCtrl *userctrl.ProfileController,
) {
	RegisterRoutes(router, healthCtrl, assessmentCtrl, profileCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Careerly API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			if closeErr := publisher.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("Failed to close event publisher")
			}
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.User{}, &model.Assessment{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
