package main

import (
	"context"
	"net/http"
	"time"

	"github.com/ekremtasci/testportal/config"
	"github.com/ekremtasci/testportal/database"
	_ "github.com/ekremtasci/testportal/docs" // Swagger docs - auto-generated
	adminctrl "github.com/ekremtasci/testportal/internal/controller/admin"
	userctrl "github.com/ekremtasci/testportal/internal/controller/user"
	"github.com/ekremtasci/testportal/internal/logger"
	"github.com/ekremtasci/testportal/internal/middleware"
	"github.com/ekremtasci/testportal/internal/model"
	"github.com/ekremtasci/testportal/internal/repository"
	"github.com/ekremtasci/testportal/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Test Portal API
// @version 1.0
// @description Backend for assigning tests to students, taking them and auto-grading the results.
// @contact.name API Support
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
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewUserRepository,
			repository.NewAssignmentRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAdminTestService,
			service.NewQuestionService,
			service.NewUserTestService,
			service.NewAttemptLimitService,
			func(limiter service.AttemptLimitService, db *gorm.DB) service.TestSubmissionService {
				return service.NewTestSubmissionService(limiter, db)
			},
			func(
				userRepo repository.UserRepository,
				assignmentRepo repository.AssignmentRepository,
				answerRepo repository.AnswerRepository,
				db *gorm.DB,
			) service.AssignmentService {
				return service.NewAssignmentService(userRepo, assignmentRepo, answerRepo, db)
			},
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			adminctrl.NewQuestionController,
			adminctrl.NewAssignmentController,
			userctrl.NewUserTestController,
			userctrl.NewAssignmentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
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

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	questionCtrl *adminctrl.QuestionController,
	adminAssignmentCtrl *adminctrl.AssignmentController,
	userTestCtrl *userctrl.UserTestController,
	assignmentCtrl *userctrl.AssignmentController,
) {
	// Staff routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	adminAPIGroup.Use(middleware.RequireAuth(cfg), middleware.RequireStaff())
	{
		adminAPIGroup.POST("/tests", adminTestCtrl.CreateTest)

		adminAPIGroup.POST("/questions", questionCtrl.CreateQuestion)
		adminAPIGroup.GET("/questions", questionCtrl.GetAllQuestions)
		adminAPIGroup.GET("/questions/:question_id", questionCtrl.GetQuestion)
		adminAPIGroup.PUT("/questions/:question_id", questionCtrl.UpdateQuestion)
		adminAPIGroup.DELETE("/questions/:question_id", questionCtrl.DeleteQuestion)

		adminAPIGroup.POST("/assignments", adminAssignmentCtrl.CreateAssignments)
	}

	// Student routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	userAPIGroup.Use(middleware.RequireAuth(cfg))
	{
		userAPIGroup.GET("/tests", userTestCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", userTestCtrl.GetTestDetails)
		userAPIGroup.GET("/tests/:test_id/attempt-check", userTestCtrl.CheckAttemptLimit)
		userAPIGroup.POST("/tests/:test_id/submissions", userTestCtrl.SubmitTest)

		userAPIGroup.GET("/assignments", assignmentCtrl.GetMyAssignments)
		userAPIGroup.GET("/assignments/:assignment_id", assignmentCtrl.GetAssignmentDetails)
		userAPIGroup.POST("/assignments/:assignment_id/start", assignmentCtrl.StartTest)
		userAPIGroup.PUT("/assignments/:assignment_id/answers", assignmentCtrl.SaveAnswer)
		userAPIGroup.POST("/assignments/:assignment_id/submit", assignmentCtrl.SubmitAndGrade)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Test portal API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestAssignment{},
		&model.StudentAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
