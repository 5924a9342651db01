// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"quorum/internal/config"
	"quorum/internal/middleware"
	"quorum/internal/repository"
	"quorum/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	tagRepo        repository.TagRepository
	questionRepo   repository.QuestionRepository
	answerRepo     repository.AnswerRepository
	accounts       *service.AccountService
	profiles       *service.ProfileService
	questions      *service.QuestionService
	answers        *service.AnswerService
	feed           *service.FeedService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// The bootstrap layer establishes DB/Redis for the server binary; tests pass
// their own.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	tagRepo := repository.NewTagRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("quorum-api"),
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		tagRepo:        tagRepo,
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
	}
	server.accounts = service.NewAccountService(userRepo)
	server.profiles = service.NewProfileService(profileRepo, userRepo)
	server.questions = service.NewQuestionService(questionRepo, tagRepo, profileRepo)
	server.answers = service.NewAnswerService(answerRepo, questionRepo, profileRepo)
	server.feed = service.NewFeedService(questionRepo, answerRepo, profileRepo, server.questions)

	return server
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit so browser clients
	// still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"reason":  "Too many requests, please try again later",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Quorum Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Get("/logout", s.Logout)

	// Public read routes
	api.Get("/feed", middleware.OptionalAuth, s.GetFeed)
	api.Get("/tags", s.GetTags)
	questions := api.Group("/questions")
	questions.Get("/:id/thread", s.GetThread)
	questions.Get("/:id", s.GetQuestion)

	// Protected write routes: explicit create/update contracts
	protected := api.Group("", middleware.AuthRequired)
	protected.Post("/questions", s.CreateQuestion)
	protected.Put("/questions/:id", s.UpdateQuestion)
	protected.Post("/answers", s.CreateAnswer)
	protected.Put("/answers/:id", s.UpdateAnswer)
	protected.Post("/profiles", s.CreateProfile)
	protected.Put("/profiles/:id", s.UpdateProfile)
	protected.Get("/profiles/me", s.GetMyProfile)

	// Legacy surface: the original overloaded endpoints, kept as thin
	// id-decides shims over the explicit operations above.
	app.Post("/sign-up/", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	app.Post("/login/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	app.Get("/logout/", s.Logout)
	app.Get("/question/", s.ListQuestions)
	app.Post("/question/", s.UpsertQuestion)
	app.Post("/profile/", s.UpsertProfile)
	app.Put("/profile/", s.UpsertProfile)
	app.Post("/answer/", s.UpsertAnswer)
	app.Get("/", middleware.OptionalAuth, s.LegacyPage)
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "reason": "alive"})
}

// ReadinessCheck reports whether the database is reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"reason":  "database unavailable",
		})
	}
	return c.JSON(fiber.Map{"success": true, "reason": "ready"})
}
