// Package server wires the HTTP surface of the contact API.
package server

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Azz3m90/LandPage/internal/abuse"
	"github.com/Azz3m90/LandPage/internal/api/handlers"
	"github.com/Azz3m90/LandPage/internal/api/middleware"
	"github.com/Azz3m90/LandPage/internal/audit"
	"github.com/Azz3m90/LandPage/internal/captcha"
	"github.com/Azz3m90/LandPage/internal/config"
	"github.com/Azz3m90/LandPage/internal/logging"
	"github.com/Azz3m90/LandPage/internal/mailer"
	"github.com/Azz3m90/LandPage/internal/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	limiter  *ratelimit.Store
	auditLog *audit.Log
}

// NewServer assembles the pipeline components and the router.
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by ours
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:   router,
		cfg:      cfg,
		limiter:  ratelimit.NewStore(cfg.RateLimitWindow),
		auditLog: audit.NewLog(cfg.AuditFile),
	}
	s.setupRoutes()
	return s
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	logger := logging.GetGlobalLogger()

	verifier := captcha.NewTurnstileVerifier(s.cfg.TurnstileSecretKey, s.cfg.TurnstileTimeout)
	gate := abuse.NewGate(verifier, s.limiter, s.cfg.EnableHoneypot)

	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:       s.cfg.SMTPHost,
		Port:       s.cfg.SMTPPort,
		Username:   s.cfg.SMTPUsername,
		Password:   s.cfg.SMTPPassword,
		Encryption: s.cfg.SMTPEncryption,
		Timeout:    s.cfg.SMTPTimeout,
	})
	dispatcher := mailer.NewDispatcher(sender, mailer.Identity{
		CompanyName:    s.cfg.CompanyName,
		CompanyAddress: s.cfg.CompanyAddress,
		WebsiteURL:     s.cfg.WebsiteURL,
		AdminEmail:     s.cfg.AdminEmail,
	})

	contactHandler := handlers.NewContactHandler(gate, dispatcher, s.limiter, s.auditLog, s.cfg.AdminEmail, s.cfg.AdminResetToken)
	healthHandler := handlers.NewHealthHandler()

	s.router.Use(middleware.RequestLogger(logger))
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.BodyGuard())

	s.router.GET("/health", healthHandler.Check)

	v1 := s.router.Group("/api/v1")
	public := v1.Group("/contact")
	{
		// Coarse flood guard in front of the per-sender limit
		public.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			contactHandler.Submit,
		)
		public.POST("/reset-rate-limit", contactHandler.ResetRateLimit)
	}

	logger.Info("All routes have been set up successfully")
}

// Start starts the server
func (s *Server) Start() error {
	defer s.auditLog.Close()
	return s.router.Run(":" + s.cfg.Port)
}
