package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"communitycenter/config"
	_ "communitycenter/docs"
	"communitycenter/internal/adapters/auth"
	"communitycenter/internal/adapters/email"
	httpdelivery "communitycenter/internal/delivery/http"
	"communitycenter/internal/delivery/http/controllers"
	"communitycenter/internal/delivery/http/middleware"
	"communitycenter/internal/repository/memory"
	"communitycenter/internal/repository/postgres"
	"communitycenter/internal/services"
)

const (
	contextTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
	centerName      = "Maple Grove Community Center"
)

// @title Community Center API
// @version 1.0
// @description Backend for the community center: event calendar, room bookings, donations, and newsletter signup.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories. Events live in memory and are reseeded on startup;
	// everything else is in postgres.
	eventRepo := memory.NewEventRepository()
	roomRepo := postgres.NewRoomRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	donationRepo := postgres.NewDonationRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)
	tokens := auth.NewJWT(cfg.JWTSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	// Services
	eventService := services.NewEventService(eventRepo, roomRepo, contextTimeout)
	authService := services.NewAuthService(userRepo, roleRepo, hasher, tokens, cfg.JWTExpiry)
	bookingService := services.NewBookingService(bookingRepo, roomRepo, contextTimeout)
	donationService := services.NewDonationService(donationRepo, contextTimeout)
	newsletterService := services.NewNewsletterService(subscriberRepo, mailer, renderer, logger, centerName, contextTimeout)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	created, err := services.NewSeedService(eventRepo).SeedYear(seedCtx, cfg.SeedYear)
	cancel()
	if err != nil {
		logger.Error("failed to seed events", "year", cfg.SeedYear, "err", err)
		os.Exit(1)
	}
	logger.Info("seeded recurring events", "year", cfg.SeedYear, "created", created)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Event:      controllers.NewEventController(logger, eventService),
		AdminEvent: controllers.NewAdminEventController(logger, eventService),
		Room:       controllers.NewRoomController(logger, roomRepo),
		Auth:       controllers.NewAuthController(logger, authService),
		Booking:    controllers.NewBookingController(logger, bookingService),
		Donation:   controllers.NewDonationController(logger, donationService),
		Newsletter: controllers.NewNewsletterController(logger, newsletterService),
	}, tokens)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
