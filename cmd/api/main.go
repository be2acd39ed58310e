package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"portfolio-contact/config"
	_ "portfolio-contact/docs" // Important for Swagger
	v1 "portfolio-contact/internal/delivery/http/v1"
	"portfolio-contact/internal/usecase"
	"portfolio-contact/pkg/email"
	"portfolio-contact/pkg/logger"
	"portfolio-contact/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// @title           Portfolio Contact Relay API
// @version         1.0
// @description     Relays portfolio contact form submissions to the site owner by email.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact relay", "port", cfg.Port, "provider", cfg.MailProvider)

	// 3. Setup Mail Provider
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up mail provider", "error", err)
		os.Exit(1)
	}
	if !sender.IsConfigured() {
		logger.Log.Warn("Mail provider not fully configured - every contact submission will fail", "provider", sender.Name())
	}

	// 4. Setup UseCases
	var validate *validator.Validate
	if cfg.StrictValidation {
		validate = validation.New()
	}
	contactUC := usecase.NewContactUsecase(sender, validate)
	healthUC := usecase.NewHealthUsecase(sender)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	eg.Go(sigTrap(ctx))

	err = eg.Wait()
	var sig errSignal
	if err != nil && !errors.As(err, &sig) {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Server exiting")
}
