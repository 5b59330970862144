// Package main wires the ledger core, adapters, and HTTP delivery together
// and runs the API server.
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"chainpass/config"
	_ "chainpass/docs"
	"chainpass/internal/adapters/auth"
	"chainpass/internal/adapters/email"
	"chainpass/internal/adapters/payment"
	deliveryhttp "chainpass/internal/delivery/http"
	"chainpass/internal/delivery/http/controllers"
	"chainpass/internal/delivery/http/middleware"
	"chainpass/internal/domain"
	"chainpass/internal/ledger"
	"chainpass/internal/repository/postgres"
	"chainpass/internal/services"
)

// @title ChainPass API
// @version 1.0
// @description Event ticketing ledger: organizers create events, attendees pay exact fees for non-transferable tickets, organizers withdraw escrowed fees after the deadline.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("database ping: %v", err)
	}
	logger.Info("connected to postgres")

	journal := postgres.NewJournalRepository(db)

	var transfer domain.ValueTransfer
	if cfg.PaymentGatewayURL != "" {
		transfer = payment.NewHTTPTransfer(&http.Client{Timeout: 10 * time.Second}, cfg.PaymentGatewayURL)
	} else {
		if cfg.Environment == "production" {
			log.Fatal("PAYMENT_GATEWAY_URL is required in production")
		}
		logger.Warn("no payment gateway configured, using in-memory account book")
		transfer = payment.NewAccountBook()
	}

	core := ledger.New(cfg.OwnerID, cfg.BaseTokenURI, ledger.SystemClock(), transfer, journal, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	var authController *controllers.AuthController
	if cfg.Environment != "production" {
		authController = controllers.NewAuthController(logger, auth.NewJWTIssuer(cfg.JWTSecret))
	}

	mux := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Events:        controllers.NewEventController(logger, core, journal),
		Registrations: controllers.NewRegistrationController(logger, core, core, core, emailService),
		Escrow:        controllers.NewEscrowController(logger, core),
		Tickets:       controllers.NewTicketController(logger, core, core),
		Auth:          authController,
		Verifier:      verifier,
		Logger:        logger,
	})

	handler := middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
