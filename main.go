package main

import (
	"context"
	"crypto/md5"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/configuration"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/infrastructure/mail"
	"vespa-academy/infrastructure/persistence"
	httpHandler "vespa-academy/interfaces/http"
	"vespa-academy/server"
	"vespa-academy/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg := configuration.C

	db, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	logger.GetLogger().WithField("ping", db.Ping()).Info("Database connected.")

	if err := persistence.EnsureCatalogSchema(db); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed ensuring catalog schema")
		os.Exit(1)
	}

	userRepository := persistence.NewUserRepository(db)
	if err := seedAdminUser(ctx, db, cfg.Admin); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Admin seed skipped")
	}

	catalogRepository := persistence.NewCatalogRepository(db)
	seriesRepository := persistence.NewSeriesRepository(db)
	videoAdminRepository := persistence.NewVideoAdminRepository(db)

	mailer := mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.SenderEmail, cfg.Mail.RecipientEmail)

	catalogUsecase := usecase.NewCatalogUsecase(catalogRepository, seriesRepository)
	videoAdminUsecase := usecase.NewVideoAdminUsecase(videoAdminRepository)
	catalogAdminUsecase := usecase.NewCatalogAdminUsecase(videoAdminRepository, seriesRepository)
	enquiryUsecase := usecase.NewEnquiryUsecase(mailer)
	userUsecase := usecase.NewUserUsecase(userRepository, cfg.App.SecretKey)

	catalogHandler := httpHandler.NewCatalogHandler(catalogUsecase)
	enquiryHandler := httpHandler.NewEnquiryHandler(enquiryUsecase)
	userHandler := httpHandler.NewUserHandler(userUsecase)
	adminVideoHandler := httpHandler.NewAdminVideoHandler(videoAdminUsecase)
	adminCatalogHandler := httpHandler.NewAdminCatalogHandler(catalogAdminUsecase)

	router := server.InitiateRouter(
		catalogHandler,
		enquiryHandler,
		userHandler,
		adminVideoHandler,
		adminCatalogHandler,
		userRepository,
		cfg.Cors.AllowOrigins,
		cfg.App.SecretKey,
	)

	port := cfg.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// seedAdminUser creates the configured administrator account when it does
// not exist yet. Passwords are stored as md5 hex digests.
func seedAdminUser(ctx context.Context, db *sql.DB, admin configuration.Admin) error {
	if admin.UserName == "" || admin.Password == "" {
		return errors.New("admin credentials not configured")
	}
	repo := persistence.NewUserRepository(db)
	if _, err := repo.GetByUserName(ctx, admin.UserName); err == nil {
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return err
	}
	return repo.CreateUser(ctx, model.User{
		Name:     "Administrator",
		UserName: admin.UserName,
		Password: fmt.Sprintf("%x", md5.Sum([]byte(admin.Password))),
	})
}
