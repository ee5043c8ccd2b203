package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartcare-io/admin-api/internal/api"
	"github.com/smartcare-io/admin-api/internal/core/ports"
	"github.com/smartcare-io/admin-api/internal/infrastructure/config"
	mongorepo "github.com/smartcare-io/admin-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/smartcare-io/admin-api/internal/infrastructure/db/redis"
	"github.com/smartcare-io/admin-api/internal/infrastructure/mail"
	"github.com/smartcare-io/admin-api/internal/infrastructure/queue"
	"github.com/smartcare-io/admin-api/pkg/logger"
)

// @title        SmartCare Admin API
// @version      1.0
// @description  Administrative API for users, support tickets and partner organizations.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})
	log.Info().Str("env", cfg.Env).Msg("starting admin api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongorepo.NewTicketRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ticket index creation failed")
	}

	rdb, err := redisrepo.Connect(ctx, redisrepo.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// Without an SMTP host, invite mails go to the log instead. Handy for
	// local development.
	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(mail.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			From:     cfg.SMTP.From,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			SiteURL:  cfg.SiteURL,
		})
	} else {
		log.Warn().Msg("no smtp host configured, invite mails are logged only")
		mailer = mail.NewLogMailer(log)
	}

	dispatcher := queue.NewDispatcher(cfg.InviteWorkers, mailer, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
