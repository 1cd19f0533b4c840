package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/router"
	"github.com/fintrack/backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set. JSON is the default as it
	// is what log collectors expect.
	output := io.Writer(os.Stdout)
	if cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, err := url.Parse(cfg.Server.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dsn := cfg.Database.DSN
	if cfg.Database.Driver == models.DriverSQLite {
		// Create data directory
		err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		dsn = cfg.Database.Path
	}

	db, err := models.Connect(cfg.Database.Driver, dsn)
	if err != nil {
		log.Fatal().Str("driver", cfg.Database.Driver).Msg(err.Error())
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.Events.AMQPURL != "" {
		publisher, err = events.Dial(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Str("exchange", cfg.Events.Exchange).Msg("publishing events")
	}
	defer publisher.Close()

	users := service.NewUsers(db, cfg.Auth.BcryptCost, cfg.Users.DeletionPolicy)
	co := controllers.Controller{
		Ledger:  service.NewLedger(db, publisher),
		Budgets: service.NewBudgets(db, publisher, cfg.Budgets.UniquePeriod),
		Users:   users,
		Tokens:  auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
		Cookie: controllers.Cookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		},
	}

	r, teardown, err := router.Config(apiURL, cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(co, router.Options{DB: db, Pprof: cfg.Debug.Pprof}, r.Group(apiURL.Path))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("api", apiURL.String()).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Msg(err.Error())
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
