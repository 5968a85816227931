package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"child-validations/internal/adapters/auth/jwtauth"
	pg "child-validations/internal/adapters/storage/postgres"
	"child-validations/internal/config"
	"child-validations/internal/platform/logger"
	"child-validations/internal/ports/auth"
	"child-validations/internal/router"

	"github.com/spf13/cobra"
)

// @title Child Validations API
// @version 1.0
// @description Reglas de validación de formularios de captura del estudio (orden de fechas, offstudy, consent version).
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "child-validations",
		Short: "Form validation service for child data capture",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			var db *sql.DB
			if cfg.DatabaseURL != "" {
				db, err = pg.Open(cfg.DatabaseURL)
				if err != nil {
					log.Error("database connection failed", map[string]any{"err": err})
					return err
				}
				defer db.Close()
			} else {
				log.Warn("DATABASE_URL not set, using empty in-memory store", nil)
			}

			tables := tablesFrom(cfg)
			h, err := router.NewRouter(router.Options{
				AuthVerifier: newVerifier(cfg),
				Logger:       log,
				DB:           db,
				Tables:       &tables,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      h,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("server error", map[string]any{"err": err})
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			log.Info("shutting down", nil)
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the reference tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required for migrate")
			}

			db, err := pg.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db, tablesFrom(cfg)); err != nil {
				log.Error("migration failed", map[string]any{"err": err})
				return err
			}
			log.Info("migration complete", nil)
			return nil
		},
	}
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

// newVerifier devuelve nil sin secreto: modo dev (X-Debug-User-ID).
func newVerifier(cfg *config.Config) auth.AuthVerifier {
	if cfg.AuthJWTSecret == "" {
		return nil
	}
	return jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
}

func tablesFrom(cfg *config.Config) pg.Tables {
	return pg.Tables{
		Visit:          cfg.VisitModel,
		InfantBirth:    cfg.InfantBirthModel,
		SubjectConsent: cfg.SubjectConsentModel,
		ConsentVersion: cfg.ConsentVersionModel,
		ChildOffstudy:  cfg.ChildOffstudyModel,
		ActionItem:     cfg.ActionItemModel,
		ActionType:     cfg.ActionTypeModel,
	}
}
