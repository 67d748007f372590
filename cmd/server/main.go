package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/handler"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/internal/server"
	"github.com/MKhiriev/go-bio-console/internal/service"
	"github.com/MKhiriev/go-bio-console/internal/store"
	"github.com/MKhiriev/go-bio-console/internal/workers"
	"github.com/MKhiriev/go-bio-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-bio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildInfo.Known() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	// secrets stay out of the log
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Float64("face_tolerance", cfg.Biometric.FaceTolerance).
		Float64("voice_threshold", cfg.Biometric.VoiceThreshold).
		Bool("enrollment_completes_login", cfg.Biometric.EnrollmentCompletesLogin).
		Int("pool_size", cfg.Workers.PoolSize).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	pool := workers.NewPool(cfg.Workers.PoolSize)

	services, err := service.NewServices(storages, db, pool, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminLogin != "" {
		admin := models.User{Login: cfg.App.AdminLogin, Password: cfg.App.AdminPassword, Role: models.RoleAdmin}
		if _, err = services.AuthService.EnsureUser(ctx, admin); err != nil {
			log.Fatal().Err(err).Str("login", cfg.App.AdminLogin).Msg("error creating admin account")
		}
	}

	janitor := workers.NewSessionJanitor(storages.SessionStorage, cfg.Workers.SessionSweepInterval, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)
	return info
}
