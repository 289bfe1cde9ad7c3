package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gameops/ticket-board/internal/api"
	"github.com/gameops/ticket-board/internal/api/handler"
	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
	"github.com/gameops/ticket-board/internal/core/service"
	mongodb "github.com/gameops/ticket-board/internal/infrastructure/db/mongo"
	redisdb "github.com/gameops/ticket-board/internal/infrastructure/db/redis"
	filestore "github.com/gameops/ticket-board/internal/infrastructure/storage/file"
	"github.com/gameops/ticket-board/internal/pkg/config"
	"github.com/gameops/ticket-board/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// --- Storage backend ---
	var (
		users       ports.UserRepository
		players     ports.PlayerRepository
		supervisors ports.SupervisorRepository
		statuses    ports.StatusRepository
		readiness   []handler.ReadinessCheck
		shutdowns   []func(context.Context) error
	)

	switch cfg.Storage.Backend {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		shutdowns = append(shutdowns, client.Disconnect)

		playerRepo := mongodb.NewPlayerRepository(db)
		if err := playerRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create mongo indexes")
		}
		users = mongodb.NewUserRepository(db)
		players = playerRepo
		supervisors = mongodb.NewSupervisorRepository(db)
		statuses = mongodb.NewStatusRepository(db)
		readiness = append(readiness, handler.ReadinessCheck{
			Name: "mongo",
			Check: func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return client.Ping(pingCtx, nil)
			},
		})

	case "file":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash seed admin password")
		}
		store, err := filestore.Open(cfg.Storage.DataDir, filestore.Seed{
			AdminUsername:     cfg.Seed.AdminUsername,
			AdminPasswordHash: string(hash),
			AdminRole:         string(domain.RoleAdmin),
			Supervisor:        cfg.Seed.Supervisor,
		})
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("failed to open file store")
		}
		users = filestore.NewUserRepository(store)
		players = filestore.NewPlayerRepository(store)
		supervisors = filestore.NewSupervisorRepository(store)
		statuses = filestore.NewStatusRepository(store)
		readiness = append(readiness, handler.ReadinessCheck{Name: "storage", Check: store.Ping})

	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("unknown storage backend")
	}

	// --- Upload dedup (optional) ---
	var dedup service.DedupChecker = service.NopDedup{}
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		shutdowns = append(shutdowns, func(context.Context) error { return rdb.Close() })
		dedup = redisdb.NewUploadDedup(rdb)
		readiness = append(readiness, handler.ReadinessCheck{
			Name: "redis",
			Check: func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return rdb.Ping(pingCtx).Err()
			},
		})
	}

	reportTZ, err := time.LoadLocation(cfg.Rules.ReportTZ)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Rules.ReportTZ).Msg("invalid report timezone")
	}

	// --- Services ---
	authService := service.NewAuthService(users, supervisors, cfg.JWTSecret, 24*time.Hour, log)
	rosterService := service.NewRosterService(players, supervisors,
		cfg.Rules.StrictSteamIDs, cfg.Rules.AllowUnknownSupervisor, log)
	statusService := service.NewStatusService(statuses, players, cfg.Rules.StrictSteamIDs, log)
	reportService := service.NewReportService(players, supervisors, statusService, dedup, reportTZ, log)

	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Roster:    rosterService,
		Statuses:  statusService,
		Reports:   reportService,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
		Readiness: readiness,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("backend", cfg.Storage.Backend).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	for _, fn := range shutdowns {
		if err := fn(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("dependency shutdown failed")
		}
	}
}
