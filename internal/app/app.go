package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/omerdahan/seatduty/external/scores"
	"github.com/omerdahan/seatduty/internal/config"
	"github.com/omerdahan/seatduty/internal/infrastructure/repository/postgres"
	"github.com/omerdahan/seatduty/internal/interfaces/httpapi"
	"github.com/omerdahan/seatduty/internal/platform/cache"
	"github.com/omerdahan/seatduty/internal/platform/logging"
	"github.com/omerdahan/seatduty/internal/platform/resilience"
	"github.com/omerdahan/seatduty/internal/usecase"
	"github.com/omerdahan/seatduty/internal/worker"
)

// App holds the wired service: HTTP server, periodic cycle worker and the
// shared database handle.
type App struct {
	Server *http.Server
	Cycle  *worker.CycleRunner

	db     *sqlx.DB
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	zlogger := logging.Default()

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	var feedCache *cache.Store
	if cfg.CacheEnabled {
		feedCache = cache.NewStore(cfg.CacheTTL)
	}

	scoresClient := scores.NewClient(scores.ClientConfig{
		BaseURL:      cfg.ScoresBaseURL,
		TeamID:       cfg.DutyTeamID,
		LangID:       cfg.ScoresLangID,
		CountryID:    cfg.ScoresCountryID,
		TimezoneName: cfg.ScoresTimezoneName,
		Timeout:      cfg.ScoresTimeout,
		MaxRetries:   cfg.ScoresMaxRetries,
		Cache:        feedCache,
		Logger:       zlogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScoresCircuitEnabled,
			FailureThreshold: cfg.ScoresCircuitFailureCount,
			OpenTimeout:      cfg.ScoresCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScoresCircuitHalfOpenMax,
		},
	})

	gameRepo := postgres.NewGameRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	dutyRepo := postgres.NewDutyRepository(db)

	dutySvc := usecase.NewDutyService(
		scoresClient,
		gameRepo,
		rosterRepo,
		dutyRepo,
		usecase.DutyConfig{
			TeamID:      cfg.DutyTeamID,
			DutySize:    cfg.DutySize,
			WindowLimit: cfg.DutyWindowLimit,
		},
		zlogger,
	)
	rosterSvc := usecase.NewRosterService(rosterRepo, dutyRepo, zlogger)

	handler := httpapi.NewHandler(dutySvc, rosterSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var cycle *worker.CycleRunner
	if cfg.CycleEnabled {
		cycle, err = worker.NewCycleRunner(dutySvc, cfg.CycleInterval, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("build cycle worker: %w", err)
		}
	} else {
		logger.Info("cycle worker disabled", "reason", "CYCLE_ENABLED=false")
	}

	return &App{
		Server: server,
		Cycle:  cycle,
		db:     db,
		logger: logger,
	}, nil
}

// Start launches the background cycle worker. The HTTP server is started by
// the caller so it owns the listen error.
func (a *App) Start() {
	if a.Cycle != nil {
		a.Cycle.Start()
	}
}

func (a *App) Close() error {
	if a.Cycle != nil {
		if err := a.Cycle.Stop(); err != nil {
			a.logger.Error("stop cycle worker failed", "error", err)
		}
	}

	return a.db.Close()
}
