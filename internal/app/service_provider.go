package app

import (
	"context"
	"net/http"

	gameAPI "lucky888_backend/internal/api/game"
	sessionAPI "lucky888_backend/internal/api/session"
	"lucky888_backend/internal/config"
	"lucky888_backend/internal/config/env"
	"lucky888_backend/internal/metrics"
	"lucky888_backend/internal/middleware"
	"lucky888_backend/internal/repository"
	"lucky888_backend/internal/repository/memory_repo"
	"lucky888_backend/internal/repository/stats_repo"
	"lucky888_backend/internal/repository/table_repo"
	"lucky888_backend/internal/service"
	"lucky888_backend/internal/service/lucky"
	"lucky888_backend/internal/service/session"
	"lucky888_backend/pkg/logger"
	"lucky888_backend/pkg/resp"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	loggerCfg config.LoggerConfig
	logger    *zap.Logger

	// Metrics
	metrics *metrics.Metrics

	//TXManager
	txManager trm.Manager

	// Database
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool

	// Session bits
	jwtCfg      config.JWTConfig
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Game bits
	gameCfg   config.GameConfig
	tableRepo repository.TableRepository
	statsRepo repository.StatsRepository
	gameServ  service.GameService
	gameHand  *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		sp.loggerCfg = env.NewLoggerConfig()
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LoggerCfg().AppEnv(), sp.LoggerCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := sp.PgConfig().PoolConfig()
		if err != nil {
			panic("failed to build db pool config: " + err.Error())
		}
		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.StorageCfg().Kind() != config.StoragePostgres {
			sp.txManager = memory_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) TableRepository(ctx context.Context) repository.TableRepository {
	if sp.tableRepo == nil {
		switch sp.StorageCfg().Kind() {
		case config.StoragePostgres:
			sp.tableRepo = table_repo.NewTableRepository(sp.DBClient(ctx))
		default:
			sp.tableRepo = memory_repo.NewTableRepository()
		}
	}
	return sp.tableRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = lucky.NewGameService(
			sp.GameCfg(),
			sp.TableRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.GameCfg(),
			sp.JWTCfg(),
			sp.TableRepository(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.SessionService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Metrics(sp.Metrics()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Method(http.MethodGet, "/metrics", sp.Metrics().Handler())

		// Session endpoints
		sessionHandler := sp.SessionHandler(ctx)
		r.Post("/sessions", sessionHandler.Create)

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Get("/stats", gameHandler.Stats)
		r.Route("/game", func(rr chi.Router) {
			rr.Get("/odds", gameHandler.Odds)
			rr.Get("/config", gameHandler.Config)

			rr.Group(func(ar chi.Router) {
				ar.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
				ar.Get("/state", gameHandler.State)
				ar.Post("/wagers", gameHandler.PlaceWager)
				ar.Delete("/wagers", gameHandler.ClearWagers)
				ar.Put("/target", gameHandler.SetTarget)
				ar.Post("/spin", gameHandler.Spin)
				ar.Get("/history", gameHandler.History)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает ресурсы, созданные провайдером
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
