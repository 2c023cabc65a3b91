package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymsession/internal/api"
	"github.com/2beens/gymsession/internal/catalog"
	"github.com/2beens/gymsession/internal/config"
	"github.com/2beens/gymsession/internal/cue"
	"github.com/2beens/gymsession/internal/db"
	"github.com/2beens/gymsession/internal/history"
	"github.com/2beens/gymsession/internal/middleware"
	"github.com/2beens/gymsession/internal/session"
	"github.com/2beens/gymsession/internal/store"
	"github.com/2beens/gymsession/internal/telemetry/metrics"
	"github.com/2beens/gymsession/internal/telemetry/tracing"
	"github.com/2beens/gymsession/internal/workout"
	"github.com/2beens/gymsession/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	session    *session.Session
	apiHandler *api.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPoolParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	}
	dbPool, err := db.NewDBPool(ctx, dbPoolParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.RunMigrations(dbPoolParams.ConnString(), params.Config.MigrationsPath); err != nil {
		return nil, fmt.Errorf("db migrations: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymsession", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymsession", rdb)
	if err != nil {
		return nil, err
	}

	exerciseCatalog, err := catalog.Load(params.Config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}

	cuePlayers := cue.Players{cue.LogPlayer{}}
	if params.Config.CuePublishEnabled {
		cuePlayers = append(cuePlayers, cue.NewPublisher(rdb, cue.DefaultChannel, time.Now))
	}

	repo := store.NewRepo(dbPool)
	historyService := history.NewService(history.NewServiceParams{
		Catalog:        exerciseCatalog,
		Store:          repo,
		MetricsManager: metricsManager,
		CacheSizeMB:    params.Config.HistoryCacheSizeMB,
		CacheTTL:       params.Config.HistoryCacheTTL,
	})

	liveSession := session.NewSession(session.NewSessionParams{
		Store:             repo,
		Snapshot:          store.NewLiveCache(rdb, store.DefaultLiveTTL),
		Catalog:           exerciseCatalog,
		History:           historyService,
		CuePlayer:         cuePlayers,
		MetricsManager:    metricsManager,
		RestTimerTick:     params.Config.RestTimerTick,
		DefaultBodyweight: params.Config.DefaultBodyweight,
		Now:               time.Now,
		NewID:             workout.NewUUID,
	})

	if resumed, ok, err := liveSession.Resume(ctx); err != nil {
		log.Errorf("resume live workout: %s", err)
	} else if ok {
		log.Infof("live workout [%s] resumed", resumed.ID)
	}

	apiHandler := api.NewHandler(api.NewHandlerParams{
		Session:           liveSession,
		Repo:              repo,
		History:           historyService,
		Catalog:           exerciseCatalog,
		Transfer:          store.NewTransfer(repo, time.Now, workout.NewUUID),
		DefaultBodyweight: params.Config.DefaultBodyweight,
		NewID:             workout.NewUUID,
	})

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		session:    liveSession,
		apiHandler: apiHandler,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymsession-router"))

	writeLimiter := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"write",
		s.config.WriteRateLimitAllowedMin,
	)
	s.apiHandler.SetupRoutes(r, writeLimiter)

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, so no mutation races the session shutdown
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	// the live workout stays mirrored in redis and is resumed on the next start
	s.session.Close()
	log.Debugln("live session closed")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
