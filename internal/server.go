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
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/catalog"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/energy"
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/misc"
	"github.com/2beens/fittracker/internal/planner"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	sessions     auth.SessionResolver
	sessionStore *auth.SessionStore // set only for redis backed sessions

	catalog    *catalog.Catalog
	reconciler *workouts.Reconciler
	profiles   *profile.Service
	plans      planner.Store

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

// storage is what a backend contributes to the server
type storage struct {
	logs     workouts.Store
	profiles profile.Store
	plans    planner.Store
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets
	if secrets == nil {
		secrets = &config.Secrets{}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		catalog:      catalog.New(),
		otelShutdown: otelShutdown,
	}

	if cfg.UsesRedis() {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
			DB:       0, // use default DB
		})
		if secrets.HoneycombEnabled {
			s.redisClient.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}

		s.sessionStore = auth.NewSessionStore(time.Duration(cfg.SessionTTLHours)*time.Hour, s.redisClient)
		s.sessions = s.sessionStore
		s.rateLimiter = redis_rate.NewLimiter(s.redisClient)
	} else {
		log.Warnf("using static dev sessions (%d tokens), rate limiting disabled", len(cfg.DevSessions))
		s.sessions = auth.NewStaticResolver(cfg.DevSessions)
	}

	var collectors []prometheus.Collector
	if cfg.StorageBackend == config.StoragePostgres {
		s.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: secrets.HoneycombEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := s.dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			s.dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	s.promRegistry = metrics.SetupPrometheus(collectors...)
	s.metricsManager = metrics.NewManager("fittracker", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	st, err := s.newStorage(cfg.StorageBackend)
	if err != nil {
		return nil, err
	}
	s.reconciler = workouts.NewReconciler(st.logs, s.metricsManager)
	s.profiles = profile.NewService(st.profiles, s.metricsManager)
	s.plans = st.plans

	log.Infof("storage backend: %s, catalog exercises: %d", cfg.StorageBackend, s.catalog.Count())
	return s, nil
}

func (s *Server) newStorage(backend string) (storage, error) {
	switch backend {
	case config.StorageMemory:
		return storage{
			logs:     workouts.NewMemoryStore(),
			profiles: profile.NewMemoryStore(),
			plans:    planner.NewMemoryStore(),
		}, nil
	case config.StorageRedis:
		return storage{
			logs:     workouts.NewRedisStore(s.redisClient),
			profiles: profile.NewRedisStore(s.redisClient),
			plans:    planner.NewRedisStore(s.redisClient),
		}, nil
	case config.StoragePostgres:
		return storage{
			logs:     workouts.NewPsqlStore(s.dbPool),
			profiles: profile.NewPsqlStore(s.dbPool),
			plans:    planner.NewPsqlStore(s.dbPool),
		}, nil
	}
	return storage{}, fmt.Errorf("unknown storage backend: %s", backend)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo, nil)
	if s.sessionStore != nil {
		miscHandler = misc.NewHandler(s.versionInfo, s.sessionStore)
	}
	miscHandler.SetupRoutes(r)

	catalog.NewHandler(s.catalog, s.config.CatalogCacheSizeMB).SetupRoutes(r)
	workouts.NewHandler(s.reconciler, s.catalog).SetupRoutes(r)
	planner.NewHandler(s.plans, s.reconciler).SetupRoutes(r)
	energy.NewHandler(energy.NewService(s.reconciler, s.profiles, s.metricsManager)).SetupRoutes(r)
	profile.NewHandler(s.profiles).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessions, s.metricsManager)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	if s.rateLimiter != nil {
		r.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, "main", s.config.RateLimitPerMin))
	}
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
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

	if s.sessionStore != nil {
		go s.cleanSessions(ctx, sessionsCleanupInterval)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) cleanSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sessionStore.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	var errs error
	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close redis client: %w", err))
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

	return errs
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConnections.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeOpenConnections.Add(-1)
	default:
		// do nothing
	}
}
