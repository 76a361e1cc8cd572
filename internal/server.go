package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/leancoach/internal/checkin"
	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/config"
	"github.com/2beens/leancoach/internal/db"
	"github.com/2beens/leancoach/internal/llm"
	"github.com/2beens/leancoach/internal/mealplan"
	"github.com/2beens/leancoach/internal/middleware"
	"github.com/2beens/leancoach/internal/nutrition/macros"
	"github.com/2beens/leancoach/internal/nutrition/nutrients"
	"github.com/2beens/leancoach/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/leancoach/internal/telemetry/metrics/middleware"
	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/internal/trainingplan"

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
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	llmClient        *llm.Client
	nutrientResolver *nutrients.Resolver

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config         *config.Config
	LLMAPIKey      string
	NutrientAPIKey string
	RedisPassword  string
	VersionInfo    string
	TracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("leancoach", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.Setup(params.TracingEnabled, "leancoach-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	nutrientCache := nutrients.NewCache()
	nutrientApi := nutrients.NewAPI(
		params.Config.NutrientAPIBaseURL,
		params.NutrientAPIKey,
		nutrientCache,
		tracedHttpClient,
	)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,

		llmClient: llm.NewClient(
			params.Config.LLMBaseURL,
			params.LLMAPIKey,
			params.Config.LLMModel,
			tracedHttpClient,
		),
		nutrientResolver: nutrients.NewDefaultResolver(nutrientCache, nutrientApi),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	profilesRepo := clients.NewRepo(s.dbPool)
	targetsRepo := macros.NewRepo(s.dbPool)

	clientsHandler := clients.NewHandler(profilesRepo)
	r.HandleFunc("/clients/{userId}/profile", clientsHandler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-profile")
	r.HandleFunc("/clients/{userId}/profile", clientsHandler.HandleGetLatest).Methods("GET", "OPTIONS").Name("get-profile")

	macrosHandler := macros.NewHandler(targetsRepo, profilesRepo)
	r.HandleFunc("/macros/{userId}/calculate", macrosHandler.HandleCalculate).Methods("POST", "OPTIONS").Name("calculate-macros")
	r.HandleFunc("/macros/{userId}/override", macrosHandler.HandleOverride).Methods("POST", "OPTIONS").Name("override-macros")
	r.HandleFunc("/macros/{userId}/current", macrosHandler.HandleGetCurrent).Methods("GET", "OPTIONS").Name("get-macros")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	generationRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"plan-generation",
		s.config.PlanGenerationPerMin,
		s.metricsManager,
	)

	mealPlanHandler := mealplan.NewHandler(
		mealplan.NewRepo(s.dbPool),
		targetsRepo,
		profilesRepo,
		mealplan.NewGenerator(s.llmClient, s.config.LLMMaxTokens),
		mealplan.NewCorrector(s.nutrientResolver, s.metricsManager),
		s.metricsManager,
	)
	r.Handle(
		"/mealplans/{userId}/generate",
		generationRateLimit(http.HandlerFunc(mealPlanHandler.HandleGenerate)),
	).Methods("POST", "OPTIONS").Name("generate-meal-plan")
	r.HandleFunc("/mealplans/{userId}/current", mealPlanHandler.HandleGetCurrent).Methods("GET", "OPTIONS").Name("get-meal-plan")

	trainingPlanHandler := trainingplan.NewHandler(
		trainingplan.NewRepo(s.dbPool),
		profilesRepo,
		trainingplan.NewGenerator(s.llmClient, s.config.LLMMaxTokens),
		s.metricsManager,
	)
	r.Handle(
		"/trainingplans/{userId}/generate",
		generationRateLimit(http.HandlerFunc(trainingPlanHandler.HandleGenerate)),
	).Methods("POST", "OPTIONS").Name("generate-training-plan")
	r.HandleFunc("/trainingplans/{userId}/current", trainingPlanHandler.HandleGetCurrent).Methods("GET", "OPTIONS").Name("get-training-plan")

	checkInHandler := checkin.NewHandler(
		checkin.NewRepo(s.dbPool),
		targetsRepo,
		profilesRepo,
		s.metricsManager,
	)
	r.HandleFunc("/checkins/window", checkInHandler.HandleWindow).Methods("GET", "OPTIONS").Name("checkin-window")
	r.HandleFunc("/checkins/overdue", checkInHandler.HandleListOverdue).Methods("GET", "OPTIONS").Name("overdue-clients")
	r.HandleFunc("/checkins/{userId}", checkInHandler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-checkin")
	r.HandleFunc("/checkins/{userId}", checkInHandler.HandleList).Methods("GET", "OPTIONS").Name("list-checkins")
	r.HandleFunc("/checkins/adjustments/{adjustmentId}/approve", checkInHandler.HandleApproveAdjustment).Methods("POST", "OPTIONS").Name("approve-adjustment")
	r.HandleFunc("/checkins/adjustments/{adjustmentId}/dismiss", checkInHandler.HandleDismissAdjustment).Methods("POST", "OPTIONS").Name("dismiss-adjustment")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
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
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
