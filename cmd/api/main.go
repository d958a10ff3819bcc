package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parentsluxuria/wellness-platform/internal/admin"
	"github.com/parentsluxuria/wellness-platform/internal/api/router"
	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/booking"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	appconfig "github.com/parentsluxuria/wellness-platform/internal/config"
	"github.com/parentsluxuria/wellness-platform/internal/events"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
	"github.com/parentsluxuria/wellness-platform/internal/navigation"
	"github.com/parentsluxuria/wellness-platform/internal/notify"
	"github.com/parentsluxuria/wellness-platform/internal/observability/metrics"
	"github.com/parentsluxuria/wellness-platform/internal/partner"
	"github.com/parentsluxuria/wellness-platform/pkg/logging"
)

func main() {
	// Load .env in development; ignored when absent.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting wellness-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewAppMetrics(registry)

	// Notices: queue per session, optional live websocket fan-out.
	notices := notify.NewCenter(logger)
	streamHub := notify.NewStreamHub(logger)
	notices.AttachStream(streamHub)

	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else {
		logger.Warn("sendgrid not configured, using stub email sender")
		emailSender = notify.NewStubEmailSender(logger)
	}

	// Session store: Redis when configured, in-memory otherwise.
	var sessionStore identity.Store
	if cfg.SessionStore == "redis" {
		sessionStore = identity.NewRedisStore(identity.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TLS:      cfg.RedisTLS,
		}, cfg.SessionTTL)
		logger.Info("session store: redis", "addr", cfg.RedisAddr)
	} else {
		sessionStore = identity.NewInMemoryStore(cfg.SessionTTL)
		logger.Info("session store: in-memory")
	}

	sessions := identity.NewManager(identity.NewDemoProvider(), sessionStore, notices, cfg.SessionJWTSecret, cfg.SessionTTL, logger)
	resetFlow := identity.NewResetFlow(cfg.DemoOTP, cfg.MinPasswordLength, emailSender, notices, logger)

	// Appointments: Postgres when DATABASE_URL is set, in-memory otherwise.
	var apptRepo appointments.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		apptRepo = appointments.NewPostgresRepository(pool)
		logger.Info("appointments store: postgres")
	} else {
		apptRepo = appointments.NewInMemoryRepository()
		logger.Info("appointments store: in-memory")
	}

	catalogRepo := catalog.NewInMemoryRepository()
	eventsRepo := events.NewInMemoryRepository()
	partnerRepo := partner.NewInMemoryRepository()
	adminStore := admin.NewStore()

	navManager := navigation.NewManager(catalogRepo, appMetrics, logger)
	bookingService := booking.NewService(navManager, apptRepo, catalogRepo, notices, appMetrics, logger)
	partnerService := partner.NewService(partnerRepo, notices, appMetrics, logger)

	routerCfg := &router.Config{
		Logger:              logger,
		Sessions:            sessions,
		IdentityHandler:     identity.NewHandler(sessions, resetFlow, navManager, appMetrics, logger),
		NavigationHandler:   navigation.NewHandler(navManager, sessions, catalogRepo, logger),
		BookingHandler:      booking.NewHandler(bookingService, logger),
		AppointmentsHandler: appointments.NewHandler(apptRepo, logger),
		PartnerHandler:      partner.NewHandler(partnerService, logger),
		CatalogHandler:      catalog.NewHandler(catalogRepo, logger),
		EventsHandler:       events.NewHandler(eventsRepo, notices, logger),
		AdminHandler:        admin.NewHandler(adminStore, eventsRepo, logger),
		NoticesHandler:      notify.NewHandler(notices, streamHub, identity.SessionIDFromContext, logger),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		AuthRateLimit:       float64(cfg.AuthRateLimit) / cfg.AuthRateWindow.Seconds(),
		AuthRateBurst:       cfg.AuthRateLimit,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
