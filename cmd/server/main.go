package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"farmtrack/internal/config"
	"farmtrack/internal/repository/kvstore"
	"farmtrack/internal/repository/records"
	"farmtrack/internal/repository/sheets"
	"farmtrack/internal/scheduler"
	"farmtrack/internal/server/handlers"
	"farmtrack/internal/server/router"
	activitysvc "farmtrack/internal/service/activity"
	authsvc "farmtrack/internal/service/auth"
	reportsvc "farmtrack/internal/service/report"
	"farmtrack/pkg/clients/notify"
	"farmtrack/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx := context.Background()

	backend, closeBackend, err := openBackend(ctx, cfg.Storage, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init storage backend", zap.Error(err))
	}
	defer closeBackend()

	store, err := records.NewStore(ctx, backend, baseLogger.Named("store.records"))
	if err != nil {
		baseLogger.Fatal("failed to load record store", zap.Error(err))
	}

	activityLog := activitysvc.NewLogger(store, baseLogger.Named("svc.activity"))
	reportSvc := reportsvc.NewService(store, activityLog, baseLogger.Named("svc.report"))
	authSvc := authsvc.NewService(store, baseLogger.Named("svc.auth"))

	var ledger sheets.SaleLedger
	if cfg.SheetsEnabled() {
		ledger, err = sheets.NewGoogleSheetLedger(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger", zap.Error(err))
		}
		baseLogger.Info("google sheets sale ledger enabled")
	}

	engine := router.New(store, router.Handlers{
		Auth:      handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth")),
		Crops:     handlers.NewCropHandler(store, activityLog, baseLogger.Named("handlers.crops")),
		Livestock: handlers.NewLivestockHandler(store, activityLog, baseLogger.Named("handlers.livestock")),
		Sales:     handlers.NewSaleHandler(store, activityLog, ledger, baseLogger.Named("handlers.sales")),
		Dashboard: handlers.NewDashboardHandler(store, activityLog, baseLogger.Named("handlers.dashboard")),
		Reports:   handlers.NewReportHandler(reportSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Notify.WebhookURL)
		baseLogger.Info("report summary webhook enabled")
	}

	farmName := func() string {
		if user, ok := store.CurrentUser(); ok {
			return user.FarmName
		}
		return "Your Farm"
	}

	sched := scheduler.NewScheduler(cfg.Reporting, reportSvc, notifier, farmName, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openBackend(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (kvstore.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendMongo:
		store, err := kvstore.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := store.Close(context.Background()); err != nil {
				log.Error("failed to close mongodb connection", zap.Error(err))
			}
		}
		return store, closeFn, nil
	case config.BackendMemory:
		return kvstore.NewMemoryStore(), func() {}, nil
	default:
		store, err := kvstore.NewFileStore(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
