package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/somix-network/somix-ledger/internal/adapter"
	"github.com/somix-network/somix-ledger/internal/api/rest"
	"github.com/somix-network/somix-ledger/internal/api/server"
	"github.com/somix-network/somix-ledger/internal/config"
	"github.com/somix-network/somix-ledger/internal/ledger"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/messaging"
	"github.com/somix-network/somix-ledger/internal/missions"
	"github.com/somix-network/somix-ledger/internal/notifier"
	"github.com/somix-network/somix-ledger/internal/outbox"
	"github.com/somix-network/somix-ledger/internal/providers/jetstream"
	"github.com/somix-network/somix-ledger/internal/settlement"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
	"github.com/somix-network/somix-ledger/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Run schema migration on startup")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Somix ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
		logger.Info("Schema migration completed")
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.RealClock{}

	// Connect to the chain RPC
	dialer := &adapter.DefaultEthClientDialer{}
	ethClient, err := dialer.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.Fatal("Failed to connect to chain RPC", zap.Error(err))
	}
	defer ethClient.Close()

	custodialWallet, err := wallet.New(ctx, ethClient, cfg.Chain.PrivateKey, cfg.Chain.ConfirmPollInterval)
	if err != nil {
		logger.Fatal("Failed to initialize custodial wallet", zap.Error(err))
	}
	logger.Info("Custodial wallet ready", zap.String("address", custodialWallet.Address().Hex()))

	// Event publisher; NATS is optional
	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if cfg.NATS.URL != "" {
		jsPublisher, err := jetstream.NewPublisher(cfg.NATS)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		publisher = jsPublisher
		logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.Warn("NATS not configured, domain events disabled")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close publisher", zap.Error(err))
		}
	}()

	// Wire services
	hub := notifier.NewHub()
	notifierSvc := notifier.NewService(dataStore, hub)
	missionsSvc := missions.NewService(dataStore, notifierSvc)
	recorder := ledger.NewRecorder(dataStore, publisher)
	accountant := ledger.NewAccountant(dataStore)
	settlementSvc := settlement.NewService(dataStore, custodialWallet, publisher, clock, cfg.Chain.WithdrawRate, cfg.Chain.ConfirmTimeout)

	// Outbox dispatcher drains deferred downstream effects
	dispatcher := outbox.NewDispatcher(dataStore, clock, outbox.Options{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		WorkerPool:   cfg.Outbox.WorkerPool,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	})
	dispatcher.Register(schema.OutboxKindStarCredit, outbox.StarCreditHandler(accountant))
	dispatcher.Register(schema.OutboxKindNotification, outbox.NotificationHandler(notifierSvc))
	dispatcher.Register(schema.OutboxKindMissionProgress, outbox.MissionProgressHandler(missionsSvc))
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	restHandler := rest.NewHandler(recorder, accountant, settlementSvc, notifierSvc, missionsSvc, custodialWallet, cfg.Chain.WithdrawRate, dataStore)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
	}, restHandler, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error("Server stopped unexpectedly", zap.Error(err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.Info("Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
