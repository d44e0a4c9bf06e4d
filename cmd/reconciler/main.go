package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/somix-network/somix-ledger/internal/adapter"
	"github.com/somix-network/somix-ledger/internal/config"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/messaging"
	"github.com/somix-network/somix-ledger/internal/settlement"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// The reconciler is a one-shot job: it resolves withdrawal attempts left in
// the submitted state by a crashed or timed-out API process. Run it
// periodically (cron or a scheduler).
func main() {
	flag.Parse()

	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "ledger-reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting withdrawal reconciler")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

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

	svc := settlement.NewService(dataStore, custodialWallet, messaging.NoopPublisher{}, adapter.RealClock{}, cfg.Chain.WithdrawRate, cfg.Chain.ConfirmTimeout)

	if err := svc.Reconcile(ctx); err != nil {
		logger.Fatal("Reconciliation failed", zap.Error(err))
	}

	logger.Info("Reconciliation completed")
}
