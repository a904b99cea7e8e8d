package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"kitty-registry/internal/adapters/auth/identity"
	"kitty-registry/internal/adapters/entropy"
	memledger "kitty-registry/internal/adapters/ledger/memory"
	"kitty-registry/internal/adapters/ledger/remote"
	bdg "kitty-registry/internal/adapters/storage/badger"
	pg "kitty-registry/internal/adapters/storage/postgres"
	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/platform/config"
	"kitty-registry/internal/platform/httpclient"
	"kitty-registry/internal/ports/auth"
	entropyport "kitty-registry/internal/ports/entropy"
	"kitty-registry/internal/ports/ledger"
	"kitty-registry/internal/router"

	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Entropy: entropySource(cfg),
		Logger:  lg,
		Kitties: kitties.Config{
			CreatePrice:        ledger.Balance(cfg.CreatePrice),
			MaxOwned:           cfg.MaxOwned,
			MaxKittyID:         kitties.KittyID(cfg.MaxKittyID),
			RequireOppositeSex: cfg.RequireOppositeSex,
		},
	}

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := pg.Open(ctx, cfg.DBDSN, pg.DefaultPoolConfig())
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	case config.StorageBadger:
		bcfg := bdg.DefaultConfig()
		bcfg.Path = cfg.BadgerPath
		bcfg.Logger = lg
		db, err := bdg.Open(bcfg)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.Badger = db
	case config.StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage)
	}

	var err error
	if opts.Ledger, err = stakeLedger(cfg); err != nil {
		return err
	}
	if opts.Verifier, err = verifier(cfg); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": srv.Addr, "storage": string(cfg.Storage)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	db, err := pg.Open(cmd.Context(), cfg.DBDSN, pg.DefaultPoolConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	lg.Info("migrations applied", nil)
	return nil
}

// stakeLedger usa el ledger remoto si LEDGER_URL está seteado; si no, uno en memoria.
func stakeLedger(cfg config.Config) (ledger.StakeLedger, error) {
	if cfg.LedgerURL == "" {
		lg.Warn("LEDGER_URL not set, using in-memory ledger", map[string]any{"opening_balance": cfg.LedgerOpeningBalance})
		return memledger.NewLedger().WithOpeningBalance(ledger.Balance(cfg.LedgerOpeningBalance)), nil
	}
	c, err := httpclient.New(httpclient.Config{BaseURL: cfg.LedgerURL, APIKey: cfg.LedgerAPIKey})
	if err != nil {
		return nil, fmt.Errorf("ledger client: %w", err)
	}
	return remote.NewLedger(c), nil
}

// verifier devuelve nil (modo dev, X-Debug-Account-ID) si IDENTITY_URL no está seteado.
func verifier(cfg config.Config) (auth.Verifier, error) {
	if cfg.IdentityURL == "" {
		lg.Warn("IDENTITY_URL not set, accepting debug account header", nil)
		return nil, nil
	}
	c, err := httpclient.New(httpclient.Config{BaseURL: cfg.IdentityURL, APIKey: cfg.IdentityAPIKey})
	if err != nil {
		return nil, fmt.Errorf("identity client: %w", err)
	}
	return identity.NewVerifier(identity.NewClient(c)), nil
}

func entropySource(cfg config.Config) entropyport.Source {
	if cfg.EntropySeed != "" {
		lg.Warn("ENTROPY_SEED set, genes are predictable", nil)
		return entropy.NewHashChain([]byte(cfg.EntropySeed))
	}
	return entropy.NewCryptoSource()
}
