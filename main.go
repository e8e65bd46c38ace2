package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-room/internal/auth"
	"auction-room/internal/bidding"
	"auction-room/internal/config"
	"auction-room/internal/deposit"
	"auction-room/internal/hub"
	"auction-room/internal/lifecycle"
	"auction-room/internal/metrics"
	"auction-room/internal/repository"
	"auction-room/internal/server"
	handler "auction-room/services/auction/handler"
	"auction-room/utils"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.File)
	metrics.Register()

	repo, cleanup, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	roomHub := hub.NewHub()
	manager := lifecycle.NewManager(ctx, repo, roomHub)

	provider, err := deposit.NewProvider(cfg.Deposits.Provider, cfg.Deposits.BaseURL)
	if err != nil {
		utils.Fatal("failed to create deposit provider", map[string]any{"error": err.Error()})
	}
	depositSvc := deposit.NewService(repo, provider, cfg.Deposits.WebhookSecret)
	gate := deposit.NewGate(repo)
	submitter := bidding.NewSubmitter(repo, gate, actorRegistry{manager})

	validator := auth.NewStaticValidator(nil)
	for _, entry := range cfg.Auth.Tokens {
		validator.Add(entry.Token, auth.Principal{UserID: entry.UserID, Username: entry.Username, Admin: entry.Admin})
	}

	router := server.SetupRouter(
		handler.NewAuctionHandler(manager, repo),
		handler.NewDepositHandler(depositSvc),
		handler.NewWSHandler(roomHub, validator, manager, submitter, manager),
	)

	srv := &http.Server{Addr: cfg.Server.Port, Handler: router}

	go func() {
		utils.Info("auction room server starting", map[string]any{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down gracefully", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}

// actorRegistry adapts the lifecycle manager to the submitter's registry.
type actorRegistry struct {
	manager *lifecycle.Manager
}

func (r actorRegistry) ActorFor(auctionID string) (bidding.Enqueuer, bool) {
	a, ok := r.manager.ActorFor(auctionID)
	if !ok {
		return nil, false
	}
	return a, true
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func openStore(cfg *config.Config) (repository.AuctionDB, func(), error) {
	switch cfg.Store.Driver {
	case "bolt":
		store, err := repository.NewBoltStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}
