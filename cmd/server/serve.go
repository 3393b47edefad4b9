package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/The-Night7/bofuri-mj/internal/handlers/api"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/encounter"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/library"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/roster"
	"github.com/The-Night7/bofuri-mj/internal/pkg/clock"
	"github.com/The-Night7/bofuri-mj/internal/pkg/idgen"
	redisclient "github.com/The-Night7/bofuri-mj/internal/redis"
	compendiumrepo "github.com/The-Night7/bofuri-mj/internal/repositories/compendium"
	"github.com/The-Night7/bofuri-mj/internal/repositories/encounters"
	"github.com/The-Night7/bofuri-mj/internal/repositories/players"
	settingsrepo "github.com/The-Night7/bofuri-mj/internal/repositories/settings"
)

type serveConfig struct {
	Addr       string  `env:"MJ_ADDR" envDefault:":8080"`
	RedisAddr  string  `env:"MJ_REDIS_ADDR" envDefault:"localhost:6379"`
	VITDivisor float64 `env:"MJ_VIT_DIVISOR" envDefault:"100"`
}

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the game master HTTP server with all configured services.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides MJ_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg serveConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	handler, err := buildHandler(&cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler(cfg *serveConfig) (*api.Handler, error) {
	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	playerRepo, err := players.NewRedis(&players.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	compendiumRepo, err := compendiumrepo.NewRedis(&compendiumrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create compendium repository: %w", err)
	}
	encounterRepo := encounters.NewInMemory()
	settingsRepo, err := settingsrepo.NewRedis(&settingsrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}

	rosterSvc, err := roster.NewOrchestrator(&roster.Config{PlayerRepo: playerRepo})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster orchestrator: %w", err)
	}
	librarySvc, err := library.NewOrchestrator(&library.Config{CompendiumRepo: compendiumRepo})
	if err != nil {
		return nil, fmt.Errorf("failed to create library orchestrator: %w", err)
	}
	encounterSvc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: encounterRepo,
		PlayerRepo:    playerRepo,
		Library:       librarySvc,
		IDGenerator:   idgen.NewUUID("enc"),
		Clock:         clock.New(),
		SettingsRepo:  settingsRepo,
		VITDivisor:    cfg.VITDivisor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	return api.NewHandler(&api.Config{
		Roster:    rosterSvc,
		Library:   librarySvc,
		Encounter: encounterSvc,
	})
}
