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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hearthforge/sheet-api/internal/clients/narrative"
	"github.com/hearthforge/sheet-api/internal/config"
	"github.com/hearthforge/sheet-api/internal/handlers/rest"
	authorch "github.com/hearthforge/sheet-api/internal/orchestrators/auth"
	sheetorch "github.com/hearthforge/sheet-api/internal/orchestrators/sheet"
	redisclient "github.com/hearthforge/sheet-api/internal/redis"
	sheetrepo "github.com/hearthforge/sheet-api/internal/repositories/sheet"
	usersrepo "github.com/hearthforge/sheet-api/internal/repositories/users"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the sheet API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redis, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	sheets, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{Client: redis})
	if err != nil {
		return fmt.Errorf("failed to create sheet repository: %w", err)
	}
	users, err := usersrepo.NewRedis(&usersrepo.RedisConfig{Client: redis})
	if err != nil {
		return fmt.Errorf("failed to create users repository: %w", err)
	}

	var narrativeClient narrative.Client
	if cfg.NarrativeAPIKey != "" {
		narrativeClient, err = narrative.NewOpenAI(&narrative.OpenAIConfig{
			ResponsesURL: cfg.NarrativeURL,
			APIKey:       cfg.NarrativeAPIKey,
			Model:        cfg.NarrativeModel,
		})
		if err != nil {
			return fmt.Errorf("failed to create narrative client: %w", err)
		}
	} else {
		slog.Warn("narrative api key not set, backstory and name generation disabled")
		narrativeClient = narrative.NewDisabled()
	}

	sheetService, err := sheetorch.New(&sheetorch.Config{
		SheetRepo: sheets,
		Narrative: narrativeClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}
	authService, err := authorch.New(&authorch.Config{
		UsersRepo: users,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth orchestrator: %w", err)
	}

	handler, err := rest.New(&rest.Config{
		SheetService: sheetService,
		AuthService:  authService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down http server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		slog.Info("server stopped")
	}

	return nil
}
