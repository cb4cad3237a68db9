// cmd/ayur-diet/serve.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mcp-ayur-diet/internal/catalog"
	"mcp-ayur-diet/internal/config"
	"mcp-ayur-diet/internal/dietchart"
	"mcp-ayur-diet/internal/models"
	"mcp-ayur-diet/internal/server"
	"mcp-ayur-diet/internal/storage"
)

type serveFlags struct {
	host   string
	port   int
	dbPath string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = f.host
			}
			if flags.Changed("port") {
				cfg.Server.Port = f.port
			}
			if flags.Changed("db-path") {
				cfg.Storage.DBPath = f.dbPath
			}
			if root.foodsPath != "" {
				cfg.Catalog.FoodsPath = root.foodsPath
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.host, "host", "0.0.0.0", "Host address")
	flags.IntVar(&f.port, "port", 8011, "Port for HTTP transport")
	flags.StringVar(&f.dbPath, "db-path", "/data/ayur-diet.db", "Database path")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg.Catalog.FoodsPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	store := catalog.NewStore(cat)

	stor, err := storage.NewSQLiteStorage(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer stor.Close()

	text, err := newTextGenerator(ctx, cfg.AI)
	if err != nil {
		return err
	}
	charts := dietchart.NewGenerator(text, func() []models.Food { return store.Current().Foods }, logger, cfg.AITimeout())

	srv := server.NewAyurDietServer(&server.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}, stor, store, charts, logger)

	logger.Info("ayur-diet configured",
		zap.String("version", version),
		zap.String("db_path", cfg.Storage.DBPath),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Int("foods", len(cat.Foods)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	if cfg.Catalog.FoodsPath != "" && cfg.Catalog.Watch {
		w := catalog.NewWatcher(cfg.Catalog.FoodsPath, store, logger)
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("shut down cleanly")
	return nil
}

func newTextGenerator(ctx context.Context, ai config.AIConfig) (dietchart.TextGenerator, error) {
	switch ai.Provider {
	case config.ProviderGemini:
		g, err := dietchart.NewGeminiGenerator(ctx, ai.APIKey, ai.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderGateway:
		return dietchart.NewGatewayGenerator(ai.GatewayURL, ai.APIKey, ai.Model), nil
	default:
		return nil, nil
	}
}
