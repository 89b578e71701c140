package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/krishkalaria12/chrono-snap/config"
	"github.com/krishkalaria12/chrono-snap/database"
	handler "github.com/krishkalaria12/chrono-snap/handlers"
	"github.com/krishkalaria12/chrono-snap/imagegen"
	"github.com/krishkalaria12/chrono-snap/logging"
	"github.com/krishkalaria12/chrono-snap/models"
	"github.com/krishkalaria12/chrono-snap/router"
	"github.com/krishkalaria12/chrono-snap/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:          "chrono-snap",
		Short:        "Time travel camera API",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "eras",
			Short: "Print the supported time periods",
			RunE:  runEras,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEras(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, era := range models.Eras() {
		fmt.Fprintf(w, "%s\t%s\n", era.ID, era.Name)
	}
	return w.Flush()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	editor, err := imagegen.New(ctx, cfg.Image)
	if err != nil {
		return fmt.Errorf("image service: %w", err)
	}
	if editor == nil {
		log.Warn("image service API key not set, transforms will fail", zap.String("provider", cfg.Image.Provider))
	}

	store, closer, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Error("failed to close storage", zap.Error(err))
		}
	}()
	if store == nil {
		log.Warn("no storage backend configured, images are returned inline")
	}

	opts := handler.Options{
		Editor:            editor,
		Store:             store,
		Logger:            log,
		MaxImageDimension: cfg.Image.MaxImageDimension,
		UpstreamTimeout:   cfg.Image.UpstreamTimeout,
	}

	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Error("failed to close database", zap.Error(err))
			}
		}()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		opts.History = database.NewTransformationRepository(db)
	}

	app := router.NewApp(cfg.BodyLimitMB)
	router.SetupRoutes(app, handler.New(opts), log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", cfg.Address()),
			zap.String("provider", cfg.Image.Provider),
			zap.String("storage", cfg.Storage.Backend))
		errCh <- app.Listen(cfg.Address())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}
