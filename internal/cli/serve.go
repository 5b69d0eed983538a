package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/noahwilliamshaffer/resumesite/internal/api"
	"github.com/noahwilliamshaffer/resumesite/internal/config"
	"github.com/noahwilliamshaffer/resumesite/internal/docstore"
	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
	"github.com/noahwilliamshaffer/resumesite/internal/resume"
	"github.com/noahwilliamshaffer/resumesite/internal/viewer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := pdf.NewEngine()
	docs := docstore.New(cfg.DocsDir)
	sessions := viewer.NewManager(docs, engine, cfg.SessionTTL, log)
	go sessions.Run(ctx, cfg.CleanupInterval)

	svc := resume.NewService(engine, cfg.ResumeFile, cfg.OverridesFile, log)

	srv := api.NewServer(docs, sessions, svc, log, cfg)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting resumesite", "port", cfg.Port, "docs_dir", cfg.DocsDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
