package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/config"
	"github.com/dukerupert/chorechart/internal/logging"
	"github.com/dukerupert/chorechart/internal/seed"
	"github.com/dukerupert/chorechart/internal/server"
	"github.com/dukerupert/chorechart/internal/store"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chore chart HTTP server",
		Long: `Run the chore chart HTTP server.

Settings come from CHORECHART_* environment variables and an optional .env
file in the working directory. Flags override the environment.

Example:
  chorechart serve --port 9000
  chorechart serve --seed ./family.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = opts.Port
			}
			if cmd.Flags().Changed("seed") {
				cfg.SeedPath = opts.SeedPath
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", "8080", "port to listen on")

	return cmd
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	data, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return err
	}
	logger.Info("seed loaded", "path", seedName(cfg.SeedPath), "users", len(data.Users), "chores", len(data.Chores))

	a := app.New(store.NewChoreStore(data.Chores), store.NewUserStore(data.Users), app.Options{
		CurrentUserID: cfg.CurrentUserID,
		Logger:        logger.With("component", "app"),
	})
	srv := server.New(a, cfg, logger)
	go srv.RunCleanup(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func seedName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
