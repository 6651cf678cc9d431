package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/supafox/supafox/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	Long: `Start the web server. In development with content watching enabled, edits
to the legal documents reload the open pages.

Examples:
  supafox serve                               # Serve on localhost:3000
  supafox serve -p 8080 --host 0.0.0.0        # Listen on all interfaces
  supafox serve --environment development -w  # Watch content and live reload`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 3000, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().StringP("environment", "e", "development", "Deployment environment (production, preview, development)")
	serveCmd.Flags().String("content-dir", "data/content", "Directory holding the legal documents")
	serveCmd.Flags().BoolP("watch", "w", false, "Reload content on change (development only)")

	bindFlags(serveCmd.Flags(), map[string]string{
		"port":        "server.port",
		"host":        "server.host",
		"environment": "server.environment",
		"content-dir": "content.dir",
		"watch":       "content.watch",
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting SupaFox (%s) at http://%s\n", cfg.Environment(), cfg.Addr())

	// A failed start cancels gctx, which also runs the shutdown.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
