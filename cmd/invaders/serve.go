package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/platform/web"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and the HTTP scoreboard API",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).
With --http, a read-only JSON API exposes scores and recent runs.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  invaders serve                           # SSH on :23234
  invaders serve --ssh :2222               # SSH on port 2222
  invaders serve --http :8080              # Also serve the JSON API
  invaders serve --ssh "" --http :8080     # JSON API only
  invaders serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve, set --ssh or --http")
	}
	cmd.SilenceUsage = true

	logger, err := newLogger("invaders")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var httpErr chan error
	if flagHTTPAddr != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open scores database: %w", err)
		}
		defer store.Close()

		srv := web.NewServer(flagHTTPAddr, store, logger.WithPrefix("invaders-http"))
		httpErr = make(chan error, 1)
		go func() {
			httpErr <- srv.ListenAndServe(ctx)
		}()

		if flagSSHAddr == "" {
			if err := <-httpErr; err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		}
	}

	// waitHTTP stops the HTTP server if it runs and joins its error with err.
	waitHTTP := func(err error) error {
		if httpErr == nil {
			return err
		}
		stop()
		if herr := <-httpErr; herr != nil {
			return errors.Join(err, fmt.Errorf("http server: %w", herr))
		}
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("invaders-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return waitHTTP(fmt.Errorf("create SSH server: %w", err))
	}

	logger.Info("connect with ssh", "address", cfg.Address)
	if err := server.ListenAndServe(); err != nil {
		return waitHTTP(fmt.Errorf("ssh server: %w", err))
	}
	return waitHTTP(nil)
}
