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
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-wordplay/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWatch       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordplay SSH server",
	Long: `Start an SSH server that allows users to connect and solve puzzles.

Each SSH connection gets its own session with a puzzle picker menu.
Crossword progress is saved per SSH user name; results are shared by
everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordplay/host_key

With --watch, puzzle files added to or changed in the --puzzles directory
show up in the menu without a restart.

Examples:
  wordplay serve                           # Listen on :23234 with auto-generated key
  wordplay serve --ssh :2222               # Listen on port 2222
  wordplay serve --host-key ./my_host_key  # Use specific host key
  wordplay serve --puzzles ./puzzles --watch

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload puzzles when files in --puzzles change")
	serveCmd.Flags().BoolVar(&flagUnlock, "unlock", false, "Allow unlocking a revealed crossword")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	lib, err := newLibrary(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cat, err := newCatalog(lib, store, logger)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, cat, store, logger.WithPrefix("wordplay-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting wordplay SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	if flagWatch {
		if lib.Dir == "" {
			logger.Warn("--watch needs an existing --puzzles directory", "dir", flagPuzzlesDir)
		} else {
			g.Go(func() error {
				return lib.Watch(ctx)
			})
		}
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
