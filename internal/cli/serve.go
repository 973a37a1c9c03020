package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/mockapi"
)

// DefaultMockAddr matches the backend's development port.
const DefaultMockAddr = "127.0.0.1:8000"

const shutdownTimeout = 5 * time.Second

// NewServeMockCommand creates the serve-mock command.
func NewServeMockCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		addr string
		seed bool
	)

	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Run an in-memory backend for development",
		Long: `Run an in-memory implementation of the records backend.

Joined display fields are computed on GET only, like the real backend, so a
freshly saved record lacks them until the list is fetched again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot listen", err)
			}
			return serveMock(cmd.Context(), rootOpts.log, ln, seed)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", DefaultMockAddr, "listen address")
	cmd.Flags().BoolVar(&seed, "seed", true, "load sample records")
	return cmd
}

// serveMock serves the mock backend on ln until ctx is done.
func serveMock(ctx context.Context, log *zap.Logger, ln net.Listener, seed bool) error {
	backend := mockapi.New(log)
	if seed {
		if err := backend.Seed(); err != nil {
			ln.Close()
			return WrapExitError(ExitFailure, "seed failed", err)
		}
	}

	srv := &http.Server{
		Handler:           backend.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("mock backend listening", zap.String("addr", ln.Addr().String()), zap.Bool("seed", seed))

	select {
	case err := <-errCh:
		return WrapExitError(ExitFailure, "server stopped", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitFailure, "shutdown failed", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return WrapExitError(ExitFailure, "server stopped", err)
	}
	log.Info("mock backend stopped")
	return nil
}
