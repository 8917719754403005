package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	fgerrors "github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/store"
)

// serveOptions collects the serve command's flags.
type serveOptions struct {
	addr        string
	catalogPath string

	storeKind string
	storeDir  string
	redisAddr string
	mongoURI  string
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Exposes the catalog, named assembly storage, placement validation, snap
queries, and bill-of-materials derivation over HTTP. Assemblies are keyed by
name in the configured store backend:

  memory   volatile, for development
  file     JSON files under --store-dir (default ~/.config/framegrid/assemblies)
  redis    shared store at --redis-addr
  mongo    durable store at --mongo-uri

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8420", "listen address")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "TOML part file merged over the builtin catalog")
	cmd.Flags().StringVar(&opts.storeKind, "store", "memory", "store backend: memory, file, redis, mongo")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "directory for the file store")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address for the redis store")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "mongodb://localhost:27017", "connection URI for the mongo store")

	return cmd
}

// newStore builds the configured store backend, wrapped with observability
// instrumentation.
func newStore(ctx context.Context, opts serveOptions) (store.Store, error) {
	switch opts.storeKind {
	case "memory":
		return store.Instrument(store.NewMemory(), "memory"), nil
	case "file":
		st, err := store.NewFile(opts.storeDir)
		if err != nil {
			return nil, err
		}
		return store.Instrument(st, "file"), nil
	case "redis":
		st, err := store.NewRedis(ctx, store.RedisConfig{Addr: opts.redisAddr})
		if err != nil {
			return nil, err
		}
		return store.Instrument(st, "redis"), nil
	case "mongo":
		st, err := store.NewMongo(ctx, store.MongoConfig{URI: opts.mongoURI})
		if err != nil {
			return nil, err
		}
		return store.Instrument(st, "mongo"), nil
	default:
		return nil, fgerrors.New(fgerrors.ErrCodeInvalidInput, "unknown store backend: %s", opts.storeKind)
	}
}

func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	set, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	st, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			c.Logger.Warn("close store", "err", err)
		}
	}()

	api := newAPI(set, st, c.Logger)
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	c.Logger.Info("serving", "addr", opts.addr, "store", opts.storeKind)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
