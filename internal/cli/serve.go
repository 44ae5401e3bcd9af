package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/everforgeworks/galaxies-exolog/internal/api"
	"github.com/everforgeworks/galaxies-exolog/internal/journal"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Follow the journals and serve the live trip to displays",
		Long: `Replays the journals, then keeps following the journal directory and
serves the trip over HTTP and a WebSocket until interrupted.

Endpoints:
  GET /api/trip
  GET /api/snapshot
  GET /api/system/current
  GET /api/systems
  GET /api/systems/{address}/bodies/{body}
  GET /ws`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	// 1. Catch up on what is already on disk
	engine, reader, offsets, err := a.replay()
	if err != nil {
		return err
	}

	// 2. Attach displays once the replay is done so it does not flood them
	hub := api.NewHub(a.logger)
	engine.SetObserver(trip.Observers{
		trip.NewLogObserver(a.logger, engine.Tables()),
		api.NewHubObserver(engine, hub, a.logger),
	})

	srv := &http.Server{
		Addr:              a.cfg.Server.Address,
		Handler:           api.NewRouter(engine, hub, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// 3. Hub loop
	g.Go(func() error { return hub.Run(gctx) })

	// 4. Journal tailer and the single dispatcher feeding the engine
	if a.cfg.Journal.Watch {
		tailer := journal.NewTailer(reader, offsets)
		g.Go(func() error { return tailer.Run(gctx) })
		g.Go(func() error {
			for batch := range tailer.Batches() {
				engine.AddEntries(batch)
			}
			return nil
		})
	}

	// 5. HTTP server and its shutdown
	g.Go(func() error {
		a.logger.Info("display api live", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	a.logger.Info("stopped", "trip", engine.Summary().ID)
	return err
}
