// @title         FPraktikum Registration API
// @version       0.1.0
// @description   Registration wizard for the advanced physics lab course

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // optional, backs the event journal
	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgURL := pgCfg.MustString("DBURL")
	if pgCfg.MayBool("MIGRATE", true) {
		if err := store.Migrate(pgURL, *l); err != nil {
			l.Panic().Err(err).Msg("schema migration failed")
		}
	}

	chURL := chCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "fpraktikum",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 8)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
				TxAttempts:  pgCfg.MayInt("TX_ATTEMPTS", 3),
				TxBackoff:   pgCfg.MayDuration("TX_BACKOFF", 25*time.Millisecond),
			},
			CH: store.CHConfig{
				Enabled: chURL != "",
				URL:     chURL,
				Role:    "api",
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if chURL == "" {
		l.Warn().Msg("clickhouse disabled, wizard events are not journaled")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	workers := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Stack:          httpkit.StackFromConfig(apiCfg),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run server and workers until a signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	for _, w := range workers {
		g.Go(func() error {
			if err := w.Run(gctx); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("api stopped")
	}
	l.Info().Msg("api stopped")
}
