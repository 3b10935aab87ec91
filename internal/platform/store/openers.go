package store

import (
	"context"
	"fmt"
	"time"

	chx "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store/ch"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store/pg"
	str "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// openPG opens the pool, waits for postgres to answer and wraps it in the traced adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, func(pc *pgxpool.Config) {
		if cfg.AppName != "" {
			pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
		}
	})
	if err != nil {
		return nil, err
	}

	maxAttempts := str.IfZero(cfg.PG.ConnectRetries, 20)
	pingTimeout := str.IfZero(cfg.PG.PingTimeout, 3*time.Second)

	// ping the pool itself so boot attempts stay out of the sql trace
	var lastErr error
	backoff := 150 * time.Millisecond
	for range maxAttempts {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()
		if lastErr == nil {
			s.Log.Info().Int32("max_conns", p.Pool.Config().MaxConns).Msg("postgres connected")
			return newPGAdapter(p, Retry{
				Attempts: str.IfZero(cfg.PG.TxAttempts, 3),
				Backoff:  str.IfZero(cfg.PG.TxBackoff, 25*time.Millisecond),
			}), nil
		}
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, 2*time.Second)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

// openCH dials clickhouse and pings once; the audit sink is optional so there is no retry loop
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, err
	}
	toCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(toCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse ping failed: %w", err)
	}
	s.Log.Info().Str("role", cfg.CH.Role).Msg("clickhouse connected")
	return newCHAdapter(c), nil
}
