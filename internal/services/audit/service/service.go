// Package service buffers wizard events and flushes them to clickhouse in batches
package service

import (
	"context"
	"sync/atomic"
	"time"

	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/repo"
)

// Config tunes buffering
type Config struct {
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration
	// FinalFlush bounds the flush after Run's context ends
	FinalFlush time.Duration
}

// Svc implements Journal, Reader and WorkerPort
// a nil repo turns the journal into a sink that drops everything
type Svc struct {
	repo    repo.Repo
	cfg     Config
	events  chan domain.Event
	dropped atomic.Uint64
	log     *logger.Logger
}

var (
	_ domain.Journal    = (*Svc)(nil)
	_ domain.Reader     = (*Svc)(nil)
	_ domain.WorkerPort = (*Svc)(nil)
)

// New creates the journal, r may be nil when clickhouse is disabled
func New(r repo.Repo, cfg Config) *Svc {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 256
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.FinalFlush <= 0 {
		cfg.FinalFlush = 5 * time.Second
	}
	return &Svc{
		repo:   r,
		cfg:    cfg,
		events: make(chan domain.Event, cfg.Buffer),
		log:    logger.Named("audit"),
	}
}

// Record enqueues ev, dropping it when the buffer is full
func (s *Svc) Record(ev domain.Event) {
	if s.repo == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case s.events <- ev:
	default:
		n := s.dropped.Add(1)
		s.log.Warn().Uint64("dropped_total", n).Str("session_id", ev.SessionID).Msg("audit buffer full, event dropped")
	}
}

// Dropped counts events lost to a full buffer or a failed flush
func (s *Svc) Dropped() uint64 { return s.dropped.Load() }

// Recent lists a session's newest events
func (s *Svc) Recent(ctx context.Context, sessionID string, limit int) ([]domain.Event, error) {
	if s.repo == nil {
		return nil, perr.Unavailablef("event journal is disabled")
	}
	evs, err := s.repo.Recent(ctx, sessionID, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read events")
	}
	return evs, nil
}

// Run flushes on batch size or interval until ctx ends, then drains once more
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("audit-worker")
	if s.repo == nil {
		log.Info().Msg("clickhouse disabled, audit journal off")
		<-ctx.Done()
		return ctx.Err()
	}
	if err := s.repo.EnsureTable(ctx); err != nil {
		log.Error().Err(err).Msg("ensure events table failed")
	}

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()
	batch := make([]domain.Event, 0, s.cfg.BatchSize)

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := s.repo.Insert(ctx, batch); err != nil {
			n := s.dropped.Add(uint64(len(batch)))
			log.Error().Err(err).Int("events", len(batch)).Uint64("dropped_total", n).Msg("audit flush failed")
		} else {
			log.Debug().Int("events", len(batch)).Msg("audit flushed")
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			for drained := false; !drained; {
				select {
				case ev := <-s.events:
					batch = append(batch, ev)
				default:
					drained = true
				}
			}
			fctx, cancel := context.WithTimeout(context.Background(), s.cfg.FinalFlush)
			flush(fctx)
			cancel()
			log.Info().Uint64("dropped_total", s.Dropped()).Msg("audit journal stopped")
			return ctx.Err()
		case ev := <-s.events:
			batch = append(batch, ev)
			if len(batch) >= s.cfg.BatchSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
