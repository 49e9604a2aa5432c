// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/models"
)

// Reaper deletes share links that can no longer be redeemed and, unless
// configured otherwise, the files they leave behind.
//
// A sweep and a concurrent retrieval never interleave on the same link: the
// store locks a live link for the duration of a retrieval and the delete
// waits for it.
type Reaper struct {
	purger       store.ExpiredLinkPurger
	interval     time.Duration
	timeout      time.Duration
	purgeOrphans bool
	clock        utils.Clock
	logger       *logger.Logger
}

func NewReaper(purger store.ExpiredLinkPurger, cfg config.Workers, clock utils.Clock, logger *logger.Logger) *Reaper {
	return &Reaper{
		purger:       purger,
		interval:     cfg.ReapInterval,
		timeout:      cfg.SweepTimeout,
		purgeOrphans: !cfg.KeepOrphanFiles,
		clock:        clock,
		logger:       logger,
	}
}

// Sweep runs one purge. It is safe to call while Run is active.
func (r *Reaper) Sweep(ctx context.Context) (models.SweepResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result, err := r.purger.PurgeExpired(ctx, r.purgeOrphans)
	if err != nil {
		return models.SweepResult{}, fmt.Errorf("sweep failed: %w", err)
	}

	r.logger.Info().
		Int64("links_purged", result.LinksPurged).
		Int64("files_purged", result.FilesPurged).
		Msg("sweep finished")
	return result, nil
}

// Run sweeps on every interval boundary until ctx is cancelled. The first
// sweep happens at the next boundary, not at startup.
func (r *Reaper) Run(ctx context.Context) {
	r.logger.Info().Dur("interval", r.interval).Bool("purge_orphans", r.purgeOrphans).Msg("reaper started")
	defer r.logger.Info().Msg("reaper stopped")

	for {
		now := r.clock.Now()
		timer := time.NewTimer(nextTick(now, r.interval).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			r.safeSweep(ctx)
		}
	}
}

// safeSweep keeps the schedule alive whatever a single sweep does.
func (r *Reaper) safeSweep(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Msg("sweep panicked")
		}
	}()

	if _, err := r.Sweep(ctx); err != nil {
		r.logger.Err(err).Msg("sweep failed, retrying on next tick")
	}
}

// nextTick returns the first multiple of interval strictly after now.
func nextTick(now time.Time, interval time.Duration) time.Time {
	return now.Truncate(interval).Add(interval)
}
