// Package refresh keeps the snapshot cache warm by re-issuing leaderboard
// fetches on a fixed interval while the service runs. It is a refresh
// mechanism, not error-driven retry: failed sweeps are logged and the next
// tick tries again.
package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/extiers/tierboard/internal/board"
	"github.com/extiers/tierboard/internal/metrics"
	"github.com/extiers/tierboard/internal/models"
)

// Board is the slice of the leaderboard service the refresher drives.
type Board interface {
	Gamemodes() []string
	Leaderboard(ctx context.Context, mode string) ([]models.Player, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

type Refresher struct {
	board    Board
	interval time.Duration
	logger   *zap.SugaredLogger
}

func New(b Board, interval time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{board: b, interval: interval, logger: logger.Sugar()}
}

// Run sweeps once immediately, then on every interval tick until the
// context is cancelled. A non-positive interval disables polling entirely.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	r.Sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Sweep refreshes the overall view, every allow-listed gamemode and the
// announcements feed concurrently. Cancellation propagates through the
// context, so a sweep interrupted by shutdown writes nothing further.
func (r *Refresher) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	modes := append([]string{board.Overall}, r.board.Gamemodes()...)
	for _, mode := range modes {
		mode := mode
		g.Go(func() error {
			if _, err := r.board.Leaderboard(ctx, mode); err != nil {
				r.logger.Warnw("refresh fetch failed", "gamemode", mode, "error", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		if _, err := r.board.Announcements(ctx); err != nil {
			r.logger.Warnw("refresh announcements failed", "error", err)
		}
		return nil
	})

	g.Wait()
	metrics.RefreshCycles.Inc()
	r.logger.Debugw("refresh sweep complete", "gamemodes", len(modes))
}
