// Package board holds the leaderboard logic: the fetch policy over the
// upstream API and the snapshot cache, the overall-row and tier-board
// assembly, the username search index and the profile view.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/extiers/tierboard/internal/cache"
	"github.com/extiers/tierboard/internal/models"
	"github.com/extiers/tierboard/internal/upstream"
)

var (
	// ErrUnknownGamemode rejects keys outside the allow-list before any
	// fetch is attempted; the HTTP layer redirects to the overall view.
	ErrUnknownGamemode = errors.New("unknown gamemode")

	// ErrPlayerNotFound is the terminal miss state for search and profile
	// lookups.
	ErrPlayerNotFound = errors.New("player not found")
)

// Overall is the pseudo-gamemode meaning "no filter".
const Overall = "overall"

// Fetcher is the upstream surface the service depends on.
type Fetcher interface {
	Leaderboard(ctx context.Context, gamemode string) ([]models.Player, error)
	Search(ctx context.Context, term string) ([]models.Player, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

// Service resolves leaderboard data network-first: the upstream is always
// asked for fresh data, the cache refreshed on success and consulted only
// when the fetch fails.
type Service struct {
	upstream  Fetcher
	snapshots *cache.Snapshots
	gamemodes []string
	logger    *zap.SugaredLogger
}

func NewService(up Fetcher, snapshots *cache.Snapshots, gamemodes []string, logger *zap.Logger) *Service {
	return &Service{
		upstream:  up,
		snapshots: snapshots,
		gamemodes: gamemodes,
		logger:    logger.Sugar(),
	}
}

// Gamemodes returns the allow-list the deployment was configured with.
func (s *Service) Gamemodes() []string {
	out := make([]string, len(s.gamemodes))
	copy(out, s.gamemodes)
	return out
}

// ValidGamemode reports whether a route key names the overall view or an
// allow-listed gamemode.
func (s *Service) ValidGamemode(mode string) bool {
	if mode == Overall {
		return true
	}
	for _, m := range s.gamemodes {
		if m == mode {
			return true
		}
	}
	return false
}

// Leaderboard returns the snapshot for a gamemode key, Overall meaning the
// full list. On upstream failure the cached snapshot is served when still
// fresh; otherwise the fetch error surfaces.
func (s *Service) Leaderboard(ctx context.Context, mode string) ([]models.Player, error) {
	if !s.ValidGamemode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGamemode, mode)
	}

	players, err := s.upstream.Leaderboard(ctx, mode)
	if err == nil {
		s.snapshots.SetPlayers(ctx, mode, players)
		return players, nil
	}

	if cached, ok := s.snapshots.GetPlayers(ctx, mode); ok {
		s.logger.Warnw("serving cached leaderboard after fetch failure", "gamemode", mode, "error", err)
		return cached, nil
	}
	return nil, fmt.Errorf("load leaderboard %q: %w", mode, err)
}

// Announcements follows the same network-first policy as Leaderboard.
func (s *Service) Announcements(ctx context.Context) ([]models.Announcement, error) {
	feed, err := s.upstream.Announcements(ctx)
	if err == nil {
		s.snapshots.SetAnnouncements(ctx, feed)
		return feed, nil
	}

	if cached, ok := s.snapshots.GetAnnouncements(ctx); ok {
		s.logger.Warnw("serving cached announcements after fetch failure", "error", err)
		return cached, nil
	}
	return nil, fmt.Errorf("load announcements: %w", err)
}

// FindByUsername performs the client-side search strategy: an exact,
// case-insensitive match over the full overall snapshot, first match wins.
func (s *Service) FindByUsername(ctx context.Context, username string) (models.Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Player{}, ErrPlayerNotFound
	}

	players, err := s.Leaderboard(ctx, Overall)
	if err != nil {
		return models.Player{}, err
	}

	for _, p := range players {
		if strings.EqualFold(p.Username, username) {
			return p, nil
		}
	}
	return models.Player{}, ErrPlayerNotFound
}

// SearchUpstream is the server-side search strategy: the trimmed term goes
// to the upstream query endpoint and its 404 maps to ErrPlayerNotFound.
// Used as the fallback when the overall snapshot cannot be loaded.
func (s *Service) SearchUpstream(ctx context.Context, term string) (models.Player, error) {
	players, err := s.upstream.Search(ctx, term)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return models.Player{}, ErrPlayerNotFound
		}
		return models.Player{}, err
	}
	if len(players) == 0 {
		return models.Player{}, ErrPlayerNotFound
	}
	return players[0], nil
}

// activeKit returns the player's non-retired kit for a gamemode, nil when
// absent. A player is assumed to hold at most one active kit per gamemode.
func activeKit(p models.Player, mode string) *models.Kit {
	for i := range p.Kits {
		k := &p.Kits[i]
		if k.Gamemode == mode && !k.Retired {
			return k
		}
	}
	return nil
}

// kitFor returns the player's kit for a gamemode regardless of retirement.
func kitFor(p models.Player, mode string) *models.Kit {
	for i := range p.Kits {
		if p.Kits[i].Gamemode == mode {
			return &p.Kits[i]
		}
	}
	return nil
}
