package board

import (
	"context"

	"github.com/extiers/tierboard/internal/models"
	"github.com/extiers/tierboard/internal/tiers"
)

// Profile is the detail view for a single player: the overlay body in the
// rendered pages, the response of the profile endpoint in the JSON API.
type Profile struct {
	UUID           string          `json:"uuid"`
	Username       string          `json:"username"`
	AvatarURL      string          `json:"avatar_url"`
	FallbackAvatar string          `json:"fallback_avatar"`
	Title          tiers.Title     `json:"title"`
	Region         string          `json:"region"`
	RegionName     string          `json:"region_name"`
	RegionColors   tiers.ColorPair `json:"region_colors"`
	Position       int             `json:"position"`
	Shimmer        string          `json:"shimmer"`
	TotalPoints    int             `json:"total_points"`
	Active         []TierBadge     `json:"active"`
	Retired        []TierBadge     `json:"retired,omitempty"`
}

// Profile resolves a player by uuid against the overall snapshot and builds
// the detail view. An absent uuid is the terminal ErrPlayerNotFound state.
func (s *Service) Profile(ctx context.Context, playerUUID string) (Profile, error) {
	players, err := s.Leaderboard(ctx, Overall)
	if err != nil {
		return Profile{}, err
	}

	for _, p := range players {
		if p.UUID == playerUUID {
			return s.buildProfile(p), nil
		}
	}
	return Profile{}, ErrPlayerNotFound
}

// BuildProfile assembles the detail view from an already-fetched player,
// the pattern used when a row click hands the full object over.
func (s *Service) BuildProfile(p models.Player) Profile {
	return s.buildProfile(p)
}

func (s *Service) buildProfile(p models.Player) Profile {
	prof := Profile{
		UUID:           p.UUID,
		Username:       p.Username,
		AvatarURL:      AvatarBase + p.UUID,
		FallbackAvatar: FallbackAvatar,
		Title:          tiers.TitleForPoints(p.TotalPoints),
		Region:         p.Region,
		RegionName:     tiers.RegionName(p.Region),
		RegionColors:   tiers.RegionColors(p.Region),
		Position:       p.Position,
		Shimmer:        tiers.ShimmerFor(p.Position),
		TotalPoints:    p.TotalPoints,
	}

	// Retired standings are segregated; active badges keep ranked entries
	// ahead of unranked placeholders.
	var ranked, unranked []TierBadge
	for _, mode := range s.gamemodes {
		badge := badgeFor(p, mode)
		switch {
		case badge.Retired:
			prof.Retired = append(prof.Retired, badge)
		case badge.Ranked:
			ranked = append(ranked, badge)
		default:
			unranked = append(unranked, badge)
		}
	}
	prof.Active = append(ranked, unranked...)
	return prof
}
