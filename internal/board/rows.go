package board

import (
	"sort"

	"github.com/extiers/tierboard/internal/models"
	"github.com/extiers/tierboard/internal/tiers"
)

// AvatarBase renders a 3d bust for a player uuid.
const AvatarBase = "https://render.crafty.gg/3d/bust/"

// FallbackAvatar replaces bust renders that fail to load.
const FallbackAvatar = "/static/skin-404.svg"

// TierBadge is one gamemode cell of a row or profile card.
type TierBadge struct {
	Gamemode string          `json:"gamemode"`
	Ranked   bool            `json:"ranked"`
	Retired  bool            `json:"retired"`
	Display  string          `json:"display"`
	Tooltip  string          `json:"tooltip"`
	Points   int             `json:"points"`
	Colors   tiers.ColorPair `json:"colors"`
}

// Row is one rendered line of the overall leaderboard.
type Row struct {
	Position     int             `json:"position"`
	UUID         string          `json:"uuid"`
	Username     string          `json:"username"`
	AvatarURL    string          `json:"avatar_url"`
	Shimmer      string          `json:"shimmer"`
	Region       string          `json:"region"`
	RegionColors tiers.ColorPair `json:"region_colors"`
	Title        tiers.Title     `json:"title"`
	TotalPoints  int             `json:"total_points"`
	Badges       []TierBadge     `json:"badges"`
}

// BuildRows assembles the overall view: one row per player in the order the
// API ranked them, with ranked tier badges sorted before unranked
// placeholders within each row.
func (s *Service) BuildRows(players []models.Player) []Row {
	rows := make([]Row, 0, len(players))
	for _, p := range players {
		region := p.Region
		if region == "" {
			region = "N/A"
		}
		rows = append(rows, Row{
			Position:     p.Position,
			UUID:         p.UUID,
			Username:     p.Username,
			AvatarURL:    AvatarBase + p.UUID,
			Shimmer:      tiers.ShimmerFor(p.Position),
			Region:       region,
			RegionColors: tiers.RegionColors(p.Region),
			Title:        tiers.TitleForPoints(p.TotalPoints),
			TotalPoints:  p.TotalPoints,
			Badges:       s.buildBadges(p),
		})
	}
	return rows
}

// buildBadges makes one badge per allow-listed gamemode, ranked first.
func (s *Service) buildBadges(p models.Player) []TierBadge {
	badges := make([]TierBadge, 0, len(s.gamemodes))
	for _, mode := range s.gamemodes {
		badges = append(badges, badgeFor(p, mode))
	}
	sort.SliceStable(badges, func(i, j int) bool {
		return badges[i].Ranked && !badges[j].Ranked
	})
	return badges
}

// badgeFor builds the badge for one gamemode. The display text is the raw
// tier, "R"-prefixed when the standing is retired; the tooltip carries the
// true tier name, surfacing the historical peak when it differs.
func badgeFor(p models.Player, mode string) TierBadge {
	kit := kitFor(p, mode)
	if kit == nil || kit.TierName == "" {
		return TierBadge{
			Gamemode: mode,
			Display:  "-",
			Tooltip:  "N/A",
			Colors:   tiers.TierColors(""),
		}
	}

	display := kit.TierName
	if kit.Retired {
		display = "R" + kit.TierName
	}
	tooltip := kit.TierName
	if kit.PeakTierName != "" && kit.PeakTierName != kit.TierName {
		tooltip = "Peak " + kit.PeakTierName
	}

	return TierBadge{
		Gamemode: mode,
		Ranked:   true,
		Retired:  kit.Retired,
		Display:  display,
		Tooltip:  tooltip,
		Points:   kit.Points,
		Colors:   tiers.TierColors(kit.TierName),
	}
}
