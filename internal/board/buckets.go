package board

import (
	"fmt"

	"github.com/extiers/tierboard/internal/models"
	"github.com/extiers/tierboard/internal/tiers"
)

// stripStyle is the fixed per-tier header presentation, Tier 1 first.
var stripStyle = [5]struct {
	headerBG   string
	labelColor string
	icon       string
}{
	{"#41361B", "#F0B857", "/static/tiers/HT1.svg"},
	{"#343843", "#A9B1AD", "/static/tiers/HT2.svg"},
	{"#352620", "#D5914E", "/static/tiers/HT3.svg"},
	{"#161E2A", "#B1C0CC", ""},
	{"#161E2A", "#B1C0CC", ""},
}

// BoardEntry is one player inside a tier bucket.
type BoardEntry struct {
	UUID         string          `json:"uuid"`
	Username     string          `json:"username"`
	AvatarURL    string          `json:"avatar_url"`
	Region       string          `json:"region"`
	RegionColors tiers.ColorPair `json:"region_colors"`
	High         bool            `json:"high"`
	Tooltip      string          `json:"tooltip"`
	Points       int             `json:"points"`
}

// TierStrip is one horizontal band of the tier board: the HT bucket stacked
// above the LT bucket for a single major tier. Empty buckets keep their
// header metadata so the strip still renders.
type TierStrip struct {
	Tier       int          `json:"tier"`
	Label      string       `json:"label"`
	HeaderBG   string       `json:"header_bg"`
	LabelColor string       `json:"label_color"`
	Icon       string       `json:"icon,omitempty"`
	High       []BoardEntry `json:"high"`
	Low        []BoardEntry `json:"low"`
}

// BuildTierBoard buckets players into the ten HT1..LT5 buckets for one
// gamemode. A player lands in the bucket named by their single non-retired
// kit for the mode; retired standings never appear here. Strips come back
// Tier 1 through Tier 5.
func (s *Service) BuildTierBoard(players []models.Player, mode string) []TierStrip {
	strips := make([]TierStrip, 5)
	for i := range strips {
		style := stripStyle[i]
		strips[i] = TierStrip{
			Tier:       i + 1,
			Label:      fmt.Sprintf("Tier %d", i+1),
			HeaderBG:   style.headerBG,
			LabelColor: style.labelColor,
			Icon:       style.icon,
			High:       []BoardEntry{},
			Low:        []BoardEntry{},
		}
	}

	for _, p := range players {
		kit := activeKit(p, mode)
		if kit == nil {
			continue
		}
		high, tier, ok := parseTierCode(kit.TierName)
		if !ok {
			continue
		}

		tooltip := kit.TierName
		if kit.PeakTierName != "" && kit.PeakTierName != kit.TierName {
			tooltip = "Peak " + kit.PeakTierName
		}
		entry := BoardEntry{
			UUID:         p.UUID,
			Username:     p.Username,
			AvatarURL:    AvatarBase + p.UUID,
			Region:       p.Region,
			RegionColors: tiers.RegionColors(p.Region),
			High:         high,
			Tooltip:      tooltip,
			Points:       kit.Points,
		}

		strip := &strips[tier-1]
		if high {
			strip.High = append(strip.High, entry)
		} else {
			strip.Low = append(strip.Low, entry)
		}
	}

	return strips
}

// parseTierCode splits "HT2" style codes into sub-tier and major tier.
func parseTierCode(code string) (high bool, tier int, ok bool) {
	if len(code) != 3 {
		return false, 0, false
	}
	switch code[:2] {
	case "HT":
		high = true
	case "LT":
		high = false
	default:
		return false, 0, false
	}
	tier = int(code[2] - '0')
	if tier < 1 || tier > 5 {
		return false, 0, false
	}
	return high, tier, true
}
