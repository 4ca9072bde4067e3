// Package tiers holds the pure display-classification tables: tier and
// region color pairs, the points-to-title ladder and the rank decorations.
// Everything here is stateless and total over its inputs.
package tiers

// ColorPair is a background/foreground pair used by badges.
type ColorPair struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// neutral pair shared by unranked, unknown and the untinted 4/5 tiers.
var neutralTier = ColorPair{Background: "#303144", Foreground: "#81749A"}

var tierColors = map[string]ColorPair{
	"HT1": {Background: "#6D5D2C", Foreground: "#E8BA3A"},
	"LT1": {Background: "#584C25", Foreground: "#D5B355"},
	"HT2": {Background: "#5E6979", Foreground: "#C4D3E7"},
	"LT2": {Background: "#4A505A", Foreground: "#A0A7B2"},
	"HT3": {Background: "#6B4B36", Foreground: "#F79E59"},
	"LT3": {Background: "#593722", Foreground: "#C67B42"},
}

// TierColors maps a tier code to its badge colors. Tiers 4 and 5, empty and
// unrecognized codes all share the neutral pair.
func TierColors(tier string) ColorPair {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return neutralTier
}

var neutralRegion = ColorPair{Background: "#6b7280", Foreground: "#ffffff"}

var regionColors = map[string]ColorPair{
	"AS": {Background: "#422C3F", Foreground: "#AF7F91"},
	"EU": {Background: "#1C3E20", Foreground: "#89F19C"},
	"NA": {Background: "#442228", Foreground: "#D95C6A"},
}

// RegionColors maps a region code to its badge colors; unknown regions get
// the neutral pair.
func RegionColors(region string) ColorPair {
	if c, ok := regionColors[region]; ok {
		return c
	}
	return neutralRegion
}

// RegionName spells a region code out for the profile view.
func RegionName(region string) string {
	switch region {
	case "AS":
		return "Asia"
	case "EU":
		return "Europe"
	case "NA":
		return "North America"
	default:
		return "N/A"
	}
}

// Title is one rung of the points ladder. MaxPoints < 0 means unbounded.
type Title struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	MinPoints   int       `json:"min_points"`
	MaxPoints   int       `json:"max_points"`
	Colors      ColorPair `json:"colors"`
}

// titles must stay ascending, contiguous and exhaustive from 0 upward; the
// ladder is asserted in tests.
var titles = []Title{
	{
		Name:        "Rookie",
		Description: "Starting rank for players with less than 10 points.",
		Icon:        "/static/titles/rookie.svg",
		MinPoints:   0,
		MaxPoints:   9,
		Colors:      ColorPair{Background: "#2C323E", Foreground: "#D1D5DB"},
	},
	{
		Name:        "Combat Novice",
		Description: "Obtained 10+ total points.",
		Icon:        "/static/titles/combat_novice.svg",
		MinPoints:   10,
		MaxPoints:   19,
		Colors:      ColorPair{Background: "#2F374D", Foreground: "#C4B5F7"},
	},
	{
		Name:        "Combat Cadet",
		Description: "Obtained 20+ total points.",
		Icon:        "/static/titles/combat_cadet.svg",
		MinPoints:   20,
		MaxPoints:   49,
		Colors:      ColorPair{Background: "#282F4D", Foreground: "#ABA8FD"},
	},
	{
		Name:        "Combat Specialist",
		Description: "Obtained 50+ total points.",
		Icon:        "/static/titles/combat_specialist.svg",
		MinPoints:   50,
		MaxPoints:   99,
		Colors:      ColorPair{Background: "#463863", Foreground: "#D8A8D7"},
	},
	{
		Name:        "Combat Ace",
		Description: "Obtained 100+ total points.",
		Icon:        "/static/titles/combat_ace.svg",
		MinPoints:   100,
		MaxPoints:   249,
		Colors:      ColorPair{Background: "#562333", Foreground: "#FDA4AB"},
	},
	{
		Name:        "Combat Master",
		Description: "Obtained 250+ total points.",
		Icon:        "/static/titles/combat_master.svg",
		MinPoints:   250,
		MaxPoints:   399,
		Colors:      ColorPair{Background: "#414029", Foreground: "#FDC732"},
	},
	{
		Name:        "Combat God",
		Description: "Obtained 400+ total points.",
		Icon:        "/static/titles/combat_god.svg",
		MinPoints:   400,
		MaxPoints:   -1,
		Colors:      ColorPair{Background: "#414029", Foreground: "#FDC732"},
	},
}

// TitleForPoints returns the single ladder rung covering the given total.
// Negative totals clamp to the lowest rung.
func TitleForPoints(points int) Title {
	for _, t := range titles {
		if points >= t.MinPoints && (t.MaxPoints < 0 || points <= t.MaxPoints) {
			return t
		}
	}
	return titles[0]
}

// Titles returns the full ladder in ascending order.
func Titles() []Title {
	out := make([]Title, len(titles))
	copy(out, titles)
	return out
}

// ShimmerFor picks the rank ribbon decoration; positions 1-3 have unique
// artwork, everything else shares the generic one.
func ShimmerFor(position int) string {
	switch position {
	case 1:
		return "/static/shimmer/1-shimmer.svg"
	case 2:
		return "/static/shimmer/2-shimmer.svg"
	case 3:
		return "/static/shimmer/3-shimmer.svg"
	default:
		return "/static/shimmer/other.svg"
	}
}
