package tiers

import "testing"

func TestTierColors(t *testing.T) {
	tests := []struct {
		code string
		want ColorPair
	}{
		{"HT1", ColorPair{"#6D5D2C", "#E8BA3A"}},
		{"LT1", ColorPair{"#584C25", "#D5B355"}},
		{"HT2", ColorPair{"#5E6979", "#C4D3E7"}},
		{"LT2", ColorPair{"#4A505A", "#A0A7B2"}},
		{"HT3", ColorPair{"#6B4B36", "#F79E59"}},
		{"LT3", ColorPair{"#593722", "#C67B42"}},
		{"HT4", neutralTier},
		{"LT4", neutralTier},
		{"HT5", neutralTier},
		{"LT5", neutralTier},
		{"", neutralTier},
		{"XT9", neutralTier},
	}
	for _, tt := range tests {
		if got := TierColors(tt.code); got != tt.want {
			t.Errorf("TierColors(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRegionColors(t *testing.T) {
	tests := []struct {
		region string
		want   ColorPair
	}{
		{"AS", ColorPair{"#422C3F", "#AF7F91"}},
		{"EU", ColorPair{"#1C3E20", "#89F19C"}},
		{"NA", ColorPair{"#442228", "#D95C6A"}},
		{"", neutralRegion},
		{"SA", neutralRegion},
	}
	for _, tt := range tests {
		if got := RegionColors(tt.region); got != tt.want {
			t.Errorf("RegionColors(%q) = %v, want %v", tt.region, got, tt.want)
		}
	}
}

func TestRegionName(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"AS", "Asia"},
		{"EU", "Europe"},
		{"NA", "North America"},
		{"", "N/A"},
		{"??", "N/A"},
	}
	for _, tt := range tests {
		if got := RegionName(tt.region); got != tt.want {
			t.Errorf("RegionName(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestTitleForPoints_Boundaries(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{-5, "Rookie"},
		{0, "Rookie"},
		{9, "Rookie"},
		{10, "Combat Novice"},
		{19, "Combat Novice"},
		{20, "Combat Cadet"},
		{49, "Combat Cadet"},
		{50, "Combat Specialist"},
		{55, "Combat Specialist"},
		{99, "Combat Specialist"},
		{100, "Combat Ace"},
		{249, "Combat Ace"},
		{250, "Combat Master"},
		{399, "Combat Master"},
		{400, "Combat God"},
		{1000000, "Combat God"},
	}
	for _, tt := range tests {
		if got := TitleForPoints(tt.points); got.Name != tt.want {
			t.Errorf("TitleForPoints(%d) = %q, want %q", tt.points, got.Name, tt.want)
		}
	}
}

// The ladder must be ascending, contiguous and exhaustive: every total from
// zero up maps to exactly one rung, with no gap and no overlap.
func TestTitleLadder_Exhaustive(t *testing.T) {
	ladder := Titles()
	if len(ladder) == 0 {
		t.Fatal("empty ladder")
	}
	if ladder[0].MinPoints != 0 {
		t.Errorf("ladder starts at %d, want 0", ladder[0].MinPoints)
	}
	for i := 1; i < len(ladder); i++ {
		prev, cur := ladder[i-1], ladder[i]
		if prev.MaxPoints < 0 {
			t.Fatalf("rung %q is unbounded but not last", prev.Name)
		}
		if cur.MinPoints != prev.MaxPoints+1 {
			t.Errorf("gap or overlap between %q (max %d) and %q (min %d)",
				prev.Name, prev.MaxPoints, cur.Name, cur.MinPoints)
		}
	}
	if last := ladder[len(ladder)-1]; last.MaxPoints >= 0 {
		t.Errorf("last rung %q must be unbounded", last.Name)
	}

	// Sweep a dense range and assert single coverage
	for p := 0; p <= 500; p++ {
		matches := 0
		for _, rung := range ladder {
			if p >= rung.MinPoints && (rung.MaxPoints < 0 || p <= rung.MaxPoints) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("points %d covered by %d rungs, want exactly 1", p, matches)
		}
	}
}

func TestShimmerFor(t *testing.T) {
	if ShimmerFor(1) == ShimmerFor(2) || ShimmerFor(2) == ShimmerFor(3) {
		t.Error("top three positions must have distinct decorations")
	}
	if ShimmerFor(4) != ShimmerFor(100) {
		t.Error("positions beyond three share the generic decoration")
	}
	if ShimmerFor(0) != ShimmerFor(4) {
		t.Error("position zero falls back to the generic decoration")
	}
}
