package models

import (
	"encoding/json"
	"testing"
)

func TestKitUnmarshal_GamemodeAliases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "kit_name",
			in:   `{"kit_name":"lifesteal","tier_name":"HT1"}`,
			want: "lifesteal",
		},
		{
			name: "gamemode",
			in:   `{"gamemode":"trident_mace","tier_name":"LT2"}`,
			want: "trident_mace",
		},
		{
			name: "name",
			in:   `{"name":"crossbow"}`,
			want: "crossbow",
		},
		{
			name: "type",
			in:   `{"type":"sumo"}`,
			want: "sumo",
		},
		{
			name: "kit_name wins over later aliases",
			in:   `{"kit_name":"lifesteal","gamemode":"ignored"}`,
			want: "lifesteal",
		},
		{
			name: "empty kit_name falls through",
			in:   `{"kit_name":"","gamemode":"glitch"}`,
			want: "glitch",
		},
		{
			name: "no identifier at all",
			in:   `{"tier_name":"HT3"}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k Kit
			if err := json.Unmarshal([]byte(tt.in), &k); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if k.Gamemode != tt.want {
				t.Errorf("Gamemode = %q, want %q", k.Gamemode, tt.want)
			}
		})
	}
}

func TestPlayerUnmarshal_FullRecord(t *testing.T) {
	in := `{
		"uuid": "u1",
		"username": "Alice",
		"region": "EU",
		"position": 1,
		"total_points": 55,
		"kits": [
			{"kit_name":"lifesteal","tier_name":"HT1","points":50,"retired":false},
			{"gamemode":"trident_mace","tier_name":"LT3","peak_tier_name":"HT2","points":10,"retired":true}
		]
	}`

	var p Player
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Username != "Alice" || p.Position != 1 || p.TotalPoints != 55 {
		t.Errorf("unexpected player fields: %+v", p)
	}
	if len(p.Kits) != 2 {
		t.Fatalf("len(Kits) = %d, want 2", len(p.Kits))
	}
	if p.Kits[1].Gamemode != "trident_mace" || !p.Kits[1].Retired {
		t.Errorf("unexpected second kit: %+v", p.Kits[1])
	}
	if p.Kits[1].PeakTierName != "HT2" {
		t.Errorf("PeakTierName = %q, want HT2", p.Kits[1].PeakTierName)
	}
}

func TestKitRoundTrip(t *testing.T) {
	k := Kit{Gamemode: "lifesteal", TierName: "HT1", Points: 50}
	raw, err := json.Marshal(k)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Kit
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != k {
		t.Errorf("round trip = %+v, want %+v", back, k)
	}
}
