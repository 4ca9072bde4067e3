package models

import (
	"encoding/json"
	"fmt"
)

// Player is a single leaderboard entry as returned by the upstream tiers API.
// Snapshots are read-only: they are rebuilt on every fetch and never mutated.
type Player struct {
	UUID        string `json:"uuid"`
	Username    string `json:"username"`
	Region      string `json:"region,omitempty"`
	Position    int    `json:"position"`
	TotalPoints int    `json:"total_points"`
	Kits        []Kit  `json:"kits"`
}

// Kit is a per-gamemode standing. The upstream API is not consistent about
// the gamemode field name across deployments (kit_name, gamemode, name or
// type); UnmarshalJSON normalizes whichever is present into Gamemode.
type Kit struct {
	Gamemode     string `json:"kit_name"`
	TierName     string `json:"tier_name,omitempty"`
	PeakTierName string `json:"peak_tier_name,omitempty"`
	Points       int    `json:"points"`
	Retired      bool   `json:"retired"`
}

// gamemodeAliases are checked in order; the first non-empty value wins.
var gamemodeAliases = []string{"kit_name", "gamemode", "name", "type"}

// UnmarshalJSON implements flexible decoding for the interchangeable
// gamemode field names used by different upstream deployments.
func (k *Kit) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias Kit
	a := (*Alias)(k)
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("kit unmarshal: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("kit unmarshal: %w", err)
	}

	for _, key := range gamemodeAliases {
		rawVal, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(rawVal, &s); err != nil {
			continue
		}
		if s != "" {
			k.Gamemode = s
			return nil
		}
	}
	return nil
}
