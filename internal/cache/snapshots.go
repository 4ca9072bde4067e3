// Package cache implements the local leaderboard cache: one JSON envelope
// per gamemode holding the fetch timestamp and the player snapshot, valid
// for a fixed freshness window. Caching is a performance optimization, not
// a correctness requirement, so every failure path degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/extiers/tierboard/internal/metrics"
	"github.com/extiers/tierboard/internal/models"
)

// KeyPrefix namespaces every snapshot entry in the backing store.
const KeyPrefix = "leaderboard_cache_"

// AnnouncementsKey is the envelope key used for the announcements feed.
const AnnouncementsKey = "announcements"

// envelope is the serialized cache record. Timestamp is epoch milliseconds
// of the originating fetch.
type envelope struct {
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Snapshots wraps a Store with the freshness envelope. Concurrent writes
// under the same key are last-write-wins; staleness only affects the soft
// freshness window, not correctness.
type Snapshots struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewSnapshots(store Store, ttl time.Duration) *Snapshots {
	return &Snapshots{store: store, ttl: ttl, now: time.Now}
}

// GetPlayers returns the cached snapshot for a gamemode key if present,
// well-formed and within the freshness window. Stale and corrupt entries
// are evicted and reported as a miss.
func (s *Snapshots) GetPlayers(ctx context.Context, mode string) ([]models.Player, bool) {
	var players []models.Player
	if !s.get(ctx, KeyPrefix+mode, &players) {
		return nil, false
	}
	return players, true
}

// SetPlayers stores a fresh snapshot under the gamemode key. Write failures
// are swallowed by the store.
func (s *Snapshots) SetPlayers(ctx context.Context, mode string, players []models.Player) {
	s.set(ctx, KeyPrefix+mode, players)
}

// GetAnnouncements returns the cached announcements feed, same semantics as
// GetPlayers.
func (s *Snapshots) GetAnnouncements(ctx context.Context) ([]models.Announcement, bool) {
	var feed []models.Announcement
	if !s.get(ctx, KeyPrefix+AnnouncementsKey, &feed) {
		return nil, false
	}
	return feed, true
}

func (s *Snapshots) SetAnnouncements(ctx context.Context, feed []models.Announcement) {
	s.set(ctx, KeyPrefix+AnnouncementsKey, feed)
}

func (s *Snapshots) get(ctx context.Context, key string, out any) bool {
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Timestamp == 0 || len(env.Data) == 0 {
		s.evict(ctx, key)
		return false
	}

	age := s.now().Sub(time.UnixMilli(env.Timestamp))
	if age > s.ttl {
		s.evict(ctx, key)
		return false
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		s.evict(ctx, key)
		return false
	}

	metrics.CacheHits.WithLabelValues(key).Inc()
	return true
}

func (s *Snapshots) set(ctx context.Context, key string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	env, err := json.Marshal(envelope{
		Timestamp: s.now().UnixMilli(),
		Data:      payload,
	})
	if err != nil {
		return
	}
	s.store.Set(ctx, key, env, s.ttl)
}

func (s *Snapshots) evict(ctx context.Context, key string) {
	s.store.Delete(ctx, key)
	metrics.CacheEvictions.WithLabelValues(key).Inc()
	metrics.CacheMisses.WithLabelValues(key).Inc()
}
