package cache

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/extiers/tierboard/internal/models"
)

func testPlayers() []models.Player {
	return []models.Player{
		{
			UUID:        "u1",
			Username:    "Alice",
			Region:      "EU",
			Position:    1,
			TotalPoints: 55,
			Kits: []models.Kit{
				{Gamemode: "lifesteal", TierName: "HT1", Points: 50},
			},
		},
		{UUID: "u2", Username: "Bob", Region: "NA", Position: 2, TotalPoints: 12},
	}
}

func newTestSnapshots(ttl time.Duration) (*Snapshots, *MemoryStore, *time.Time) {
	store := NewMemoryStore()
	snaps := NewSnapshots(store, ttl)
	now := time.Now()
	snaps.now = func() time.Time { return now }
	return snaps, store, &now
}

func TestSnapshots_RoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps, _, _ := newTestSnapshots(10 * time.Minute)

	want := testPlayers()
	snaps.SetPlayers(ctx, "overall", want)

	got, ok := snaps.GetPlayers(ctx, "overall")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSnapshots_Expiry(t *testing.T) {
	ctx := context.Background()
	snaps, store, now := newTestSnapshots(10 * time.Minute)

	snaps.SetPlayers(ctx, "lifesteal", testPlayers())

	// Within the window the entry is still served
	*now = now.Add(9 * time.Minute)
	if _, ok := snaps.GetPlayers(ctx, "lifesteal"); !ok {
		t.Fatal("entry expired too early")
	}

	// Past the window the entry is a miss and gets evicted
	*now = now.Add(2 * time.Minute)
	if _, ok := snaps.GetPlayers(ctx, "lifesteal"); ok {
		t.Fatal("expected stale entry to miss")
	}
	if _, ok := store.Get(ctx, KeyPrefix+"lifesteal"); ok {
		t.Error("stale entry was not evicted")
	}
}

func TestSnapshots_CorruptEntries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{not json`},
		{"missing timestamp", `{"data":[]}`},
		{"missing data", `{"timestamp":123}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps, store, _ := newTestSnapshots(10 * time.Minute)
			store.Set(ctx, KeyPrefix+"overall", []byte(tt.raw), 0)

			if _, ok := snaps.GetPlayers(ctx, "overall"); ok {
				t.Fatal("corrupt entry must be a miss")
			}
			if _, ok := store.Get(ctx, KeyPrefix+"overall"); ok {
				t.Error("corrupt entry was not evicted")
			}
		})
	}
}

func TestSnapshots_FreshButWrongDataShape(t *testing.T) {
	ctx := context.Background()
	snaps, store, now := newTestSnapshots(10 * time.Minute)

	raw := fmt.Sprintf(`{"timestamp":%d,"data":"nope"}`, now.UnixMilli())
	store.Set(ctx, KeyPrefix+"overall", []byte(raw), 0)

	if _, ok := snaps.GetPlayers(ctx, "overall"); ok {
		t.Fatal("mistyped data must be a miss")
	}
	if _, ok := store.Get(ctx, KeyPrefix+"overall"); ok {
		t.Error("mistyped entry was not evicted")
	}
}

func TestSnapshots_MissOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	snaps, _, _ := newTestSnapshots(10 * time.Minute)

	if _, ok := snaps.GetPlayers(ctx, "overall"); ok {
		t.Fatal("expected miss on empty store")
	}
}

func TestSnapshots_AnnouncementsRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps, _, _ := newTestSnapshots(10 * time.Minute)

	want := []models.Announcement{
		{ID: "a1", Title: "Season reset", Body: "Tiers wiped.", AuthorName: "mods"},
	}
	snaps.SetAnnouncements(ctx, want)

	got, ok := snaps.GetAnnouncements(ctx)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, "k", []byte("v"), 0)
	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("expected delete to remove the entry")
	}
}
