package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/extiers/tierboard/internal/board"
	"github.com/extiers/tierboard/internal/models"
)

// BoardService is the leaderboard surface the HTTP layer depends on.
type BoardService interface {
	Gamemodes() []string
	ValidGamemode(mode string) bool
	Leaderboard(ctx context.Context, mode string) ([]models.Player, error)
	BuildRows(players []models.Player) []board.Row
	BuildTierBoard(players []models.Player, mode string) []board.TierStrip
	Profile(ctx context.Context, playerUUID string) (board.Profile, error)
	BuildProfile(p models.Player) board.Profile
	FindByUsername(ctx context.Context, username string) (models.Player, error)
	SearchUpstream(ctx context.Context, term string) (models.Player, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

// Pinger is the upstream reachability check used by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Board          BoardService
	Upstream       Pinger
	Redis          *redis.Client
	Logger         *zap.Logger
	SearchErrorTTL time.Duration
}

type Handler struct {
	board          BoardService
	upstream       Pinger
	redis          *redis.Client
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	searchErrorTTL time.Duration
}

func New(cfg Config) *Handler {
	ttl := cfg.SearchErrorTTL
	if ttl <= 0 {
		ttl = 2 * time.Second
	}
	return &Handler{
		board:          cfg.Board,
		upstream:       cfg.Upstream,
		redis:          cfg.Redis,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		searchErrorTTL: ttl,
	}
}
