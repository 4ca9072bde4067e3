package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/extiers/tierboard/internal/board"
)

// GetLeaderboard returns the overall or per-gamemode ranking
// @Summary Leaderboard snapshot
// @Tags Leaderboard
// @Produce json
// @Param gamemode path string false "Gamemode key" default(overall)
// @Success 200 {object} map[string]interface{} "Leaderboard rows"
// @Failure 502 {object} map[string]string "Upstream unavailable"
// @Router /api/v1/leaderboard/{gamemode} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode := chi.URLParam(r, "gamemode")
	if mode == "" {
		mode = board.Overall
	}
	// Unknown keys are not an error; send the client to the default view
	if !h.board.ValidGamemode(mode) {
		http.Redirect(w, r, "/api/v1/leaderboard", http.StatusTemporaryRedirect)
		return
	}

	players, err := h.board.Leaderboard(ctx, mode)
	if err != nil {
		h.logger.Errorw("Failed to load leaderboard", "gamemode", mode, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Could not load leaderboard data.")
		return
	}

	rows := h.board.BuildRows(players)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"gamemode": mode,
		"count":    len(rows),
		"players":  rows,
	})
}

// GetTierBoard returns the ten-bucket tier view for one gamemode
// @Summary Tier board
// @Tags Leaderboard
// @Produce json
// @Param gamemode path string true "Gamemode key"
// @Success 200 {object} map[string]interface{} "Tier strips"
// @Router /api/v1/tierboard/{gamemode} [get]
func (h *Handler) GetTierBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode := chi.URLParam(r, "gamemode")
	if mode == board.Overall || !h.board.ValidGamemode(mode) {
		http.Redirect(w, r, "/api/v1/leaderboard", http.StatusTemporaryRedirect)
		return
	}

	players, err := h.board.Leaderboard(ctx, mode)
	if err != nil {
		h.logger.Errorw("Failed to load tier board", "gamemode", mode, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Could not load leaderboard data.")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"gamemode": mode,
		"tiers":    h.board.BuildTierBoard(players, mode),
	})
}

// GetAnnouncements returns the posts feed
// @Summary Announcements feed
// @Tags Posts
// @Produce json
// @Success 200 {object} map[string]interface{} "Announcements"
// @Router /api/v1/announcements [get]
func (h *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	feed, err := h.board.Announcements(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load announcements", "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Could not load announcements.")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count": len(feed),
		"posts": feed,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, board.ErrPlayerNotFound)
}
