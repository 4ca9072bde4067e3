package handlers

import "net/http"

type searchRequest struct {
	Username string `validate:"required,min=1,max=48"`
}

// SearchPlayer resolves a username to a profile
// @Summary Username search
// @Tags Players
// @Produce json
// @Param username query string true "Exact username, case-insensitive"
// @Success 200 {object} board.Profile "Profile"
// @Failure 404 {object} map[string]string "Player not found"
// @Router /api/v1/search [get]
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := searchRequest{Username: r.URL.Query().Get("username")}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid username")
		return
	}

	// Index scan first; the upstream query endpoint is the fallback when
	// the overall snapshot cannot be loaded at all.
	player, err := h.board.FindByUsername(ctx, req.Username)
	if err != nil && !isNotFound(err) {
		player, err = h.board.SearchUpstream(ctx, req.Username)
	}
	if err != nil {
		if isNotFound(err) {
			h.clearingErrorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Search failed", "username", req.Username, "error", err)
		h.clearingErrorResponse(w, http.StatusBadGateway, "Could not load player data.")
		return
	}

	// The full object is already in hand; no second lookup
	h.jsonResponse(w, http.StatusOK, h.board.BuildProfile(player))
}
