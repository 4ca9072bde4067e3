package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetProfile returns the detail view for one player
// @Summary Player profile
// @Tags Players
// @Produce json
// @Param uuid path string true "Player uuid, dashed or compact"
// @Success 200 {object} board.Profile "Profile"
// @Failure 404 {object} map[string]string "Player not found"
// @Router /api/v1/players/{uuid} [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Validate the shape only; lookups use the caller's formatting because
	// snapshots store uuids in whichever shape the deployment uses.
	raw := chi.URLParam(r, "uuid")
	if _, err := uuid.Parse(raw); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player uuid")
		return
	}

	prof, err := h.board.Profile(ctx, raw)
	if err != nil {
		if isNotFound(err) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to load profile", "uuid", raw, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Could not load player data.")
		return
	}

	h.jsonResponse(w, http.StatusOK, prof)
}
