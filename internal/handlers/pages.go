package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/extiers/tierboard/internal/board"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title     string
	Gamemodes []string
	Active    string
	Error     string

	Rows    []board.Row
	Tiers   []board.TierStrip
	Profile *board.Profile
	Posts   interface{}

	// Milliseconds before a search error message self-clears client-side
	SearchErrorMS int64
}

func (h *Handler) render(w http.ResponseWriter, name string, data pageData) {
	data.SearchErrorMS = h.searchErrorTTL.Milliseconds()
	if data.Gamemodes == nil {
		data.Gamemodes = h.board.Gamemodes()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Errorw("Template render failed", "template", name, "error", err)
	}
}

// Home redirects to the default ranking view.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/rankings/overall", http.StatusFound)
}

// RankingsPage renders the overall table or the per-gamemode tier board.
func (h *Handler) RankingsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mode := chi.URLParam(r, "gamemode")
	if mode == "" {
		mode = board.Overall
	}
	if !h.board.ValidGamemode(mode) {
		http.Redirect(w, r, "/rankings/overall", http.StatusFound)
		return
	}

	players, err := h.board.Leaderboard(ctx, mode)
	if err != nil {
		h.logger.Errorw("Failed to load rankings page", "gamemode", mode, "error", err)
		h.render(w, "error.html", pageData{
			Title:  "Rankings",
			Active: mode,
			Error:  "Could not load leaderboard data.",
		})
		return
	}

	if mode == board.Overall {
		h.render(w, "overall.html", pageData{
			Title:  "Rankings",
			Active: mode,
			Rows:   h.board.BuildRows(players),
		})
		return
	}
	h.render(w, "tierboard.html", pageData{
		Title:  "Rankings",
		Active: mode,
		Tiers:  h.board.BuildTierBoard(players, mode),
	})
}

// ProfilePage renders the player overlay as a standalone page.
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := chi.URLParam(r, "uuid")
	if _, err := uuid.Parse(raw); err != nil {
		http.Redirect(w, r, "/rankings/overall", http.StatusFound)
		return
	}

	prof, err := h.board.Profile(ctx, raw)
	if err != nil {
		msg := "Could not load player data."
		if isNotFound(err) {
			msg = "Player not found"
		}
		h.render(w, "error.html", pageData{Title: "Profile", Error: msg})
		return
	}
	h.render(w, "profile.html", pageData{
		Title:   prof.Username,
		Profile: &prof,
	})
}

// PostsPage renders the announcements feed.
func (h *Handler) PostsPage(w http.ResponseWriter, r *http.Request) {
	feed, err := h.board.Announcements(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load posts page", "error", err)
		h.render(w, "error.html", pageData{
			Title: "Announcements",
			Error: "Could not load announcements.",
		})
		return
	}
	h.render(w, "posts.html", pageData{
		Title: "Announcements",
		Posts: feed,
	})
}

// DiscordPage renders the static community links.
func (h *Handler) DiscordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "discord.html", pageData{Title: "Discord"})
}
