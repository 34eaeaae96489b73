package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/service"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Identify resolves a Riot ID (gameName#tagLine) to a PUUID
func (h *PlayerHandler) Identify(w http.ResponseWriter, r *http.Request) {
	gameName := pathParam(r, "gameName")
	tagLine := pathParam(r, "tagLine")

	identity, err := h.playerService.Identify(r.Context(), gameName, tagLine)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "player.Identify"), err)
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

func (h *PlayerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	puuid := pathParam(r, "puuid")

	summary, err := h.playerService.Summary(r.Context(), puuid)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "player.Summary"), err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *PlayerHandler) Mastery(w http.ResponseWriter, r *http.Request) {
	puuid := pathParam(r, "puuid")

	masteries, err := h.playerService.Mastery(r.Context(), puuid)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "player.Mastery"), err)
		return
	}

	writeJSON(w, http.StatusOK, masteries)
}

// Matches returns recent match summaries. count defaults to 5 when it is
// missing or not an integer.
func (h *PlayerHandler) Matches(w http.ResponseWriter, r *http.Request) {
	puuid := pathParam(r, "puuid")

	count := domain.DefaultMatchCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}

	matches, err := h.playerService.MatchHistory(r.Context(), puuid, count)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "player.Matches"), err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

func (h *PlayerHandler) Live(w http.ResponseWriter, r *http.Request) {
	puuid := pathParam(r, "puuid")

	live, err := h.playerService.LiveGame(r.Context(), puuid)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "player.Live"), err)
		return
	}

	writeJSON(w, http.StatusOK, live)
}
