package handlers

import (
	"net/http"

	"github.com/dom/league-profile-gateway/internal/service"
)

type MatchHandler struct {
	playerService *service.PlayerService
}

func NewMatchHandler(playerService *service.PlayerService) *MatchHandler {
	return &MatchHandler{playerService: playerService}
}

// Get passes the upstream match document through, status included.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := pathParam(r, "matchId")

	resp, err := h.playerService.MatchDetails(r.Context(), matchID)
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "match.Get").WithField("matchId", matchID), err)
		return
	}

	writeRaw(w, resp.StatusCode, resp.Body)
}
