package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	catalog *domain.ChampionCatalog
}

func NewChampionHandler(catalog *domain.ChampionCatalog) *ChampionHandler {
	if catalog == nil {
		catalog = domain.EmptyChampionCatalog()
	}
	return &ChampionHandler{catalog: catalog}
}

type ChampionsResponse struct {
	Champions []domain.Champion `json:"champions"`
	Version   string            `json:"version"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp := ChampionsResponse{
		Champions: h.catalog.Champions(),
		Version:   h.catalog.Version(),
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	id, err := strconv.Atoi(rawID)
	if err != nil {
		handlerLogger(r, "champion.Get").WithField("championId", rawID).Info(domain.ErrInvalidChampion.Error())
		writeError(w, http.StatusBadRequest, domain.ErrInvalidChampion.Error())
		return
	}

	lookup := h.catalog.Lookup(id)
	if !lookup.Found {
		writeError(w, http.StatusNotFound, domain.ErrChampionNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, domain.Champion{ID: lookup.ID, Name: lookup.Name})
}
