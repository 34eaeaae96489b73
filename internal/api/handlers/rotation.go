package handlers

import (
	"net/http"

	"github.com/dom/league-profile-gateway/internal/service"
)

type RotationHandler struct {
	rotationService *service.RotationService
}

func NewRotationHandler(rotationService *service.RotationService) *RotationHandler {
	return &RotationHandler{rotationService: rotationService}
}

// Get returns the free champion rotation, from the cache when it is fresh.
func (h *RotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	rotation, err := h.rotationService.GetRotation(r.Context())
	if err != nil {
		writeUpstreamError(w, handlerLogger(r, "rotation.Get"), err)
		return
	}

	writeJSON(w, http.StatusOK, rotation)
}
