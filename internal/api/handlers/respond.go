package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dom/league-profile-gateway/internal/riot"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// pathParam returns the decoded route parameter. chi matches on RawPath when the
// request carries escapes like %2F, leaving the segment encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// writeRaw sends an upstream body verbatim with a JSON content type.
func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// writeUpstreamError relays a Riot status error unchanged. Anything else means
// Riot could not be reached and is answered with 502.
func writeUpstreamError(w http.ResponseWriter, logger *log.Entry, err error) {
	if statusErr, ok := riot.AsStatusError(err); ok {
		logger.WithField("status", statusErr.StatusCode).Info("relaying upstream error")
		writeRaw(w, statusErr.StatusCode, statusErr.Body)
		return
	}

	logger.WithError(err).Error("upstream request failed")
	writeError(w, http.StatusBadGateway, err.Error())
}

func handlerLogger(r *http.Request, handler string) *log.Entry {
	return log.WithFields(log.Fields{
		"handler": handler,
		"path":    r.URL.Path,
	})
}
