package handlers

import (
	"encoding/json"
	"errors"
	"graphdb/core"
	"graphdb/logger"
	"graphdb/models"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DataPath is the prefix the graph resources are mounted under.
const DataPath = "/db/data/"

// GraphHandlers serves the node and relationship resources.
type GraphHandlers struct {
	Service *core.GraphService
	// BaseURI prefixes every link in a representation. When empty it is
	// derived from the request's scheme and host.
	BaseURI      string
	MaxBodyBytes int64
}

func (h *GraphHandlers) baseURI(r *http.Request) string {
	if h.BaseURI != "" {
		return h.BaseURI
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + DataPath
}

// readBody reads the request body up to MaxBodyBytes. An oversized or
// unreadable body is malformed input.
func (h *GraphHandlers) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = 1 << 20
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, core.NewError(core.MalformedInput, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, core.NewError(core.MalformedInput, err, "reading request body")
	}
	return body, nil
}

// pathID parses a non-negative integer URL parameter.
func pathID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	return id, err == nil && id >= 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding %d response: %v", status, err)
	}
}

// NotFoundHandler answers unknown routes with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	logger.Warn("Unhandled route: %s %s", r.Method, r.URL.Path)
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: r.Method + " " + r.URL.Path + " not found", Code: "route_not_found"})
}
