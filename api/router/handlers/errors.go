package handlers

import (
	"graphdb/core"
	"graphdb/logger"
	"graphdb/models"
	"net/http"
)

// statusForKind is the single translation from domain outcome to HTTP status.
func statusForKind(kind core.ErrorKind) int {
	switch kind {
	case core.MalformedInput, core.InvalidRequest, core.EndNodeNotFound, core.InvalidPropertyValue:
		return http.StatusBadRequest
	case core.StartNodeNotFound, core.NodeNotFound, core.RelationshipNotFound, core.PropertyNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	kind := core.KindOf(err)
	status := statusForKind(kind)
	if status >= http.StatusInternalServerError {
		logger.Error("%s [%s]: %v", handler, RequestIDFrom(r.Context()), err)
	} else {
		logger.Warn("%s [%s]: rejected with %d: %v", handler, RequestIDFrom(r.Context()), status, err)
	}
	writeJSON(w, status, models.ErrorResponse{Message: core.MessageOf(err), Code: kind.String()})
}
