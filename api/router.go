package api

import (
	"graphdb/api/router/handlers"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	_ "graphdb/api/docs"
)

// NewRouter wires the graph resources under /db/data and the operational
// endpoints at the root.
func NewRouter(h *handlers.GraphHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestID)
	r.Use(handlers.AccessLog)
	r.Use(middleware.Recoverer)

	compressor := middleware.NewCompressor(5, "application/json")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	r.Use(compressor.Handler)

	handlers.RegisterHealthRoutes(r)
	handlers.RegisterVersionRoutes(r)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", swaggerDocHandler)

	r.Route(strings.TrimSuffix(handlers.DataPath, "/"), func(data chi.Router) {
		handlers.RegisterNodeRoutes(data, h)
		handlers.RegisterRelationshipRoutes(data, h)
	})

	r.NotFound(handlers.NotFoundHandler)
	return r
}

func swaggerDocHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
