package rest

import (
	"net/http"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Topic   *TopicHandler
	Style   *StyleHandler
	Rewrite *RewriteHandler
	Health  *HealthHandler
}

// NewRouter registers all routes. aiLimit wraps the endpoints that call the
// AI collaborators.
func NewRouter(h Handlers, aiLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		return aiLimit(fn)
	}

	// Topics
	mux.HandleFunc("GET /api/v1/topic/list", h.Topic.List)
	mux.HandleFunc("POST /api/v1/topic/create", h.Topic.Create)
	mux.HandleFunc("GET /api/v1/topic/get/{id}", h.Topic.Get)
	mux.HandleFunc("PUT /api/v1/topic/update/{id}", h.Topic.Update)
	mux.HandleFunc("DELETE /api/v1/topic/delete/{id}", h.Topic.Delete)
	mux.HandleFunc("GET /api/v1/topic/hierarchy", h.Topic.Hierarchy)
	mux.HandleFunc("POST /api/v1/topic/associate-style", h.Topic.AssociateStyle)
	mux.HandleFunc("POST /api/v1/topic/disassociate-style", h.Topic.DisassociateStyle)
	mux.HandleFunc("GET /api/v1/topic/style/associated/{id}", h.Topic.AssociatedStyles)

	// Styles
	mux.HandleFunc("GET /api/v1/topic/style/list", h.Style.List)
	mux.HandleFunc("GET /api/v1/style/get/{id}", h.Style.Get)
	mux.HandleFunc("DELETE /api/v1/style/delete/{id}", h.Style.Delete)
	mux.Handle("POST /api/v1/style/analyze", limited(h.Style.Analyze))
	mux.Handle("POST /api/v1/style/analyze-urls", limited(h.Style.AnalyzeURLs))

	// Rewrite
	mux.Handle("POST /api/v1/rewrite", limited(h.Rewrite.Rewrite))
	mux.HandleFunc("POST /api/v1/rewrite/records", h.Rewrite.Records)
	mux.HandleFunc("GET /api/v1/rewrite/records/{id}", h.Rewrite.Record)

	// Probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})

	return mux
}
