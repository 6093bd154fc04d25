package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/analysis"
)

type styleService interface {
	ListStyles(ctx context.Context, category string) ([]*domain.Style, error)
	GetStyle(ctx context.Context, styleID uuid.UUID) (*domain.Style, error)
	DeleteStyle(ctx context.Context, styleID uuid.UUID) error
}

type analysisService interface {
	AnalyzeSingle(ctx context.Context, input analysis.AnalyzeInput) (*analysis.AnalyzeResult, error)
	AnalyzeURLs(ctx context.Context, input analysis.AnalyzeURLsInput) (*analysis.BatchResult, error)
}

// StyleHandler serves style registry and analysis endpoints.
type StyleHandler struct {
	styles   styleService
	analysis analysisService
	log      *slog.Logger
}

// NewStyleHandler creates a StyleHandler.
func NewStyleHandler(styles styleService, analysis analysisService, logger *slog.Logger) *StyleHandler {
	return &StyleHandler{styles: styles, analysis: analysis, log: logger.With("handler", "style")}
}

type analyzeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type analyzeURLsRequest struct {
	URLs string `json:"urls"`
}

// List handles GET /api/v1/topic/style/list?category=.
func (h *StyleHandler) List(w http.ResponseWriter, r *http.Request) {
	styles, err := h.styles.ListStyles(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toStyleResponses(styles))
}

// Get handles GET /api/v1/style/get/{id}.
func (h *StyleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	style, err := h.styles.GetStyle(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toStyleResponse(style))
}

// Delete handles DELETE /api/v1/style/delete/{id}.
func (h *StyleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.styles.DeleteStyle(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "style deleted"})
}

// Analyze handles POST /api/v1/style/analyze.
func (h *StyleHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.analysis.AnalyzeSingle(r.Context(), analysis.AnalyzeInput{Title: req.Title, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, analyzeResponse{
		Style:         toStyleResponse(res.Style),
		ExecutionTime: res.ExecutionTime,
	})
}

// AnalyzeURLs handles POST /api/v1/style/analyze-urls. Per-URL failures are
// reported in the body; the call itself answers 200 unless the input is invalid.
func (h *StyleHandler) AnalyzeURLs(w http.ResponseWriter, r *http.Request) {
	var req analyzeURLsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.analysis.AnalyzeURLs(r.Context(), analysis.AnalyzeURLsInput{URLs: req.URLs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: batch.Success,
		Data:    toBatchResponse(batch),
		Message: batch.Message,
	})
}
