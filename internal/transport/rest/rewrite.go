package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/rewrite"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type rewriteService interface {
	Rewrite(ctx context.Context, input rewrite.RewriteInput) (*rewrite.RewriteResult, error)
	ListRecords(ctx context.Context, input rewrite.ListRecordsInput) (*domain.RecordPage, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.RewriteRecord, error)
}

// RewriteHandler serves rewrite and record history endpoints.
type RewriteHandler struct {
	svc rewriteService
	log *slog.Logger
}

// NewRewriteHandler creates a RewriteHandler.
func NewRewriteHandler(svc rewriteService, logger *slog.Logger) *RewriteHandler {
	return &RewriteHandler{svc: svc, log: logger.With("handler", "rewrite")}
}

type rewriteRequest struct {
	StyleID   uuid.UUID `json:"style_id"`
	UserTask  string    `json:"user_task"`
	WordCount *string   `json:"word_count"`
}

type listRecordsRequest struct {
	Page     *int `json:"page"`
	PageSize *int `json:"page_size"`
}

// Rewrite handles POST /api/v1/rewrite.
func (h *RewriteHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Rewrite(r.Context(), rewrite.RewriteInput{
		StyleID:   req.StyleID,
		UserTask:  req.UserTask,
		WordCount: req.WordCount,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRewriteResponse(res))
}

// Records handles POST /api/v1/rewrite/records. An empty body selects the
// first page of 10.
func (h *RewriteHandler) Records(w http.ResponseWriter, r *http.Request) {
	var req listRecordsRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	input := rewrite.ListRecordsInput{Page: defaultPage, PageSize: defaultPageSize}
	if req.Page != nil {
		input.Page = *req.Page
	}
	if req.PageSize != nil {
		input.PageSize = *req.PageSize
	}

	page, err := h.svc.ListRecords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordPageResponse(page))
}

// Record handles GET /api/v1/rewrite/records/{id}.
func (h *RewriteHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordResponse(rec))
}
