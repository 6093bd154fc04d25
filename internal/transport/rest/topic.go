package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/topic"
)

type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) (*topic.DeleteResult, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]*domain.Topic, error)
	Hierarchy(ctx context.Context, parentID *uuid.UUID) ([]*domain.TopicNode, error)
	AssociateStyle(ctx context.Context, input topic.AssociationInput) error
	DisassociateStyle(ctx context.Context, input topic.AssociationInput) error
	AssociatedStyles(ctx context.Context, topicID uuid.UUID) ([]*domain.Style, error)
}

// TopicHandler serves the topic taxonomy endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type topicRequest struct {
	Name        string      `json:"name"`
	Level       int         `json:"level"`
	ParentID    *uuid.UUID  `json:"parent_id"`
	Description *string     `json:"description"`
	StyleIDs    []uuid.UUID `json:"style_ids"`
}

type associationRequest struct {
	TopicID uuid.UUID `json:"topic_id"`
	StyleID uuid.UUID `json:"style_id"`
}

type deleteTopicResponse struct {
	DeletedTopics       int `json:"deleted_topics"`
	DeletedAssociations int `json:"deleted_associations"`
}

// List handles GET /api/v1/topic/list?level=&parent_id=.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	var input topic.ListTopicsInput

	q := r.URL.Query()
	if v := q.Get("level"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation failed: level: must be an integer")
			return
		}
		input.Level = &level
	}
	parentID, err := parseOptionalUUID("parent_id", q.Get("parent_id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	input.ParentID = parentID

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTopicResponses(topics))
}

// Create handles POST /api/v1/topic/create.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Name:        req.Name,
		Level:       req.Level,
		ParentID:    req.ParentID,
		Description: req.Description,
		StyleIDs:    req.StyleIDs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toTopicResponse(t))
}

// Get handles GET /api/v1/topic/get/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTopicResponse(t))
}

// Update handles PUT /api/v1/topic/update/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req topicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		TopicID:     id,
		Name:        req.Name,
		Level:       req.Level,
		ParentID:    req.ParentID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTopicResponse(t))
}

// Delete handles DELETE /api/v1/topic/delete/{id}. Descendants and
// associations are removed with the topic.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.svc.DeleteTopic(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, deleteTopicResponse{
		DeletedTopics:       res.Topics,
		DeletedAssociations: res.Associations,
	})
}

// Hierarchy handles GET /api/v1/topic/hierarchy?parent_id=.
func (h *TopicHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseOptionalUUID("parent_id", r.URL.Query().Get("parent_id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	forest, err := h.svc.Hierarchy(r.Context(), parentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTopicNodeResponses(forest))
}

// AssociateStyle handles POST /api/v1/topic/associate-style.
func (h *TopicHandler) AssociateStyle(w http.ResponseWriter, r *http.Request) {
	var req associationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.AssociateStyle(r.Context(), topic.AssociationInput(req)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "style associated"})
}

// DisassociateStyle handles POST /api/v1/topic/disassociate-style.
func (h *TopicHandler) DisassociateStyle(w http.ResponseWriter, r *http.Request) {
	var req associationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.DisassociateStyle(r.Context(), topic.AssociationInput(req)); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "style disassociated"})
}

// AssociatedStyles handles GET /api/v1/topic/style/associated/{id}.
func (h *TopicHandler) AssociatedStyles(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	styles, err := h.svc.AssociatedStyles(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toStyleResponses(styles))
}

func (h *TopicHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
