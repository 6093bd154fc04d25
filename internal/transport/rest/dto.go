package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/analysis"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/service/rewrite"
)

type topicResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Level       int        `json:"level"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type topicNodeResponse struct {
	topicResponse
	Children []topicNodeResponse `json:"children"`
}

type styleResponse struct {
	ID            uuid.UUID `json:"id"`
	StyleName     string    `json:"style_name"`
	FeatureDesc   string    `json:"feature_desc"`
	Category      string    `json:"category"`
	SampleTitle   *string   `json:"sample_title"`
	SampleContent string    `json:"sample_content"`
	CreatedAt     time.Time `json:"created_at"`
}

type noteResponse struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type analyzeResponse struct {
	Style         styleResponse `json:"style"`
	ExecutionTime float64       `json:"execution_time"`
}

type itemResultResponse struct {
	URL     string     `json:"url"`
	Status  string     `json:"status"`
	StyleID *uuid.UUID `json:"style_id,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type itemErrorResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

type batchResponse struct {
	Notes         []noteResponse       `json:"notes"`
	Analyses      []styleResponse      `json:"analyses"`
	Errors        []itemErrorResponse  `json:"errors"`
	Results       []itemResultResponse `json:"results"`
	ExecutionTime float64              `json:"execution_time"`
}

type rewriteResponse struct {
	RecordID      uuid.UUID `json:"record_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tags          string    `json:"tags"`
	ExecutionTime float64   `json:"execution_time"`
}

type recordResponse struct {
	ID               uuid.UUID  `json:"id"`
	StyleID          *uuid.UUID `json:"style_id"`
	StyleName        string     `json:"style_name"`
	UserTask         string     `json:"user_task"`
	WordCount        *string    `json:"word_count"`
	GeneratedTitle   string     `json:"generated_title"`
	GeneratedContent string     `json:"generated_content"`
	GeneratedTags    string     `json:"generated_tags"`
	ExecutionTime    float64    `json:"execution_time"`
	CreatedAt        time.Time  `json:"created_at"`
}

type recordPageResponse struct {
	Records    []recordResponse `json:"records"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:          t.ID,
		Name:        t.Name,
		Level:       t.Level,
		ParentID:    t.ParentID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTopicResponses(topics []*domain.Topic) []topicResponse {
	out := make([]topicResponse, len(topics))
	for i, t := range topics {
		out[i] = toTopicResponse(t)
	}
	return out
}

func toTopicNodeResponses(nodes []*domain.TopicNode) []topicNodeResponse {
	out := make([]topicNodeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = topicNodeResponse{
			topicResponse: toTopicResponse(&n.Topic),
			Children:      toTopicNodeResponses(n.Children),
		}
	}
	return out
}

func toStyleResponse(s *domain.Style) styleResponse {
	return styleResponse{
		ID:            s.ID,
		StyleName:     s.StyleName,
		FeatureDesc:   s.FeatureDesc,
		Category:      s.Category,
		SampleTitle:   s.SampleTitle,
		SampleContent: s.SampleContent,
		CreatedAt:     s.CreatedAt,
	}
}

func toStyleResponses(styles []*domain.Style) []styleResponse {
	out := make([]styleResponse, len(styles))
	for i, s := range styles {
		out[i] = toStyleResponse(s)
	}
	return out
}

func toBatchResponse(b *analysis.BatchResult) batchResponse {
	resp := batchResponse{
		Notes:         make([]noteResponse, len(b.Notes)),
		Analyses:      toStyleResponses(b.Analyses),
		Errors:        make([]itemErrorResponse, len(b.Errors)),
		Results:       make([]itemResultResponse, len(b.Results)),
		ExecutionTime: b.ExecutionTime,
	}

	for i, n := range b.Notes {
		resp.Notes[i] = noteResponse{URL: n.URL, Title: n.Title, Content: n.Content}
	}
	for i, e := range b.Errors {
		resp.Errors[i] = itemErrorResponse{URL: e.URL, Error: e.Reason}
	}
	for i, r := range b.Results {
		item := itemResultResponse{URL: r.URL, Status: string(r.Status)}
		if r.Style != nil {
			item.StyleID = &r.Style.ID
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		resp.Results[i] = item
	}

	return resp
}

func toRewriteResponse(r *rewrite.RewriteResult) rewriteResponse {
	return rewriteResponse{
		RecordID:      r.RecordID,
		Title:         r.Title,
		Content:       r.Content,
		Tags:          r.Tags,
		ExecutionTime: r.ExecutionTime,
	}
}

func toRecordResponse(r *domain.RewriteRecord) recordResponse {
	return recordResponse{
		ID:               r.ID,
		StyleID:          r.StyleID,
		StyleName:        r.StyleName,
		UserTask:         r.UserTask,
		WordCount:        r.WordCount,
		GeneratedTitle:   r.GeneratedTitle,
		GeneratedContent: r.GeneratedContent,
		GeneratedTags:    r.GeneratedTags,
		ExecutionTime:    r.ExecutionTime,
		CreatedAt:        r.CreatedAt,
	}
}

func toRecordPageResponse(p *domain.RecordPage) recordPageResponse {
	records := make([]recordResponse, len(p.Records))
	for i, r := range p.Records {
		records[i] = toRecordResponse(r)
	}
	return recordPageResponse{
		Records:    records,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}
