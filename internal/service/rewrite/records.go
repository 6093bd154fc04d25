package rewrite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// ListRecords returns one page of rewrite history, newest first. A page past
// the end is empty, not an error.
func (s *Service) ListRecords(ctx context.Context, input ListRecordsInput) (*domain.RecordPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	total, err := s.records.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	page := &domain.RecordPage{
		Records:    []*domain.RewriteRecord{},
		Total:      total,
		TotalPages: domain.TotalPages(total, input.PageSize),
		Page:       input.Page,
		PageSize:   input.PageSize,
	}

	// Compared in pages so a huge page number cannot overflow the offset.
	if input.Page > page.TotalPages {
		return page, nil
	}

	records, err := s.records.List(ctx, input.PageSize, (input.Page-1)*input.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	page.Records = records

	return page, nil
}

// GetRecord returns a single rewrite record.
func (s *Service) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.RewriteRecord, error) {
	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}

	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}
