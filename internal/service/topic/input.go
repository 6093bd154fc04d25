package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxStyleIDs       = 50
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name        string
	Level       int
	ParentID    *uuid.UUID
	Description *string
	StyleIDs    []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	errs := validateFields(i.Name, i.Level, i.ParentID, i.Description)

	if len(i.StyleIDs) > maxStyleIDs {
		errs = append(errs, domain.FieldError{Field: "style_ids", Message: "max 50 styles"})
	}
	for _, id := range i.StyleIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "style_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput replaces every mutable field of a topic.
type UpdateTopicInput struct {
	TopicID     uuid.UUID
	Name        string
	Level       int
	ParentID    *uuid.UUID
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Name, i.Level, i.ParentID, i.Description)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTopicsInput holds optional filters for the flat topic list.
type ListTopicsInput struct {
	Level    *int
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	if i.Level != nil && !domain.ValidTopicLevel(*i.Level) {
		return domain.NewValidationError("level", "must be 1, 2 or 3")
	}
	return nil
}

// AssociationInput identifies a topic-style pair.
type AssociationInput struct {
	TopicID uuid.UUID
	StyleID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AssociationInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFields(name string, level int, parentID *uuid.UUID, description *string) []domain.FieldError {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if !domain.ValidTopicLevel(level) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be 1, 2 or 3"})
	}
	if parentID != nil && *parentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be a valid id"})
	}
	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	return errs
}
