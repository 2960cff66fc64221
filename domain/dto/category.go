package dto

import (
	"github.com/google/uuid"

	"shopadmin/domain/models"
)

// === Requests ===

type CreateCategoryRequest struct {
	Name           string                `json:"name" validate:"required,min=1,max=100"`
	ParentCategory string                `json:"parentCategory"`
	Properties     models.PropertyGroups `json:"properties"`
}

type UpdateCategoryRequest struct {
	ID             uuid.UUID             `json:"_id" validate:"required"`
	Name           string                `json:"name" validate:"required,min=1,max=100"`
	ParentCategory string                `json:"parentCategory"`
	Properties     models.PropertyGroups `json:"properties"`
}

// === Responses ===

// UpdateAck mirrors the acknowledgement a document store returns for an
// update-by-id: how many documents matched and how many were rewritten.
// A nonexistent id yields a zero-count ack, not an error.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ParentRef resolves the request's parent field into a stored reference.
// Empty or unparseable values are stored as absent, never as an empty-string
// reference. A well-formed id is stored even if no such category exists
// (soft reference).
func ParentRef(parentCategory string) *uuid.UUID {
	if parentCategory == "" {
		return nil
	}
	id, err := uuid.Parse(parentCategory)
	if err != nil {
		return nil
	}
	return &id
}
