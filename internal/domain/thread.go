package domain

import (
	"time"

	"github.com/google/uuid"
)

// Thread groups translation exchanges under one fixed situational context.
// The (PrimaryCategory, SubCategory) pair is validated against the mapping
// table at creation time only and never changes afterward. Deletion is a
// soft delete: a deleted thread disappears from lookups and listings but
// its linked translations stay retrievable by ID.
type Thread struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	PrimaryCategory string
	SubCategory     string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}

// IsDeleted returns true once the thread has been soft-deleted.
// The transition is one-way; there is no reactivation path.
func (t *Thread) IsDeleted() bool {
	return t.DeletedAt != nil
}
