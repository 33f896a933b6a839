package thread

import (
	"github.com/travelmate-app/backend/internal/domain"
)

// CreateInput holds the parameters for opening a thread.
type CreateInput struct {
	PrimaryCategory string
	SubCategory     string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.PrimaryCategory == "" {
		errs = append(errs, domain.FieldError{Field: "primary_category", Message: "required"})
	} else if len(i.PrimaryCategory) > 10 {
		errs = append(errs, domain.FieldError{Field: "primary_category", Message: "too long (max 10)"})
	}

	if i.SubCategory == "" {
		errs = append(errs, domain.FieldError{Field: "sub_category", Message: "required"})
	} else if len(i.SubCategory) > 50 {
		errs = append(errs, domain.FieldError{Field: "sub_category", Message: "too long (max 50)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the pagination parameters for listing threads.
type ListInput struct {
	Page  int
	Limit int
}

// normalize clamps pagination to sane bounds: page floors at 1, limit
// defaults and caps from configuration.
func (i *ListInput) normalize(defaultLimit, maxLimit int) {
	if i.Page < 1 {
		i.Page = 1
	}
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
}
