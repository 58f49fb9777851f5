package preview

import (
	"fmt"

	"github.com/aleister1102/unfurler/internal/errorwrapper"
)

// Validator validates Preview objects against the chat surface's embed limits
type Validator struct{}

// NewValidator creates a new preview validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePreview validates a preview against the embed limits. An empty
// title is allowed: absent metadata fields default to empty rather than
// dropping the preview.
func (v *Validator) ValidatePreview(p Preview) error {
	if len(p.Title) > 256 {
		return errorwrapper.NewValidationError("title", p.Title, "title cannot exceed 256 characters")
	}

	if len(p.Description) > 4096 {
		return errorwrapper.NewValidationError("description", p.Description, "description cannot exceed 4096 characters")
	}

	if len(p.Fields) > 25 {
		return errorwrapper.NewValidationError("fields", p.Fields, "cannot have more than 25 fields")
	}

	for i, field := range p.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if len(field.Name) > 256 {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if len(field.Value) > 1024 {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if len(p.Footer) > 2048 {
		return errorwrapper.NewValidationError("footer", p.Footer, "footer text cannot exceed 2048 characters")
	}

	if p.Author != nil && len(p.Author.Name) > 256 {
		return errorwrapper.NewValidationError("author_name", p.Author.Name, "author name cannot exceed 256 characters")
	}

	return nil
}
