package preview

import "time"

// DescriptionBudget is the maximum description length before truncation.
const DescriptionBudget = 200

// Ellipsis is appended to a description that was cut at the budget.
const Ellipsis = "..."

// Preview is the normalized, source-agnostic description of a link.
// It is built once from fetched metadata and handed to a Sink unchanged.
type Preview struct {
	Title       string
	URL         string
	Description string
	Color       int
	Fields      []Field
	Author      *Author
	Footer      string
	Timestamp   *time.Time

	// ImageURL and ThumbnailURL reference remote images embedded directly.
	ImageURL     string
	ThumbnailURL string

	// Attachment references a locally downloaded binary to upload alongside
	// the preview. Mutually exclusive with the remote references above.
	Attachment *Attachment
}

// Field is a label/value pair surfaced on the preview.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// NewField creates a new preview field
func NewField(name, value string, inline bool) Field {
	return Field{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

// Author identifies who created the linked resource.
type Author struct {
	Name    string
	IconURL string
}

// NewAuthor creates a new preview author
func NewAuthor(name, iconURL string) *Author {
	return &Author{
		Name:    name,
		IconURL: iconURL,
	}
}

// Attachment is a locally stored binary to upload with the preview.
type Attachment struct {
	Path      string
	Filename  string
	Thumbnail bool // render as thumbnail instead of full-width image
}

// Truncate cuts a body down to the description budget, appending the
// ellipsis marker only when something was actually cut.
func Truncate(body string) string {
	runes := []rune(body)
	if len(runes) <= DescriptionBudget {
		return body
	}
	return string(runes[:DescriptionBudget]) + Ellipsis
}
