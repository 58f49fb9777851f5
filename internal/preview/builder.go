package preview

import (
	"time"
)

// Builder helps in constructing Preview objects.
type Builder struct {
	preview   Preview
	validator *Validator
}

// NewBuilder creates a new preview builder
func NewBuilder() *Builder {
	return &Builder{
		preview:   Preview{},
		validator: NewValidator(),
	}
}

// WithTitle sets the preview title
func (b *Builder) WithTitle(title string) *Builder {
	b.preview.Title = title
	return b
}

// WithURL sets the canonical URL
func (b *Builder) WithURL(url string) *Builder {
	b.preview.URL = url
	return b
}

// WithDescription sets the preview description
func (b *Builder) WithDescription(description string) *Builder {
	b.preview.Description = description
	return b
}

// WithColor sets the accent color
func (b *Builder) WithColor(color int) *Builder {
	b.preview.Color = color
	return b
}

// WithFooter sets the footer text
func (b *Builder) WithFooter(text string) *Builder {
	b.preview.Footer = text
	return b
}

// WithAuthor sets the preview author
func (b *Builder) WithAuthor(name, iconURL string) *Builder {
	b.preview.Author = NewAuthor(name, iconURL)
	return b
}

// WithTimestamp sets the preview timestamp
func (b *Builder) WithTimestamp(timestamp time.Time) *Builder {
	b.preview.Timestamp = &timestamp
	return b
}

// WithImageURL sets a remote image reference
func (b *Builder) WithImageURL(url string) *Builder {
	b.preview.ImageURL = url
	return b
}

// WithThumbnailURL sets a remote thumbnail reference
func (b *Builder) WithThumbnailURL(url string) *Builder {
	b.preview.ThumbnailURL = url
	return b
}

// WithAttachment sets a local binary to upload with the preview
func (b *Builder) WithAttachment(attachment *Attachment) *Builder {
	b.preview.Attachment = attachment
	return b
}

// AddField adds a field to the preview
func (b *Builder) AddField(name, value string, inline bool) *Builder {
	b.preview.Fields = append(b.preview.Fields, NewField(name, value, inline))
	return b
}

// Validate validates the current preview
func (b *Builder) Validate() error {
	return b.validator.ValidatePreview(b.preview)
}

// Build validates and returns the preview
func (b *Builder) Build() (Preview, error) {
	if err := b.Validate(); err != nil {
		return Preview{}, err
	}
	return b.preview, nil
}
