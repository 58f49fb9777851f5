package webpage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/preview"
	"github.com/aleister1102/unfurler/internal/scratch"
)

// Renderer turns extracted page metadata into previews, downloading the
// page's image or favicon into the scratch directory along the way.
type Renderer struct {
	fetcher   *Fetcher
	converter *Converter
	logger    zerolog.Logger
}

// NewRenderer creates a page preview renderer
func NewRenderer(fetcher *Fetcher, converter *Converter, logger zerolog.Logger) *Renderer {
	return &Renderer{
		fetcher:   fetcher,
		converter: converter,
		logger:    logger.With().Str("module", "PageRenderer").Logger(),
	}
}

// Render builds a preview for one page. seq keeps attachment filenames
// unique within a single message pass. A missing or broken visual never
// fails the preview, only omits it.
func (r *Renderer) Render(ctx context.Context, info PageInfo, dir *scratch.Dir, seq int) (preview.Preview, error) {
	// The description is posted exactly as extracted, never truncated.
	builder := preview.NewBuilder().
		WithTitle(info.Title).
		WithURL(info.URL).
		WithDescription(info.Description)

	if attachment := r.fetchVisual(ctx, info, dir, seq); attachment != nil {
		builder.WithAttachment(attachment)
	}

	return builder.Build()
}

func (r *Renderer) fetchVisual(ctx context.Context, info PageInfo, dir *scratch.Dir, seq int) *preview.Attachment {
	if info.ImageURL != "" {
		return r.fetchImage(ctx, info.ImageURL, dir, seq)
	}
	if info.FaviconURL != "" {
		return r.fetchFavicon(ctx, info.FaviconURL, dir, seq)
	}
	return nil
}

func (r *Renderer) fetchImage(ctx context.Context, imageURL string, dir *scratch.Dir, seq int) *preview.Attachment {
	filename := fmt.Sprintf("image-%d%s", seq, imageExtension(imageURL))
	destPath := dir.FilePath(filename)

	if err := r.fetcher.Download(ctx, imageURL, destPath); err != nil {
		r.logger.Debug().Err(err).Str("url", imageURL).Msg("Image download failed, omitting visual")
		return nil
	}

	return &preview.Attachment{Path: destPath, Filename: filename}
}

func (r *Renderer) fetchFavicon(ctx context.Context, faviconURL string, dir *scratch.Dir, seq int) *preview.Attachment {
	icoPath := dir.FilePath(fmt.Sprintf("favicon-%d.ico", seq))

	if err := r.fetcher.Download(ctx, faviconURL, icoPath); err != nil {
		r.logger.Debug().Err(err).Str("url", faviconURL).Msg("Favicon download failed, omitting visual")
		return nil
	}

	pngPath, err := r.converter.ConvertToPNG(ctx, icoPath)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", icoPath).Msg("Favicon conversion failed, omitting visual")
		return nil
	}

	return &preview.Attachment{
		Path:      pngPath,
		Filename:  path.Base(pngPath),
		Thumbnail: true,
	}
}

// imageExtension extracts a usable file extension from an image URL,
// defaulting to .png when the URL carries none.
func imageExtension(imageURL string) string {
	base := imageURL
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base = base[:idx]
	}
	ext := path.Ext(base)
	if ext == "" || len(ext) > 5 {
		return ".png"
	}
	return ext
}
