package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/forge"
	"github.com/aleister1102/unfurler/internal/preview"
	"github.com/aleister1102/unfurler/internal/recognizer"
	"github.com/aleister1102/unfurler/internal/scratch"
	"github.com/aleister1102/unfurler/internal/webpage"
)

// Message is one inbound chat message to scan for links
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	AuthorBot bool
	Content   string
}

// Identity describes the bot's own account, used to skip self-authored messages
type Identity struct {
	UserID string
}

// Sink receives finished previews for delivery
type Sink interface {
	Post(ctx context.Context, channelID string, p preview.Preview) error
}

// Dispatcher routes each recognized URL in a message through its family's
// chain and posts the resulting previews. A failure on one URL never
// affects the others.
type Dispatcher struct {
	recognizer  *recognizer.Recognizer
	forgeClient *forge.Client
	fetcher     *webpage.Fetcher
	renderer    *webpage.Renderer
	sink        Sink
	logger      zerolog.Logger
}

// NewDispatcher creates a message dispatcher
func NewDispatcher(
	rec *recognizer.Recognizer,
	forgeClient *forge.Client,
	fetcher *webpage.Fetcher,
	renderer *webpage.Renderer,
	sink Sink,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		recognizer:  rec,
		forgeClient: forgeClient,
		fetcher:     fetcher,
		renderer:    renderer,
		sink:        sink,
		logger:      logger.With().Str("module", "Dispatcher").Logger(),
	}
}

// HandleMessage scans one message and posts a preview for every link that
// survives its chain. Messages from the bot itself or from other bots are
// ignored.
func (d *Dispatcher) HandleMessage(ctx context.Context, self Identity, msg Message) {
	if msg.AuthorID == self.UserID || msg.AuthorBot {
		return
	}

	forgeURLs := d.recognizer.ForgeURLs(msg.Content)
	pageURLs := d.recognizer.PageURLs(msg.Content)
	if len(forgeURLs) == 0 && len(pageURLs) == 0 {
		return
	}

	d.logger.Debug().
		Str("message_id", msg.ID).
		Int("forge_urls", len(forgeURLs)).
		Int("page_urls", len(pageURLs)).
		Msg("Processing message links")

	d.handleForgeURLs(ctx, msg.ChannelID, forgeURLs)
	d.handlePageURLs(ctx, msg.ChannelID, pageURLs)
}

// handleForgeURLs runs the forge chain for each URL in order. Each link is
// classified, its metadata fetched, and a preview built; a miss at any
// stage drops that link only.
func (d *Dispatcher) handleForgeURLs(ctx context.Context, channelID string, urls []string) {
	for _, url := range urls {
		res := forge.Classify(url)
		if res.Kind == forge.KindUnrecognized {
			d.logger.Debug().Str("url", url).Msg("Forge URL not classifiable, skipping")
			continue
		}

		meta, ok := d.forgeClient.FetchMetadata(ctx, res)
		if !ok {
			d.logger.Debug().Str("url", url).Str("kind", res.Kind.String()).Msg("Forge metadata unavailable, skipping")
			continue
		}

		p, err := forge.BuildPreview(res, meta)
		if err != nil {
			d.logger.Warn().Err(err).Str("url", url).Msg("Forge preview build failed, skipping")
			continue
		}

		d.post(ctx, channelID, p)
	}
}

// handlePageURLs fetches all pages concurrently, then renders and posts the
// successful ones in their original order. The scratch directory holding
// downloaded visuals lives for exactly this pass.
func (d *Dispatcher) handlePageURLs(ctx context.Context, channelID string, urls []string) {
	if len(urls) == 0 {
		return
	}

	dir, err := scratch.New(d.logger)
	if err != nil {
		d.logger.Error().Err(err).Msg("Failed to create scratch directory, skipping page previews")
		return
	}
	defer dir.Cleanup()

	pages := d.fetcher.FetchAll(ctx, urls)
	for i, page := range pages {
		info := webpage.ExtractInfo(page)

		p, err := d.renderer.Render(ctx, info, dir, i)
		if err != nil {
			d.logger.Warn().Err(err).Str("url", page.URL).Msg("Page preview build failed, skipping")
			continue
		}

		d.post(ctx, channelID, p)
	}
}

func (d *Dispatcher) post(ctx context.Context, channelID string, p preview.Preview) {
	if err := d.sink.Post(ctx, channelID, p); err != nil {
		d.logger.Error().Err(err).Str("channel_id", channelID).Str("url", p.URL).Msg("Failed to post preview")
	}
}
