package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/config"
	"github.com/aleister1102/unfurler/internal/errorwrapper"
	"github.com/aleister1102/unfurler/internal/pipeline"
)

// messageTimeout bounds the processing of a single inbound message.
const messageTimeout = 30 * time.Second

// Bot owns the Discord session and feeds inbound messages to the dispatcher
type Bot struct {
	session    *discordgo.Session
	dispatcher *pipeline.Dispatcher
	logger     zerolog.Logger
}

// NewSession creates a Discord session with the gateway intents required
// to read message content. The session is shared between the bot and the
// preview sink.
func NewSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	if cfg.Token == "" {
		return nil, errorwrapper.NewError("discord token is not configured")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create Discord session")
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	return session, nil
}

// NewBotWithSession creates a bot listening for message events on an
// existing session
func NewBotWithSession(session *discordgo.Session, dispatcher *pipeline.Dispatcher, logger zerolog.Logger) *Bot {
	bot := &Bot{
		session:    session,
		dispatcher: dispatcher,
		logger:     logger.With().Str("module", "DiscordBot").Logger(),
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)

	return bot
}

// Start opens the session and blocks until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return errorwrapper.WrapError(err, "failed to open Discord session")
	}

	b.logger.Info().Msg("Discord session opened")

	<-ctx.Done()

	b.logger.Info().Msg("Closing Discord session")
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info().
		Str("username", event.User.Username).
		Str("user_id", event.User.ID).
		Msg("Discord bot is ready")
}

// onMessageCreate hands every inbound message to the dispatcher. The
// dispatcher itself filters out the bot's own messages and other bots.
func (b *Bot) onMessageCreate(s *discordgo.Session, event *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	self := pipeline.Identity{}
	if s.State != nil && s.State.User != nil {
		self.UserID = s.State.User.ID
	}

	msg := pipeline.Message{
		ID:        event.ID,
		ChannelID: event.ChannelID,
		Content:   event.Content,
	}
	if event.Author != nil {
		msg.AuthorID = event.Author.ID
		msg.AuthorBot = event.Author.Bot
	}

	b.dispatcher.HandleMessage(ctx, self, msg)
}
