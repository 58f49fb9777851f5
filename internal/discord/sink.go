package discord

import (
	"context"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/errorwrapper"
	"github.com/aleister1102/unfurler/internal/preview"
)

// messageSender is the slice of discordgo.Session the sink needs
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Sink posts previews to Discord channels as embeds, uploading any local
// attachment alongside the message.
type Sink struct {
	sender messageSender
	logger zerolog.Logger
}

// NewSink creates a Discord preview sink
func NewSink(sender messageSender, logger zerolog.Logger) *Sink {
	return &Sink{
		sender: sender,
		logger: logger.With().Str("module", "DiscordSink").Logger(),
	}
}

// Post sends one preview to the given channel
func (s *Sink) Post(_ context.Context, channelID string, p preview.Preview) error {
	send := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildEmbed(p)},
	}

	var file *os.File
	if p.Attachment != nil {
		opened, err := os.Open(p.Attachment.Path)
		if err != nil {
			// The visual is gone, the preview still goes out without it.
			s.logger.Warn().Err(err).Str("path", p.Attachment.Path).Msg("Failed to open attachment, sending without visual")
			stripVisual(send.Embeds[0])
		} else {
			file = opened
			send.Files = []*discordgo.File{{
				Name:   p.Attachment.Filename,
				Reader: opened,
			}}
		}
	}
	if file != nil {
		defer file.Close()
	}

	if _, err := s.sender.ChannelMessageSendComplex(channelID, send); err != nil {
		return errorwrapper.WrapError(err, "failed to send preview")
	}

	s.logger.Debug().Str("channel_id", channelID).Str("url", p.URL).Msg("Preview posted")
	return nil
}

// stripVisual removes attachment:// references that have no backing upload
func stripVisual(embed *discordgo.MessageEmbed) {
	embed.Image = nil
	embed.Thumbnail = nil
}
