package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/aleister1102/unfurler/internal/preview"
)

// BuildEmbed converts a preview into a Discord embed. A local attachment is
// referenced with the attachment:// scheme and uploaded by the sink.
func BuildEmbed(p preview.Preview) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       p.Title,
		URL:         p.URL,
		Description: p.Description,
		Color:       p.Color,
	}

	for _, field := range p.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	if p.Author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    p.Author.Name,
			IconURL: p.Author.IconURL,
		}
	}

	if p.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}

	if p.Timestamp != nil {
		embed.Timestamp = p.Timestamp.UTC().Format(time.RFC3339)
	}

	applyVisual(embed, p)

	return embed
}

func applyVisual(embed *discordgo.MessageEmbed, p preview.Preview) {
	if p.Attachment != nil {
		ref := "attachment://" + p.Attachment.Filename
		if p.Attachment.Thumbnail {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: ref}
		} else {
			embed.Image = &discordgo.MessageEmbedImage{URL: ref}
		}
		return
	}

	if p.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.ImageURL}
	}
	if p.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.ThumbnailURL}
	}
}
