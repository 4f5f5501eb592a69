// Package notify posts rendered cooldown tables to a Discord webhook.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/marcin-skalski/lol-cooldowns/internal/render"
)

const (
	colorBlue = 0x3498DB
	colorRed  = 0xE74C3C
)

var ErrInvalidWebhook = errors.New("invalid discord webhook url")

// Notifier receives every rendered frame.
type Notifier interface {
	Notify(ctx context.Context, f render.Frame) error
}

type Discord struct {
	session *discordgo.Session
	id      string
	token   string
	logger  *slog.Logger
}

type Option func(*Discord)

// WithHTTPClient replaces the HTTP client used for webhook calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Discord) {
		d.session.Client = hc
	}
}

// NewDiscord parses a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>.
func NewDiscord(webhookURL string, logger *slog.Logger, opts ...Option) (*Discord, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// webhooks carry their own credentials, the bot token stays empty
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	d := &Discord{session: session, id: id, token: token, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrInvalidWebhook, raw)
}

func (d *Discord) Notify(ctx context.Context, f render.Frame) error {
	params := &discordgo.WebhookParams{
		Username: "lol-cooldowns",
		Embeds:   BuildEmbeds(f),
	}
	if _, err := d.session.WebhookExecute(d.id, d.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	d.logger.Debug("posted cooldowns to discord", "embeds", len(params.Embeds))
	return nil
}

// BuildEmbeds returns one embed per team, blue side first.
func BuildEmbeds(f render.Frame) []*discordgo.MessageEmbed {
	header := render.Header(f.Match)

	var embeds []*discordgo.MessageEmbed
	for i, team := range f.View.Teams {
		if len(team.Rows) == 0 {
			continue
		}

		embed := &discordgo.MessageEmbed{
			Title:       render.Title(team),
			Description: header,
			Color:       colorBlue,
		}
		if i == 1 {
			embed.Color = colorRed
		}

		for _, row := range team.Rows {
			name := row.ChampionName
			if row.IsViewer {
				name = "⭐ " + name
			}
			if row.SummonerName != "" {
				name += " (" + row.SummonerName + ")"
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: name,
				Value: fmt.Sprintf("**Q** %s · **W** %s · **E** %s · **R** %s",
					row.Cooldowns[0], row.Cooldowns[1], row.Cooldowns[2], row.Cooldowns[3]),
			})
		}

		if f.StaticVersion != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: "Data " + f.StaticVersion}
		}
		embeds = append(embeds, embed)
	}
	return embeds
}
