package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAnnouncer posts newly published events to a channel. Without a
// token or channel it only logs.
type TelegramAnnouncer struct {
	bot       sender
	channelID int64
	logger    logger.Logger
}

func NewTelegramAnnouncer(token string, channelID int64, logger logger.Logger) (*TelegramAnnouncer, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, announcements disabled")
		return &TelegramAnnouncer{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAnnouncer{bot: bot, channelID: channelID, logger: logger}, nil
}

func (n *TelegramAnnouncer) AnnounceEvent(ctx context.Context, event domain.Event) {
	n.send(ctx, formatAnnouncement(event))
}

func formatAnnouncement(e domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, e.Title))
	if !e.Category.IsPlaceholder() {
		fmt.Fprintf(&b, "Category: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, e.Category.Name))
	}
	fmt.Fprintf(&b, "Where: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, e.LocationName))
	fmt.Fprintf(&b, "When (UTC): %s", e.StartDate.UTC().Format(dateLayout))
	if e.EndDate != nil {
		fmt.Fprintf(&b, " - %s", e.EndDate.UTC().Format(dateLayout))
	}
	if e.WebsiteURL != nil {
		fmt.Fprintf(&b, "\n%s", *e.WebsiteURL)
	}
	return b.String()
}

func (n *TelegramAnnouncer) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("announcement skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.channelID == 0 {
		n.logger.Debug("announcement skipped (no channel_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("announcement skipped (context cancelled)",
			logger.Int64("channel_id", n.channelID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.channelID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram announcement",
			logger.Int64("channel_id", n.channelID),
			logger.String("error", err.Error()),
		)
	}
}
