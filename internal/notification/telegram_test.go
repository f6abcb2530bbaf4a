package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func sampleEvent() domain.Event {
	site := "https://example.org/jazz"
	return domain.Event{
		ID:           "e1",
		Title:        "Jazz_Night",
		Category:     domain.Category{ID: "c1", Name: "Culture", Slug: "culture"},
		LocationName: "Raekoja plats",
		StartDate:    time.Date(2025, time.September, 20, 19, 30, 0, 0, time.UTC),
		WebsiteURL:   &site,
	}
}

func TestTelegramAnnouncer_SendsToChannel(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramAnnouncer{bot: bot, channelID: -100123, logger: newTestLogger(t)}

	n.AnnounceEvent(context.Background(), sampleEvent())

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100123), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, `*Jazz\_Night*`)
	assert.Contains(t, bot.sent[0].Text, "Category: Culture")
	assert.Contains(t, bot.sent[0].Text, "20.09.2025 19:30")
	assert.Contains(t, bot.sent[0].Text, "https://example.org/jazz")
}

func TestTelegramAnnouncer_SkipsWithoutChannel(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramAnnouncer{bot: bot, logger: newTestLogger(t)}

	n.AnnounceEvent(context.Background(), sampleEvent())

	assert.Empty(t, bot.sent)
}

func TestTelegramAnnouncer_SkipsCancelledContext(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramAnnouncer{bot: bot, channelID: 1, logger: newTestLogger(t)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.AnnounceEvent(ctx, sampleEvent())

	assert.Empty(t, bot.sent)
}

func TestTelegramAnnouncer_SendErrorIsLogged(t *testing.T) {
	bot := &fakeSender{err: errors.New("chat not found")}
	n := &TelegramAnnouncer{bot: bot, channelID: 1, logger: newTestLogger(t)}

	assert.NotPanics(t, func() { n.AnnounceEvent(context.Background(), sampleEvent()) })
	assert.Len(t, bot.sent, 1)
}

func TestNewTelegramAnnouncer_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramAnnouncer("", 1, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
	assert.NotPanics(t, func() { n.AnnounceEvent(context.Background(), sampleEvent()) })
}

func TestFormatAnnouncement_Uncategorized(t *testing.T) {
	e := sampleEvent()
	e.Category = domain.Uncategorized()
	end := e.StartDate.Add(2 * time.Hour)
	e.EndDate = &end

	text := formatAnnouncement(e)

	assert.NotContains(t, text, "Category:")
	assert.Contains(t, text, "19:30 - 20.09.2025 21:30")
}
