package notification

import (
	"context"
	"errors"
	"testing"

	"goroute/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	failOn   int // 1-based index of the Send call that fails; 0 disables
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if f.failOn == len(f.sent) {
		return tgbotapi.Message{}, errors.New("telegram unavailable")
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func TestDeliverSendsInOrder(t *testing.T) {
	bot := &fakeBot{}
	m := NewTelegramMessenger(bot, zaptest.NewLogger(t))

	replies := []models.Reply{
		models.TextReply("hello"),
		models.ChoicesReply("pick", []models.Choice{
			{Label: "Bus", Token: "mode_Bus"},
			{Label: "Train", Token: "mode_Train"},
		}),
		models.DocumentReply("ticket", models.TicketDocument{
			FileName: "ticket_abc.pdf", ContentType: "application/pdf", Data: []byte("%PDF-"),
		}),
	}
	require.NoError(t, Deliver(context.Background(), m, 42, replies))
	require.Len(t, bot.sent, 3)

	text, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), text.ChatID)
	assert.Equal(t, "hello", text.Text)

	choices, ok := bot.sent[1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	kb, ok := choices.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 2)
	require.NotNil(t, kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "mode_Train", *kb.InlineKeyboard[1][0].CallbackData)

	doc, ok := bot.sent[2].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, "ticket", doc.Caption)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "ticket_abc.pdf", file.Name)
}

func TestDeliverStopsAtFirstFailure(t *testing.T) {
	bot := &fakeBot{failOn: 1}
	m := NewTelegramMessenger(bot, zaptest.NewLogger(t))

	err := Deliver(context.Background(), m, 7, []models.Reply{
		models.TextReply("one"),
		models.TextReply("two"),
	})
	require.Error(t, err)
	assert.Len(t, bot.sent, 1)
}

func TestDeliverRejectsEmptyDocument(t *testing.T) {
	bot := &fakeBot{}
	m := NewTelegramMessenger(bot, nil)

	err := Deliver(context.Background(), m, 7, []models.Reply{{Kind: models.ReplyDocument, Text: "x"}})
	require.Error(t, err)
	assert.Empty(t, bot.sent)
}

func TestDeliverHonoursCancelledContext(t *testing.T) {
	bot := &fakeBot{}
	m := NewTelegramMessenger(bot, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Deliver(ctx, m, 7, []models.Reply{models.TextReply("late")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, bot.sent)
}

func TestAnswerCallback(t *testing.T) {
	bot := &fakeBot{}
	m := NewTelegramMessenger(bot, nil)

	require.NoError(t, m.AnswerCallback(context.Background(), "cb-1"))
	require.Len(t, bot.requests, 1)
	cb, ok := bot.requests[0].(tgbotapi.CallbackConfig)
	require.True(t, ok)
	assert.Equal(t, "cb-1", cb.CallbackQueryID)
}
