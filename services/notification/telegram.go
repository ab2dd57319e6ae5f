package notification

import (
	"context"
	"fmt"

	"goroute/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// BotAPI is the subset of *tgbotapi.BotAPI the messenger uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramMessenger renders replies as Telegram messages. Choices become an
// inline keyboard with one button per row; documents are uploaded from memory.
type TelegramMessenger struct {
	bot    BotAPI
	logger *zap.Logger
}

func NewTelegramMessenger(bot BotAPI, logger *zap.Logger) *TelegramMessenger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramMessenger{bot: bot, logger: logger}
}

func (t *TelegramMessenger) SendText(ctx context.Context, chatID int64, text string) error {
	return t.send(ctx, chatID, tgbotapi.NewMessage(chatID, text))
}

func (t *TelegramMessenger) SendChoices(ctx context.Context, chatID int64, text string, choices []models.Choice) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(choices) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices))
		for _, c := range choices {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Token),
			))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	return t.send(ctx, chatID, msg)
}

func (t *TelegramMessenger) SendDocument(ctx context.Context, chatID int64, caption string, doc models.TicketDocument) error {
	upload := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: doc.FileName, Bytes: doc.Data})
	upload.Caption = caption
	return t.send(ctx, chatID, upload)
}

// AnswerCallback clears the loading indicator on the pressed button.
func (t *TelegramMessenger) AnswerCallback(ctx context.Context, callbackID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := t.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}
	return nil
}

func (t *TelegramMessenger) send(ctx context.Context, chatID int64, c tgbotapi.Chattable) error {
	if err := ctx.Err(); err != nil {
		t.logger.Debug("telegram send skipped (context cancelled)", zap.Int64("chat_id", chatID))
		return err
	}
	if _, err := t.bot.Send(c); err != nil {
		t.logger.Error("failed to send telegram message", zap.Int64("chat_id", chatID), zap.Error(err))
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
