package notification

import (
	"context"
	"fmt"

	"goroute/models"
)

// Messenger delivers bot replies to one chat.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendChoices(ctx context.Context, chatID int64, text string, choices []models.Choice) error
	SendDocument(ctx context.Context, chatID int64, caption string, doc models.TicketDocument) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// Deliver sends replies in order and stops at the first failure.
func Deliver(ctx context.Context, m Messenger, chatID int64, replies []models.Reply) error {
	for i, r := range replies {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch r.Kind {
		case models.ReplyText:
			err = m.SendText(ctx, chatID, r.Text)
		case models.ReplyChoices:
			err = m.SendChoices(ctx, chatID, r.Text, r.Choices)
		case models.ReplyDocument:
			if r.Document == nil {
				err = fmt.Errorf("document reply without a document")
				break
			}
			err = m.SendDocument(ctx, chatID, r.Text, *r.Document)
		default:
			err = fmt.Errorf("unknown reply kind %q", r.Kind)
		}
		if err != nil {
			return fmt.Errorf("deliver reply %d to chat %d: %w", i, chatID, err)
		}
	}
	return nil
}
