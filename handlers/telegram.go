package handlers

import (
	"context"
	"strconv"

	"goroute/models"
	"goroute/services/booking"
	"goroute/services/notification"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// UpdateFeed is the long-polling side of *tgbotapi.BotAPI.
type UpdateFeed interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// TelegramHandler turns Telegram updates into booking events and delivers the replies.
type TelegramHandler struct {
	Flow      BookingFlow
	Messenger notification.Messenger
	Logger    *zap.Logger
}

func NewTelegramHandler(flow BookingFlow, messenger notification.Messenger, logger *zap.Logger) *TelegramHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramHandler{Flow: flow, Messenger: messenger, Logger: logger}
}

// Run polls for updates until ctx is cancelled. Updates are handled one at a
// time, so events for a user never race.
func (h *TelegramHandler) Run(ctx context.Context, feed UpdateFeed, timeoutSeconds int) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSeconds
	updates := feed.GetUpdatesChan(u)
	defer feed.StopReceivingUpdates()

	h.Logger.Info("Telegram polling started")
	for {
		select {
		case <-ctx.Done():
			h.Logger.Info("Telegram polling stopped")
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			if err := h.HandleUpdate(ctx, upd); err != nil {
				h.Logger.Error("Failed to handle telegram update", zap.Int("update_id", upd.UpdateID), zap.Error(err))
			}
		}
	}
}

// HandleUpdate processes a single update. Updates the bot has no use for are ignored.
func (h *TelegramHandler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) error {
	switch {
	case upd.CallbackQuery != nil:
		return h.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		return h.handleMessage(ctx, upd.Message)
	}
	return nil
}

func (h *TelegramHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || msg.Chat == nil {
		return nil
	}
	chatID := msg.Chat.ID
	userID := strconv.FormatInt(msg.From.ID, 10)

	if !msg.IsCommand() {
		return h.dispatch(ctx, chatID, userID, models.TextInput(msg.Text))
	}

	switch msg.Command() {
	case cmdStart:
		return notification.Deliver(ctx, h.Messenger, chatID, []models.Reply{booking.Welcome()})
	case cmdHotels:
		return notification.Deliver(ctx, h.Messenger, chatID, []models.Reply{hotelListing(msg.CommandArguments())})
	}
	if ev, ok := commandEvent(msg.Command()); ok {
		return h.dispatch(ctx, chatID, userID, ev)
	}
	return h.Messenger.SendText(ctx, chatID, "Unknown command. Use /book to start booking.")
}

func (h *TelegramHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) error {
	if err := h.Messenger.AnswerCallback(ctx, cq.ID); err != nil {
		h.Logger.Warn("Failed to answer callback", zap.String("callback_id", cq.ID), zap.Error(err))
	}
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return nil
	}

	ev, err := models.ParseSelectionToken(cq.Data)
	if err != nil {
		h.Logger.Warn("Ignoring unknown button", zap.String("data", cq.Data), zap.Error(err))
		return nil
	}
	return h.dispatch(ctx, cq.Message.Chat.ID, strconv.FormatInt(cq.From.ID, 10), ev)
}

func (h *TelegramHandler) dispatch(ctx context.Context, chatID int64, userID string, ev models.Event) error {
	out, err := h.Flow.Handle(ctx, userID, ev)
	if err != nil {
		if sendErr := h.Messenger.SendText(ctx, chatID, "Something went wrong. Please try again later."); sendErr != nil {
			h.Logger.Warn("Failed to report error to user", zap.Int64("chat_id", chatID), zap.Error(sendErr))
		}
		return err
	}
	if out.Booking != nil {
		h.Logger.Info("Ticket delivered", zap.String("user_id", userID), zap.String("ticket_id", out.Booking.TicketID))
	}
	return notification.Deliver(ctx, h.Messenger, chatID, out.Replies)
}
