package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"goroute/models"
	"goroute/services/transport"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEmail is printed on tickets when no contact address is configured.
const DefaultEmail = "demo@mail.com"

// Outcome is what one event did to a session.
type Outcome struct {
	State   models.State
	Replies []models.Reply
	Booking *models.Booking // Set only on a successful completion
}

// FlowDeps wires a Flow. Store and Renderer are required.
type FlowDeps struct {
	Store       SessionStore
	Renderer    TicketRenderer
	Random      transport.Source
	Logger      *zap.Logger
	Email       string
	Now         func() time.Time
	NewTicketID func() string
}

// Flow drives booking conversations: source, destination, mode, option,
// passenger name, age and seat, then the ticket.
type Flow struct {
	store       SessionStore
	renderer    TicketRenderer
	random      transport.Source
	logger      *zap.Logger
	email       string
	now         func() time.Time
	newTicketID func() string
}

func NewFlow(deps FlowDeps) (*Flow, error) {
	if deps.Store == nil || deps.Renderer == nil {
		return nil, fmt.Errorf("booking flow initialization error: store or renderer is nil")
	}
	f := &Flow{
		store:       deps.Store,
		renderer:    deps.Renderer,
		random:      deps.Random,
		logger:      deps.Logger,
		email:       deps.Email,
		now:         deps.Now,
		newTicketID: deps.NewTicketID,
	}
	if f.random == nil {
		f.random = transport.NewLockedSource(transport.NewSource(0))
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	if f.email == "" {
		f.email = DefaultEmail
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.newTicketID == nil {
		f.newTicketID = newTicketID
	}
	return f, nil
}

// newTicketID mints an 8 character token from a v4 UUID.
func newTicketID() string {
	return uuid.New().String()[:8]
}

// Handle applies one inbound event to the user's session. A returned error is
// an infrastructure fault (the session store failed); everything the user did
// wrong is answered through Outcome.Replies.
func (f *Flow) Handle(ctx context.Context, userID string, ev models.Event) (Outcome, error) {
	switch ev.Kind {
	case models.EventStartBooking:
		return f.start(ctx, userID)
	case models.EventCancelRequested:
		return f.cancel(ctx, userID)
	}

	session, err := f.store.Get(ctx, userID)
	if errors.Is(err, ErrSessionNotFound) {
		return reply(models.StateIdle, models.TextReply(msgNoSession)), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("load session for %s: %w", userID, err)
	}

	switch session.State {
	case models.StateAwaitingSource:
		return f.onText(ctx, session, ev, func(text string) {
			session.Source = text
			session.State = models.StateAwaitingDestination
		})
	case models.StateAwaitingDestination:
		return f.onText(ctx, session, ev, func(text string) {
			session.Destination = text
			session.State = models.StateAwaitingMode
		})
	case models.StateAwaitingMode:
		return f.onMode(ctx, session, ev)
	case models.StateAwaitingOption:
		return f.onOption(ctx, session, ev)
	case models.StateAwaitingName:
		return f.onText(ctx, session, ev, func(text string) {
			session.PassengerName = text
			session.State = models.StateAwaitingAge
		})
	case models.StateAwaitingAge:
		return f.onAge(ctx, session, ev)
	case models.StateAwaitingSeat:
		return f.onSeat(ctx, session, ev)
	}

	// A finished session whose delete failed, or an unknown state: drop it.
	if session.State.IsTerminal() {
		f.logger.Debug("Handle: dropping finished session", zap.String("userID", userID))
	} else {
		f.logger.Error("Handle: stored session in unexpected state",
			zap.String("userID", userID), zap.String("state", string(session.State)))
	}
	f.discard(ctx, userID)
	return reply(models.StateIdle, models.TextReply(msgNoSession)), nil
}

func (f *Flow) start(ctx context.Context, userID string) (Outcome, error) {
	now := f.now()
	session := &models.Session{
		UserID:    userID,
		State:     models.StateAwaitingSource,
		StartedAt: now,
		UpdatedAt: now,
	}
	// Saving over any previous session restarts the conversation.
	if err := f.store.Save(ctx, session); err != nil {
		return Outcome{}, fmt.Errorf("start session for %s: %w", userID, err)
	}
	f.logger.Info("booking session started", zap.String("userID", userID))
	return reply(session.State, promptFor(session)), nil
}

func (f *Flow) cancel(ctx context.Context, userID string) (Outcome, error) {
	if _, err := f.store.Get(ctx, userID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return reply(models.StateIdle, models.TextReply(msgNoSession)), nil
		}
		return Outcome{}, fmt.Errorf("load session for %s: %w", userID, err)
	}
	if err := f.store.Delete(ctx, userID); err != nil {
		return Outcome{}, fmt.Errorf("cancel session for %s: %w", userID, err)
	}
	f.logger.Info("booking session cancelled", zap.String("userID", userID))
	return reply(models.StateCancelled, models.TextReply(msgCancelled)), nil
}

// onText accepts any non-blank text and lets apply store it and advance.
func (f *Flow) onText(ctx context.Context, s *models.Session, ev models.Event, apply func(text string)) (Outcome, error) {
	text := strings.TrimSpace(ev.Text)
	if ev.Kind != models.EventTextInput || text == "" {
		return reply(s.State, promptFor(s)), nil
	}
	apply(text)
	return f.advance(ctx, s)
}

func (f *Flow) onMode(ctx context.Context, s *models.Session, ev models.Event) (Outcome, error) {
	if ev.Kind != models.EventModeSelected {
		return reply(s.State, promptFor(s)), nil
	}
	if !ev.Mode.Valid() {
		return f.abort(ctx, s, fmt.Errorf("%w: %q", transport.ErrInvalidMode, ev.Mode))
	}
	options, err := transport.GenerateOptions(f.random, s.Source, s.Destination, ev.Mode)
	if err != nil {
		return f.abort(ctx, s, err)
	}
	s.Mode = ev.Mode
	s.OfferedOptions = options
	s.State = models.StateAwaitingOption
	return f.advance(ctx, s)
}

func (f *Flow) onOption(ctx context.Context, s *models.Session, ev models.Event) (Outcome, error) {
	if ev.Kind != models.EventOptionSelected {
		return reply(s.State, promptFor(s)), nil
	}
	if ev.Index < 0 || ev.Index >= len(s.OfferedOptions) {
		return reply(s.State, models.TextReply(msgPickListed), promptFor(s)), nil
	}
	selected := s.OfferedOptions[ev.Index]
	s.SelectedOption = &selected
	s.State = models.StateAwaitingName
	return f.advance(ctx, s)
}

func (f *Flow) onAge(ctx context.Context, s *models.Session, ev models.Event) (Outcome, error) {
	if ev.Kind != models.EventTextInput {
		return reply(s.State, promptFor(s)), nil
	}
	age, err := parseAge(ev.Text)
	if err != nil {
		f.logger.Debug("onAge: rejected input", zap.String("userID", s.UserID), zap.Error(err))
		return reply(s.State, models.TextReply(msgInvalidAge)), nil
	}
	s.PassengerAge = &age
	s.State = models.StateAwaitingSeat
	return f.advance(ctx, s)
}

func parseAge(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || age < 0 {
		return 0, &ValidationError{Field: "age", Message: fmt.Sprintf("%q is not a non-negative integer", text)}
	}
	return age, nil
}

func (f *Flow) onSeat(ctx context.Context, s *models.Session, ev models.Event) (Outcome, error) {
	seat := strings.TrimSpace(ev.Text)
	if ev.Kind != models.EventTextInput || seat == "" {
		return reply(s.State, promptFor(s)), nil
	}
	s.SeatNumber = seat

	// Mark the session finished before rendering so a failed delete cannot
	// replay the seat step and render a second ticket.
	s.State = models.StateComplete
	s.UpdatedAt = f.now()
	if err := f.store.Save(ctx, s); err != nil {
		return Outcome{}, fmt.Errorf("complete session for %s: %w", s.UserID, err)
	}
	defer f.discard(ctx, s.UserID)

	booking, doc, err := f.finalize(ctx, s)
	if err != nil {
		f.logger.Error("onSeat: booking could not be delivered",
			zap.String("userID", s.UserID), zap.Error(err))
		return reply(models.StateComplete, models.TextReply(msgTicketFailed)), nil
	}

	f.logger.Info("booking completed",
		zap.String("userID", s.UserID),
		zap.String("ticketID", booking.TicketID),
		zap.String("mode", string(booking.Mode)),
		zap.Int("fare", booking.Fare))
	out := reply(models.StateComplete, models.DocumentReply(confirmationCaption(booking), doc))
	out.Booking = &booking
	return out, nil
}

// finalize assembles the booking and renders its ticket.
func (f *Flow) finalize(ctx context.Context, s *models.Session) (models.Booking, models.TicketDocument, error) {
	booking, err := f.assemble(s)
	if err != nil {
		return models.Booking{}, models.TicketDocument{}, &RenderingError{Err: err}
	}
	doc, err := f.renderer.Render(ctx, booking, fmt.Sprintf("ticket_%s.pdf", booking.TicketID))
	if err != nil {
		return models.Booking{}, models.TicketDocument{}, &RenderingError{TicketID: booking.TicketID, Err: err}
	}
	return booking, doc, nil
}

// advance persists s after a forward transition and asks the next question.
func (f *Flow) advance(ctx context.Context, s *models.Session) (Outcome, error) {
	s.UpdatedAt = f.now()
	if err := f.store.Save(ctx, s); err != nil {
		return Outcome{}, fmt.Errorf("save session for %s: %w", s.UserID, err)
	}
	return reply(s.State, promptFor(s)), nil
}

// abort ends a session on a fatal error without exposing its details.
func (f *Flow) abort(ctx context.Context, s *models.Session, cause error) (Outcome, error) {
	f.logger.Error("booking session aborted",
		zap.String("userID", s.UserID), zap.String("state", string(s.State)), zap.Error(cause))
	f.discard(ctx, s.UserID)
	return reply(models.StateCancelled, models.TextReply(msgInternal)), nil
}

func (f *Flow) discard(ctx context.Context, userID string) {
	if err := f.store.Delete(ctx, userID); err != nil {
		f.logger.Warn("discard: failed to delete session", zap.String("userID", userID), zap.Error(err))
	}
}

func reply(state models.State, replies ...models.Reply) Outcome {
	return Outcome{State: state, Replies: replies}
}
