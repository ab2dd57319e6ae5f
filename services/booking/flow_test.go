package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"goroute/models"
	"goroute/services/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, b models.Booking, destination string) (models.TicketDocument, error) {
	args := m.Called(ctx, b, destination)
	return args.Get(0).(models.TicketDocument), args.Error(1)
}

func newTestFlow(t *testing.T, renderer TicketRenderer) (*Flow, *MemorySessionStore) {
	t.Helper()
	store := NewMemorySessionStore(30 * time.Minute)
	flow, err := NewFlow(FlowDeps{
		Store:    store,
		Renderer: renderer,
		Random:   transport.NewSource(2024),
		Logger:   zaptest.NewLogger(t),
		Now:      func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return flow, store
}

func send(t *testing.T, f *Flow, userID string, ev models.Event) Outcome {
	t.Helper()
	out, err := f.Handle(context.Background(), userID, ev)
	require.NoError(t, err)
	require.NotEmpty(t, out.Replies)
	return out
}

// driveToSeat walks a session up to AWAITING_SEAT_NUMBER.
func driveToSeat(t *testing.T, f *Flow, userID string, mode models.Mode) {
	t.Helper()
	steps := []struct {
		ev   models.Event
		want models.State
	}{
		{models.StartBooking(), models.StateAwaitingSource},
		{models.TextInput("Delhi"), models.StateAwaitingDestination},
		{models.TextInput("Lucknow"), models.StateAwaitingMode},
		{models.ModeSelected(mode), models.StateAwaitingOption},
		{models.OptionSelected(0), models.StateAwaitingName},
		{models.TextInput("Asha Rao"), models.StateAwaitingAge},
		{models.TextInput("29"), models.StateAwaitingSeat},
	}
	for _, step := range steps {
		out := send(t, f, userID, step.ev)
		require.Equal(t, step.want, out.State, "after %s", step.ev.Kind)
	}
}

func TestFlowEndToEndTrain(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything, mock.AnythingOfType("models.Booking"), mock.MatchedBy(func(dest string) bool {
		return len(dest) == len("ticket_12345678.pdf")
	})).Return(models.TicketDocument{FileName: "ticket.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")}, nil).Once()

	flow, store := newTestFlow(t, renderer)
	ctx := context.Background()

	driveToSeat(t, flow, "u1", models.ModeTrain)
	session, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, session.OfferedOptions, 5)
	chosen := session.OfferedOptions[0]

	out := send(t, flow, "u1", models.TextInput("S14"))
	assert.Equal(t, models.StateComplete, out.State)
	require.NotNil(t, out.Booking)

	b := out.Booking
	assert.Equal(t, []string{"S14"}, b.Seats)
	assert.Equal(t, chosen.Price, b.Fare)
	assert.Equal(t, chosen.DepartureTime, b.DepartureTime)
	assert.Equal(t, chosen.ArrivalTime, b.ArrivalTime)
	assert.Equal(t, chosen.OperatorName, b.Operator)
	assert.Len(t, b.TicketID, 8)
	assert.Equal(t, "Delhi", b.From)
	assert.Equal(t, "Lucknow", b.To)
	assert.Equal(t, "DEL", b.FromCode)
	assert.Equal(t, "LKO", b.ToCode)
	assert.Equal(t, "Asha Rao", b.PassengerName)
	assert.Equal(t, 29, b.PassengerAge)
	assert.Equal(t, DefaultEmail, b.Email)
	assert.Contains(t, b.Gate, "Platform ")
	assert.NotEmpty(t, b.BoardingTime)
	assert.Nil(t, b.Hotel)

	require.Len(t, out.Replies, 1)
	assert.Equal(t, models.ReplyDocument, out.Replies[0].Kind)
	assert.Contains(t, out.Replies[0].Text, b.TicketID)

	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrSessionNotFound, "completed sessions are discarded")
	renderer.AssertExpectations(t)
}

func TestFlowEveryModeCompletes(t *testing.T) {
	for _, mode := range models.Modes {
		t.Run(string(mode), func(t *testing.T) {
			renderer := &mockRenderer{}
			renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
				Return(models.TicketDocument{Data: []byte("x")}, nil)
			flow, _ := newTestFlow(t, renderer)

			driveToSeat(t, flow, "user-"+string(mode), mode)
			out := send(t, flow, "user-"+string(mode), models.TextInput("7"))
			require.Equal(t, models.StateComplete, out.State)
			require.NotNil(t, out.Booking)
			assert.Equal(t, mode, out.Booking.Mode)
			assert.Len(t, out.Booking.Seats, 1)
		})
	}
}

func TestFlowInvalidAgeStaysPut(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	ctx := context.Background()

	send(t, flow, "u2", models.StartBooking())
	send(t, flow, "u2", models.TextInput("Delhi"))
	send(t, flow, "u2", models.TextInput("Jaipur"))
	send(t, flow, "u2", models.ModeSelected(models.ModeBus))
	send(t, flow, "u2", models.OptionSelected(2))
	send(t, flow, "u2", models.TextInput("Ravi"))

	before, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingAge, before.State)

	for _, input := range []string{"abc", "", "-3", "12.5", "twenty"} {
		out := send(t, flow, "u2", models.TextInput(input))
		assert.Equal(t, models.StateAwaitingAge, out.State, "input %q", input)
		assert.Equal(t, msgInvalidAge, out.Replies[0].Text)

		after, err := store.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, before, after, "input %q must not touch the session", input)
	}

	out := send(t, flow, "u2", models.TextInput(" 0 "))
	assert.Equal(t, models.StateAwaitingSeat, out.State)
}

func TestFlowCancelFromAwaitingMode(t *testing.T) {
	renderer := &mockRenderer{}
	flow, store := newTestFlow(t, renderer)
	ctx := context.Background()

	send(t, flow, "u3", models.StartBooking())
	send(t, flow, "u3", models.TextInput("Delhi"))
	out := send(t, flow, "u3", models.TextInput("Agra"))
	require.Equal(t, models.StateAwaitingMode, out.State)

	out = send(t, flow, "u3", models.CancelRequested())
	assert.Equal(t, models.StateCancelled, out.State)
	assert.Nil(t, out.Booking)

	_, err := store.Get(ctx, "u3")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Later input finds no session and never reaches the renderer.
	out = send(t, flow, "u3", models.ModeSelected(models.ModeTrain))
	assert.Equal(t, models.StateIdle, out.State)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlowCancelWithoutSession(t *testing.T) {
	flow, _ := newTestFlow(t, &mockRenderer{})
	out := send(t, flow, "nobody", models.CancelRequested())
	assert.Equal(t, models.StateIdle, out.State)
	assert.Equal(t, msgNoSession, out.Replies[0].Text)
}

func TestFlowUnknownModeAborts(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	send(t, flow, "u4", models.StartBooking())
	send(t, flow, "u4", models.TextInput("Goa"))
	send(t, flow, "u4", models.TextInput("Pune"))

	out := send(t, flow, "u4", models.ModeSelected(models.Mode("Boat")))
	assert.Equal(t, models.StateCancelled, out.State)
	assert.Equal(t, msgInternal, out.Replies[0].Text)
	assert.Equal(t, 0, store.Len())
}

func TestFlowRepromptsOnWrongInput(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	ctx := context.Background()

	send(t, flow, "u5", models.StartBooking())
	out := send(t, flow, "u5", models.TextInput("   "))
	assert.Equal(t, models.StateAwaitingSource, out.State)

	send(t, flow, "u5", models.TextInput("Delhi"))
	send(t, flow, "u5", models.TextInput("Goa"))

	out = send(t, flow, "u5", models.TextInput("Flight"))
	assert.Equal(t, models.StateAwaitingMode, out.State)
	assert.Equal(t, models.ReplyChoices, out.Replies[0].Kind)
	assert.Len(t, out.Replies[0].Choices, 3)

	out = send(t, flow, "u5", models.ModeSelected(models.ModeFlight))
	require.Len(t, out.Replies[0].Choices, 5)
	assert.Equal(t, models.OptionToken(4), out.Replies[0].Choices[4].Token)

	out = send(t, flow, "u5", models.OptionSelected(5))
	assert.Equal(t, models.StateAwaitingOption, out.State)
	assert.Equal(t, msgPickListed, out.Replies[0].Text)

	s, err := store.Get(ctx, "u5")
	require.NoError(t, err)
	assert.Nil(t, s.SelectedOption)
}

func TestFlowOptionsFixedForSession(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	ctx := context.Background()

	send(t, flow, "u6", models.StartBooking())
	send(t, flow, "u6", models.TextInput("Delhi"))
	send(t, flow, "u6", models.TextInput("Goa"))
	send(t, flow, "u6", models.ModeSelected(models.ModeFlight))
	first, err := store.Get(ctx, "u6")
	require.NoError(t, err)

	send(t, flow, "u6", models.ModeSelected(models.ModeBus)) // wrong kind now, re-prompt
	send(t, flow, "u6", models.OptionSelected(3))
	second, err := store.Get(ctx, "u6")
	require.NoError(t, err)

	assert.Equal(t, first.OfferedOptions, second.OfferedOptions)
	assert.Equal(t, models.ModeFlight, second.Mode)
	assert.Equal(t, first.OfferedOptions[3], *second.SelectedOption)
}

func TestFlowRenderFailureCompletesWithoutBooking(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
		Return(models.TicketDocument{}, errors.New("disk full")).Once()
	flow, store := newTestFlow(t, renderer)

	driveToSeat(t, flow, "u7", models.ModeFlight)
	out := send(t, flow, "u7", models.TextInput("12A"))
	assert.Equal(t, models.StateComplete, out.State)
	assert.Nil(t, out.Booking)
	assert.Equal(t, msgTicketFailed, out.Replies[0].Text)
	assert.Equal(t, 0, store.Len())

	// No retry: the next message finds no session.
	out = send(t, flow, "u7", models.TextInput("12A"))
	assert.Equal(t, models.StateIdle, out.State)
	renderer.AssertNumberOfCalls(t, "Render", 1)
}

func TestFlowStartRestartsSession(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	ctx := context.Background()

	send(t, flow, "u8", models.StartBooking())
	send(t, flow, "u8", models.TextInput("Delhi"))
	out := send(t, flow, "u8", models.StartBooking())
	assert.Equal(t, models.StateAwaitingSource, out.State)

	s, err := store.Get(ctx, "u8")
	require.NoError(t, err)
	assert.Empty(t, s.Source)
}

func TestFlowSessionsAreIsolated(t *testing.T) {
	flow, store := newTestFlow(t, &mockRenderer{})
	ctx := context.Background()

	send(t, flow, "alice", models.StartBooking())
	send(t, flow, "bob", models.StartBooking())
	send(t, flow, "alice", models.TextInput("Delhi"))
	send(t, flow, "bob", models.TextInput("Mumbai"))
	send(t, flow, "bob", models.CancelRequested())

	alice, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Delhi", alice.Source)
	assert.Equal(t, models.StateAwaitingDestination, alice.State)

	_, err = store.Get(ctx, "bob")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type failingStore struct {
	*MemorySessionStore
	saveErr   error
	deleteErr error
}

func (s *failingStore) Save(ctx context.Context, session *models.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.MemorySessionStore.Save(ctx, session)
}

func (s *failingStore) Delete(ctx context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.MemorySessionStore.Delete(ctx, userID)
}

func TestFlowFailedDeleteDoesNotRenderTwice(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything, mock.Anything, mock.Anything).
		Return(models.TicketDocument{FileName: "ticket.pdf", Data: []byte("%PDF-")}, nil)
	store := &failingStore{MemorySessionStore: NewMemorySessionStore(0)}
	flow, err := NewFlow(FlowDeps{
		Store:    store,
		Renderer: renderer,
		Random:   transport.NewSource(11),
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	driveToSeat(t, flow, "u10", models.ModeBus)
	store.deleteErr = errors.New("redis down")

	out := send(t, flow, "u10", models.TextInput("A7"))
	require.Equal(t, models.StateComplete, out.State)
	require.NotNil(t, out.Booking)

	// The session survived the failed delete but is already finished.
	left, err := store.MemorySessionStore.Get(context.Background(), "u10")
	require.NoError(t, err)
	assert.Equal(t, models.StateComplete, left.State)

	out = send(t, flow, "u10", models.TextInput("A7"))
	assert.Equal(t, models.StateIdle, out.State)
	assert.Nil(t, out.Booking)
	renderer.AssertNumberOfCalls(t, "Render", 1)
}

func TestFlowCancelFromEveryActiveState(t *testing.T) {
	// Inputs that walk a fresh session forward one state at a time.
	path := []models.Event{
		models.TextInput("Delhi"),
		models.TextInput("Jaipur"),
		models.ModeSelected(models.ModeTrain),
		models.OptionSelected(1),
		models.TextInput("Asha Rao"),
		models.TextInput("29"),
	}
	states := []models.State{
		models.StateAwaitingSource,
		models.StateAwaitingDestination,
		models.StateAwaitingMode,
		models.StateAwaitingOption,
		models.StateAwaitingName,
		models.StateAwaitingAge,
		models.StateAwaitingSeat,
	}

	for i, want := range states {
		t.Run(string(want), func(t *testing.T) {
			renderer := &mockRenderer{}
			flow, store := newTestFlow(t, renderer)

			out := send(t, flow, "u11", models.StartBooking())
			for _, ev := range path[:i] {
				out = send(t, flow, "u11", ev)
			}
			require.Equal(t, want, out.State)

			out = send(t, flow, "u11", models.CancelRequested())
			assert.Equal(t, models.StateCancelled, out.State)
			assert.Nil(t, out.Booking)
			assert.Equal(t, 0, store.Len())
			renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFlowStoreFailureIsReturned(t *testing.T) {
	boom := errors.New("redis down")
	flow, err := NewFlow(FlowDeps{
		Store:    &failingStore{MemorySessionStore: NewMemorySessionStore(0), saveErr: boom},
		Renderer: &mockRenderer{},
	})
	require.NoError(t, err)

	_, err = flow.Handle(context.Background(), "u9", models.StartBooking())
	assert.ErrorIs(t, err, boom)
}

func TestNewFlowRequiresDeps(t *testing.T) {
	_, err := NewFlow(FlowDeps{Renderer: &mockRenderer{}})
	assert.Error(t, err)
}

func TestQuoteMultiSeat(t *testing.T) {
	flow, _ := newTestFlow(t, &mockRenderer{})

	q, err := flow.Quote(models.ModeBus, 2)
	require.NoError(t, err)
	assert.Equal(t, 1000, q.Fare)
	require.Len(t, q.Seats, 2)
	assert.NotEqual(t, q.Seats[0], q.Seats[1])

	_, err = flow.Quote(models.ModeBus, 41)
	assert.ErrorIs(t, err, transport.ErrSeatAllocation)

	_, err = flow.Quote(models.Mode("Boat"), 1)
	assert.ErrorIs(t, err, transport.ErrInvalidMode)

	_, err = flow.Quote(models.ModeBus, 0)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
