package handlers

import (
	"testing"
	"time"

	"goroute/services/booking"
	"goroute/services/ticket"
	"goroute/services/transport"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestFlow(t *testing.T) *booking.Flow {
	t.Helper()
	flow, err := booking.NewFlow(booking.FlowDeps{
		Store:    booking.NewMemorySessionStore(30 * time.Minute),
		Renderer: ticket.NewPDFRenderer(zaptest.NewLogger(t)),
		Random:   transport.NewSource(7),
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return flow
}
