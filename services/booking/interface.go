package booking

import (
	"context"

	"goroute/models"
)

// SessionStore keeps at most one active session per user.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, userID string) error
}

// TicketRenderer turns a finished booking into a document for destination
// (a file name the delivery adapter attaches the artifact under).
type TicketRenderer interface {
	Render(ctx context.Context, booking models.Booking, destination string) (models.TicketDocument, error)
}
