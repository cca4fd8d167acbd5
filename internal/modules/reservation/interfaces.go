package reservation

import (
	"context"

	"accessplus/internal/domain"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation, idempotencyKey string) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Reservation, error)
	GetByVenueID(ctx context.Context, venueID string) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	SetFeedback(ctx context.Context, id string, fb domain.Feedback) error
}

type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// NotificationSender receives reservation lifecycle events. Nil is allowed;
// the service degrades to silent.
type NotificationSender interface {
	NotifyReservationConfirmed(ctx context.Context, userID, venueName string)
	NotifyReservationCancelled(ctx context.Context, userID, venueName string)
}
