package admin

import (
	"context"
	"time"

	"accessplus/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	List(ctx context.Context) ([]domain.Venue, error)
	Count(ctx context.Context, statuses ...domain.VenueStatus) (int64, error)
}

type ReservationCounter interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// MembershipService is the slice of the membership module the admin
// module delegates to.
type MembershipService interface {
	ToggleStatus(ctx context.Context, userID string) (*domain.User, error)
}
