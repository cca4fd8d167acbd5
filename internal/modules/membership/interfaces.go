package membership

import (
	"context"

	"accessplus/internal/domain"
)

// UserRepository covers only the methods the membership service uses.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	ApplyActivation(ctx context.Context, u *domain.User, rec *domain.PaymentRecord) error
}

// PaymentRepository reads the append-only payment log
type PaymentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.PaymentRecord, error)
}

// PaymentGateway charges a member. Implementations must respect ctx so an
// abandoned flow cancels the charge attempt.
type PaymentGateway interface {
	Charge(ctx context.Context, userID string, amount float64, description string) error
}

// NotificationSender is optional; a nil sender disables notifications.
type NotificationSender interface {
	NotifyMembershipActivated(ctx context.Context, userID string, level domain.AccessLevel)
}
