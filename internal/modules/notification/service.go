package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

const defaultFeedLimit = 50

type Service struct {
	notifications NotificationRepository
	hub           *Hub
	now           func() time.Time
}

// NewService builds the notification service. hub may be nil when live push
// is not wired.
func NewService(notifications NotificationRepository, hub *Hub) *Service {
	return &Service{
		notifications: notifications,
		hub:           hub,
		now:           time.Now,
	}
}

// View is a notification decorated with its Spanish relative age.
type View struct {
	domain.Notification
	Age string `json:"age"`
}

func (s *Service) Feed(ctx context.Context, userID string) ([]View, error) {
	rows, err := s.notifications.GetByUserID(ctx, userID, defaultFeedLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]View, 0, len(rows))
	for _, n := range rows {
		out = append(out, View{Notification: n, Age: RelativeAge(n.CreatedAt, now)})
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkAsRead is idempotent: marking an already-read notification succeeds.
func (s *Service) MarkAsRead(ctx context.Context, id, userID string) error {
	err := s.notifications.MarkAsRead(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllAsRead(ctx, userID)
}

// Notify persists a notification and pushes it to the user's live socket if
// one is open. Delivery failures are not surfaced to the emitting flow.
func (s *Service) Notify(ctx context.Context, userID string, typ domain.NotificationType, title, message string) {
	n := &domain.Notification{
		ID:        "ntf_" + uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return
	}
	if s.hub != nil {
		s.hub.SendToUser(userID, View{Notification: *n, Age: RelativeAge(n.CreatedAt, s.now())})
	}
}

func (s *Service) NotifyReservationConfirmed(ctx context.Context, userID, venueName string) {
	s.Notify(ctx, userID, domain.NotifReservation,
		"Reserva confirmada",
		fmt.Sprintf("Tu reserva en %s ha sido confirmada.", venueName))
}

func (s *Service) NotifyReservationCancelled(ctx context.Context, userID, venueName string) {
	s.Notify(ctx, userID, domain.NotifReservation,
		"Reserva cancelada",
		fmt.Sprintf("Tu reserva en %s ha sido cancelada.", venueName))
}

func (s *Service) NotifyMembershipActivated(ctx context.Context, userID string, level domain.AccessLevel) {
	s.Notify(ctx, userID, domain.NotifSystem,
		"Membresía activada",
		fmt.Sprintf("Bienvenido a ACCESS+ %s. Tu membresía ya está activa.", level))
}

// RelativeAge renders how long ago a timestamp happened, in Spanish, using
// the largest applicable unit. Anything under a minute is "hace un momento".
func RelativeAge(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d >= 365*24*time.Hour:
		return plural(int(d.Hours()/(365*24)), "año", "años")
	case d >= 30*24*time.Hour:
		return plural(int(d.Hours()/(30*24)), "mes", "meses")
	case d >= 24*time.Hour:
		return plural(int(d.Hours()/24), "día", "días")
	case d >= time.Hour:
		return plural(int(d.Hours()), "hora", "horas")
	case d >= time.Minute:
		return plural(int(d.Minutes()), "minuto", "minutos")
	default:
		return "hace un momento"
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("hace 1 %s", singular)
	}
	return fmt.Sprintf("hace %d %s", n, pluralForm)
}
