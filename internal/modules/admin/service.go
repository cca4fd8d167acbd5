package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type Service struct {
	users        UserRepository
	venues       VenueRepository
	reservations ReservationCounter
	membership   MembershipService
}

func NewService(users UserRepository, venues VenueRepository, reservations ReservationCounter, membership MembershipService) *Service {
	return &Service{
		users:        users,
		venues:       venues,
		reservations: reservations,
		membership:   membership,
	}
}

// ChangeVenueStatus moves a venue through its approval lifecycle. Only
// pendiente→aprobado and aprobado↔suspendido are legal; everything else,
// including pendiente→suspendido, is rejected.
func (s *Service) ChangeVenueStatus(ctx context.Context, venueID string, to domain.VenueStatus) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	if !domain.VenueTransitionAllowed(v.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.Status, to)
	}

	v.Status = to
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ListVenues returns the full catalog regardless of status, for the admin
// dashboard.
func (s *Service) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.venues.List(ctx)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].AttachPlan()
	}
	return users, nil
}

func (s *Service) ToggleUserStatus(ctx context.Context, userID string) (*domain.User, error) {
	return s.membership.ToggleStatus(ctx, userID)
}

// CreateUser is the admin path for onboarding a member directly. The member
// is activated immediately with the chosen plan and a Premium card category.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	level := domain.AccessLevel(req.Level)
	if _, ok := domain.TierByLevel(level); !ok {
		return nil, ErrInvalidLevel
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expires := now.AddDate(1, 0, 0)
	id := "usr_" + uuid.NewString()
	u := &domain.User{
		ID:                 id,
		Name:               req.Name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               domain.RoleUser,
		AccessLevel:        level,
		CardCategory:       domain.CategoryPremium,
		SubscriptionStatus: domain.SubscriptionActive,
		MembershipExpires:  &expires,
		WalletQR:           "ACCESS+" + strings.ToUpper(id) + "-" + strings.ToUpper(string(level)),
		Country:            req.Country,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.AttachPlan()
	return u, nil
}

func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVenues, err = s.venues.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingVenues, err = s.venues.Count(ctx, domain.VenuePending); err != nil {
		return nil, err
	}
	if stats.TotalReservations, err = s.reservations.Count(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.TodaysReservations, err = s.reservations.CountCreatedBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1)); err != nil {
		return nil, err
	}

	return stats, nil
}
