package reservation

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

const (
	minPartySize = 1
	maxPartySize = 20
)

type Service struct {
	reservations ReservationRepository
	venues       VenueRepository
	notifier     NotificationSender
	now          func() time.Time
}

func NewService(reservations ReservationRepository, venues VenueRepository, notifier NotificationSender) *Service {
	return &Service{
		reservations: reservations,
		venues:       venues,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Create books a table at an approved venue. A client-supplied idempotency
// key makes retries safe: a duplicate key returns the reservation created by
// the first attempt instead of a second booking.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest, idempotencyKey string) (*domain.Reservation, error) {
	if req.PartySize < minPartySize || req.PartySize > maxPartySize {
		return nil, ErrInvalidPartySize
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if venue.Status != domain.VenueApproved {
		return nil, ErrVenueNotApproved
	}

	now := s.now()
	res := &domain.Reservation{
		ID:        "res_" + uuid.NewString(),
		VenueID:   venue.ID,
		UserID:    userID,
		Date:      date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reservations.Create(ctx, res, idempotencyKey); err != nil {
		if idempotencyKey != "" && isUniqueViolation(err) {
			existing, getErr := s.reservations.GetByIdempotencyKey(ctx, idempotencyKey)
			if getErr == nil {
				existing.Venue, _ = s.venues.GetByID(ctx, existing.VenueID)
				return existing, nil
			}
		}
		return nil, err
	}

	res.Venue = venue
	return res, nil
}

// UpdateStatus moves a reservation through its lifecycle. Members may cancel
// their own reservations, venue accounts confirm or cancel reservations at
// their own venue, admins may do either.
func (s *Service) UpdateStatus(ctx context.Context, id string, to domain.ReservationStatus, callerID string, callerRole domain.UserRole, callerVenueID string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch callerRole {
	case domain.RoleAdmin:
	case domain.RoleVenue:
		if res.VenueID != callerVenueID {
			return nil, ErrNotVenueOwner
		}
	default:
		if res.UserID != callerID {
			return nil, ErrNotReservationOwner
		}
		if to != domain.ReservationCancelled {
			return nil, ErrInvalidTransition
		}
	}

	if !domain.ReservationTransitionAllowed(res.Status, to) {
		return nil, ErrInvalidTransition
	}

	if err := s.reservations.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	res.Status = to

	venue, _ := s.venues.GetByID(ctx, res.VenueID)
	res.Venue = venue

	if s.notifier != nil {
		name := res.VenueID
		if venue != nil {
			name = venue.Name
		}
		switch to {
		case domain.ReservationConfirmed:
			s.notifier.NotifyReservationConfirmed(ctx, res.UserID, name)
		case domain.ReservationCancelled:
			s.notifier.NotifyReservationCancelled(ctx, res.UserID, name)
		}
	}

	return res, nil
}

// AttachFeedback stores a rating and comment on the reservation. Calling it
// again replaces the previous feedback.
func (s *Service) AttachFeedback(ctx context.Context, id, callerID string, req FeedbackRequest) (*domain.Reservation, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if res.UserID != callerID {
		return nil, ErrNotReservationOwner
	}

	fb := domain.Feedback{Rating: req.Rating, Comment: req.Comment}
	if err := s.reservations.SetFeedback(ctx, id, fb); err != nil {
		return nil, err
	}
	res.Feedback = &fb
	return res, nil
}

// ListForUser returns the member's reservations with venues embedded,
// upcoming ones first in ascending date order, past ones after in descending
// order. Stored statuses are projected through DisplayStatus.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	rows, err := s.reservations.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upcoming := make([]domain.Reservation, 0, len(rows))
	past := make([]domain.Reservation, 0, len(rows))
	for _, r := range rows {
		r.Status = r.DisplayStatus(now)
		if r.IsUpcoming(now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].Date.After(past[j].Date) })

	out := append(upcoming, past...)
	s.embedVenues(ctx, out)
	return out, nil
}

func (s *Service) ListForVenue(ctx context.Context, venueID string) ([]domain.Reservation, error) {
	rows, err := s.reservations.GetByVenueID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range rows {
		rows[i].Status = rows[i].DisplayStatus(now)
	}
	return rows, nil
}

func (s *Service) embedVenues(ctx context.Context, rows []domain.Reservation) {
	cache := map[string]*domain.Venue{}
	for i := range rows {
		v, ok := cache[rows[i].VenueID]
		if !ok {
			v, _ = s.venues.GetByID(ctx, rows[i].VenueID)
			cache[rows[i].VenueID] = v
		}
		rows[i].Venue = v
	}
}

// isUniqueViolation recognizes a duplicate-key failure from either backend.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
