package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pendiente"
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationCancelled ReservationStatus = "cancelada"
	ReservationCompleted ReservationStatus = "completada"
)

type Feedback struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// Reservation references a venue, it does not own it. Suspending or removing
// the venue must not invalidate historical reservations.
type Reservation struct {
	ID        string            `json:"id"`
	VenueID   string            `json:"venue_id"`
	UserID    string            `json:"user_id"`
	Date      time.Time         `json:"date"`
	Time      string            `json:"time"`
	PartySize int               `json:"party_size"`
	Status    ReservationStatus `json:"status"`
	Feedback  *Feedback         `json:"feedback,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// Venue is denormalized onto reads; never written through.
	Venue *Venue `json:"venue,omitempty" gorm:"-"`
}

// DisplayStatus derives the presented status. A past-dated reservation that
// was never cancelled surfaces as completada without rewriting the stored
// status field.
func (r *Reservation) DisplayStatus(now time.Time) ReservationStatus {
	if r.Status != ReservationCancelled && r.Date.Before(truncateToDay(now)) {
		return ReservationCompleted
	}
	return r.Status
}

// IsUpcoming reports whether the reservation date is today or later.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return !r.Date.Before(truncateToDay(now))
}

// legalReservationTransitions: pendiente→confirmada, pendiente→cancelada,
// confirmada→cancelada. completada is never stored through this table.
var legalReservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled},
}

func ReservationTransitionAllowed(from, to ReservationStatus) bool {
	for _, next := range legalReservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
