package domain

import "time"

type NotificationType string

const (
	NotifReservation NotificationType = "reservation"
	NotifOffer       NotificationType = "offer"
	NotifSystem      NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
