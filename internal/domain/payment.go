package domain

import "time"

// PaymentRecord is an append-only log entry, listed newest first.
type PaymentRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	Plan      string    `json:"plan"`
	InvoiceID string    `json:"invoice_id"`
	CreatedAt time.Time `json:"created_at"`
}
