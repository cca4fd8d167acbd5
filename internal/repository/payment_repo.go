package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	Date      time.Time `gorm:"column:date"`
	Amount    float64   `gorm:"column:amount"`
	Plan      string    `gorm:"column:plan"`
	InvoiceID string    `gorm:"column:invoice_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payment_records" }

func toDomainPayment(m paymentModel) domain.PaymentRecord {
	return domain.PaymentRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Amount:    m.Amount,
		Plan:      m.Plan,
		InvoiceID: m.InvoiceID,
		CreatedAt: m.CreatedAt,
	}
}

// Append adds a record to the user's payment log. Records are never updated
// or deleted.
func (r *PaymentRepository) Append(ctx context.Context, p *domain.PaymentRecord) error {
	m := paymentModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Date:      p.Date,
		Amount:    p.Amount,
		Plan:      p.Plan,
		InvoiceID: p.InvoiceID,
		CreatedAt: p.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = toDomainPayment(m)
	return nil
}

// ListByUser returns the user's payment history, newest first.
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PaymentRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPayment(m))
	}
	return out, nil
}
