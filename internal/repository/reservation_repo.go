package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	VenueID        string    `gorm:"column:venue_id;index"`
	UserID         string    `gorm:"column:user_id;index"`
	Date           time.Time `gorm:"column:date"`
	Time           string    `gorm:"column:time"`
	PartySize      int       `gorm:"column:party_size"`
	Status         string    `gorm:"column:status"`
	Feedback       []byte    `gorm:"column:feedback"`
	IdempotencyKey *string   `gorm:"column:idempotency_key;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	res := &domain.Reservation{
		ID:        m.ID,
		VenueID:   m.VenueID,
		UserID:    m.UserID,
		Date:      m.Date,
		Time:      m.Time,
		PartySize: m.PartySize,
		Status:    domain.ReservationStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Feedback) > 0 {
		var fb domain.Feedback
		if err := json.Unmarshal(m.Feedback, &fb); err == nil {
			res.Feedback = &fb
		}
	}
	return res
}

func toReservationModel(res *domain.Reservation, idempotencyKey string) reservationModel {
	m := reservationModel{
		ID:        res.ID,
		VenueID:   res.VenueID,
		UserID:    res.UserID,
		Date:      res.Date,
		Time:      res.Time,
		PartySize: res.PartySize,
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
	if res.Feedback != nil {
		m.Feedback, _ = json.Marshal(res.Feedback)
	}
	if idempotencyKey != "" {
		m.IdempotencyKey = &idempotencyKey
	}
	return m
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, idempotencyKey string) error {
	m := toReservationModel(res, idempotencyKey)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(rows), nil
}

func (r *ReservationRepository) GetByVenueID(ctx context.Context, venueID string) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("date ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservations(rows), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).Error
}

func (r *ReservationRepository) SetFeedback(ctx context.Context, id string, fb domain.Feedback) error {
	raw, err := json.Marshal(fb)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"feedback": raw, "updated_at": time.Now()}).Error
}

func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *ReservationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt)
	return cnt, tx.Error
}

func toDomainReservations(rows []reservationModel) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out
}
