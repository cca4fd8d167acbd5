package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                 string     `gorm:"column:id;primaryKey"`
	Name               string     `gorm:"column:name"`
	Email              string     `gorm:"column:email;uniqueIndex"`
	PasswordHash       string     `gorm:"column:password_hash"`
	Role               string     `gorm:"column:role"`
	AccessLevel        *string    `gorm:"column:access_level"`
	CardCategory       *string    `gorm:"column:card_category"`
	SubscriptionStatus *string    `gorm:"column:subscription_status"`
	MembershipExpires  *time.Time `gorm:"column:membership_expires"`
	WalletQR           *string    `gorm:"column:wallet_qr"`
	VenueID            *string    `gorm:"column:venue_id"`
	Country            *string    `gorm:"column:country"`
	City               *string    `gorm:"column:city"`
	Address            *string    `gorm:"column:address"`
	Phone              *string    `gorm:"column:phone"`
	DocumentID         *string    `gorm:"column:document_id"`
	Birthdate          *string    `gorm:"column:birthdate"`
	SocialMedia        *string    `gorm:"column:social_media"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               domain.UserRole(m.Role),
		AccessLevel:        domain.AccessLevel(deref(m.AccessLevel)),
		CardCategory:       domain.CardCategory(deref(m.CardCategory)),
		SubscriptionStatus: domain.SubscriptionStatus(deref(m.SubscriptionStatus)),
		MembershipExpires:  m.MembershipExpires,
		WalletQR:           deref(m.WalletQR),
		VenueID:            deref(m.VenueID),
		Country:            deref(m.Country),
		City:               deref(m.City),
		Address:            deref(m.Address),
		Phone:              deref(m.Phone),
		DocumentID:         deref(m.DocumentID),
		Birthdate:          deref(m.Birthdate),
		SocialMedia:        deref(m.SocialMedia),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		AccessLevel:        nullable(string(u.AccessLevel)),
		CardCategory:       nullable(string(u.CardCategory)),
		SubscriptionStatus: nullable(string(u.SubscriptionStatus)),
		MembershipExpires:  u.MembershipExpires,
		WalletQR:           nullable(u.WalletQR),
		VenueID:            nullable(u.VenueID),
		Country:            nullable(u.Country),
		City:               nullable(u.City),
		Address:            nullable(u.Address),
		Phone:              nullable(u.Phone),
		DocumentID:         nullable(u.DocumentID),
		Birthdate:          nullable(u.Birthdate),
		SocialMedia:        nullable(u.SocialMedia),
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// ApplyActivation persists a successful activation or tier change: the user's
// membership fields and the appended payment record commit together or not at
// all.
func (r *UserRepository) ApplyActivation(ctx context.Context, u *domain.User, rec *domain.PaymentRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toUserModel(u)
		m.UpdatedAt = time.Now()
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		p := paymentModel{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Date:      rec.Date,
			Amount:    rec.Amount,
			Plan:      rec.Plan,
			InvoiceID: rec.InvoiceID,
			CreatedAt: rec.CreatedAt,
		}
		return tx.Create(&p).Error
	})
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).Count(&cnt)
	return cnt, tx.Error
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
