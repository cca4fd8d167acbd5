package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleVenue UserRole = "venue"
)

type AccessLevel string

const (
	LevelSilver AccessLevel = "Silver"
	LevelGold   AccessLevel = "Gold"
	LevelVIP    AccessLevel = "VIP"
)

type CardCategory string

const (
	CategoryPremium      CardCategory = "Premium"
	CategoryHighEnd      CardCategory = "High-End"
	CategoryUltraHighEnd CardCategory = "Ultra High-End"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCanceled  SubscriptionStatus = "canceled"
	SubscriptionPending   SubscriptionStatus = "pending_verification"
)

type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`

	// Membership fields stay empty until activation succeeds.
	AccessLevel        AccessLevel        `json:"access_level,omitempty"`
	CardCategory       CardCategory       `json:"card_category,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status,omitempty"`
	MembershipExpires  *time.Time         `json:"membership_expires,omitempty"`
	WalletQR           string             `json:"wallet_qr,omitempty"`

	// VenueID is a back-reference, set only when Role == RoleVenue.
	VenueID string `json:"venue_id,omitempty"`

	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DocumentID  string `json:"document_id,omitempty"`
	Birthdate   string `json:"birthdate,omitempty"`
	SocialMedia string `json:"social_media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Plan is a read-only projection of AccessLevel onto the tier catalog.
	// Recomputed on every read, never persisted.
	Plan *MembershipTier `json:"plan,omitempty" gorm:"-"`
}

// AttachPlan recomputes the Plan projection from the current access level.
func (u *User) AttachPlan() {
	if u == nil || u.AccessLevel == "" {
		return
	}
	if t, ok := TierByLevel(u.AccessLevel); ok {
		u.Plan = &t
	}
}

func (u *User) IsMember() bool {
	return u.SubscriptionStatus == SubscriptionActive && u.AccessLevel != ""
}
