package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

// Service implements the membership activation state machine:
// unregistered → pending_verification → card validated → tier selected →
// active, plus active ↔ suspended and active → canceled.
type Service struct {
	users    UserRepository
	payments PaymentRepository
	gateway  PaymentGateway
	notifs   NotificationSender
}

func NewService(users UserRepository, payments PaymentRepository, gateway PaymentGateway, notifs NotificationSender) *Service {
	return &Service{users: users, payments: payments, gateway: gateway, notifs: notifs}
}

// ValidateCard is a pure lookup over the BIN table. It never mutates the
// user record.
func (s *Service) ValidateCard(bin string) (domain.CardBIN, error) {
	if bin == domain.RejectedBIN {
		return domain.CardBIN{}, ErrCardRejected
	}
	card, ok := domain.LookupBIN(bin)
	if !ok {
		return domain.CardBIN{}, ErrCardUnrecognized
	}
	return card, nil
}

// EligibleTiers returns the tiers purchasable with the given card category.
func (s *Service) EligibleTiers(category domain.CardCategory) []domain.MembershipTier {
	return domain.EligibleTiers(category)
}

// Plans returns the full tier catalog.
func (s *Service) Plans() []domain.MembershipTier {
	return domain.Tiers()
}

// Activate charges the member and, on success, commits the activated
// membership together with its payment record. The caller is responsible for
// having validated the card category beforehand; eligibility of the chosen
// tier is still checked against the category's table.
func (s *Service) Activate(ctx context.Context, userID string, level domain.AccessLevel, category domain.CardCategory, cycle domain.BillingCycle) (*domain.User, error) {
	tier, ok := domain.TierByLevel(level)
	if !ok {
		return nil, ErrActivationFailed
	}
	if !tierEligible(category, level) {
		return nil, ErrTierNotEligible
	}
	if cycle != domain.BillingMonthly {
		cycle = domain.BillingAnnual
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	amount := tier.Price(cycle)
	if err := s.gateway.Charge(ctx, userID, amount, tier.Name); err != nil {
		// the user record is untouched on a declined or cancelled charge
		return nil, fmt.Errorf("%w: %v", ErrActivationFailed, err)
	}

	now := time.Now()
	expires := now.AddDate(1, 0, 0)
	user.AccessLevel = tier.Level
	user.CardCategory = category
	user.SubscriptionStatus = domain.SubscriptionActive
	user.MembershipExpires = &expires
	user.WalletQR = walletQR(user.ID, tier.Level)

	rec := newPaymentRecord(user.ID, tier.Name, amount, now)
	if err := s.users.ApplyActivation(ctx, user, rec); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyMembershipActivated(ctx, user.ID, tier.Level)
	}

	user.PasswordHash = ""
	user.AttachPlan()
	return user, nil
}

// ChangeTier switches an already-subscribed member to a new tier. The card
// category is not re-validated; expiry restarts one year from now and the new
// tier's full price is charged.
func (s *Service) ChangeTier(ctx context.Context, userID string, level domain.AccessLevel, cycle domain.BillingCycle) (*domain.User, error) {
	tier, ok := domain.TierByLevel(level)
	if !ok {
		return nil, ErrActivationFailed
	}
	if cycle != domain.BillingMonthly {
		cycle = domain.BillingAnnual
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !user.IsMember() {
		return nil, ErrNotSubscribed
	}

	amount := tier.Price(cycle)
	if err := s.gateway.Charge(ctx, userID, amount, tier.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActivationFailed, err)
	}

	now := time.Now()
	expires := now.AddDate(1, 0, 0)
	user.AccessLevel = tier.Level
	user.MembershipExpires = &expires
	user.WalletQR = walletQR(user.ID, tier.Level)

	rec := newPaymentRecord(user.ID, tier.Name, amount, now)
	if err := s.users.ApplyActivation(ctx, user, rec); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.AttachPlan()
	return user, nil
}

// ToggleStatus flips an account between active and suspended without
// touching the membership expiry. Admin-only at the route layer.
func (s *Service) ToggleStatus(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch user.SubscriptionStatus {
	case domain.SubscriptionActive:
		user.SubscriptionStatus = domain.SubscriptionSuspended
	case domain.SubscriptionSuspended:
		user.SubscriptionStatus = domain.SubscriptionActive
	default:
		return nil, ErrInvalidStatus
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.AttachPlan()
	return user, nil
}

// PaymentHistory returns the user's payment log, newest first.
func (s *Service) PaymentHistory(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	return s.payments.ListByUser(ctx, userID)
}

func tierEligible(category domain.CardCategory, level domain.AccessLevel) bool {
	for _, t := range domain.EligibleTiers(category) {
		if t.Level == level {
			return true
		}
	}
	return false
}

// walletQR derives the wallet payload deterministically from user id + tier.
func walletQR(userID string, level domain.AccessLevel) string {
	return "ACCESS+" + strings.ToUpper(userID) + "-" + strings.ToUpper(string(level))
}

func newPaymentRecord(userID, planName string, amount float64, now time.Time) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:        "pay_" + uuid.NewString(),
		UserID:    userID,
		Date:      now,
		Amount:    amount,
		Plan:      planName,
		InvoiceID: fmt.Sprintf("INV-%d", now.UnixNano()),
		CreatedAt: now,
	}
}
