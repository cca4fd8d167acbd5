package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) ApplyActivation(ctx context.Context, u *domain.User, rec *domain.PaymentRecord) error {
	args := m.Called(ctx, u, rec)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, userID string, amount float64, description string) error {
	args := m.Called(ctx, userID, amount, description)
	return args.Error(0)
}

func pendingUser(id string) *domain.User {
	return &domain.User{
		ID:                 id,
		Name:               "Cliente Prueba",
		Email:              "cliente@email.com",
		PasswordHash:       "hash",
		Role:               domain.RoleUser,
		SubscriptionStatus: domain.SubscriptionPending,
	}
}

func newTestService(users *MockUserRepository, payments *MockPaymentRepository, gateway *MockPaymentGateway) *Service {
	return NewService(users, payments, gateway, nil)
}

func TestValidateCard_RejectedBIN(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockPaymentRepository), new(MockPaymentGateway))

	_, err := svc.ValidateCard("000000")
	assert.ErrorIs(t, err, ErrCardRejected)
}

func TestValidateCard_UnknownBIN(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockPaymentRepository), new(MockPaymentGateway))

	_, err := svc.ValidateCard("123456")
	assert.ErrorIs(t, err, ErrCardUnrecognized)
}

func TestValidateCard_KnownBIN(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockPaymentRepository), new(MockPaymentGateway))

	card, err := svc.ValidateCard("411111")
	assert.NoError(t, err)
	assert.Equal(t, domain.CategoryPremium, card.Category)
	assert.Equal(t, "Bank of America", card.Bank)

	card, err = svc.ValidateCard("370000")
	assert.NoError(t, err)
	assert.Equal(t, domain.CategoryUltraHighEnd, card.Category)
}

func TestEligibleTiers_ByCategory(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockPaymentRepository), new(MockPaymentGateway))

	levels := func(tiers []domain.MembershipTier) []domain.AccessLevel {
		out := make([]domain.AccessLevel, 0, len(tiers))
		for _, tier := range tiers {
			out = append(out, tier.Level)
		}
		return out
	}

	assert.Equal(t, []domain.AccessLevel{domain.LevelSilver, domain.LevelGold}, levels(svc.EligibleTiers(domain.CategoryPremium)))
	assert.Equal(t, []domain.AccessLevel{domain.LevelGold, domain.LevelVIP}, levels(svc.EligibleTiers(domain.CategoryHighEnd)))
	assert.Equal(t, []domain.AccessLevel{domain.LevelVIP}, levels(svc.EligibleTiers(domain.CategoryUltraHighEnd)))
	assert.Empty(t, svc.EligibleTiers("Desconocida"))
}

func TestActivate_Success(t *testing.T) {
	users := new(MockUserRepository)
	gateway := new(MockPaymentGateway)

	users.On("GetByID", mock.Anything, "usr_1").Return(pendingUser("usr_1"), nil)
	gateway.On("Charge", mock.Anything, "usr_1", 999.0, "Gold Access").Return(nil)
	users.On("ApplyActivation", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, new(MockPaymentRepository), gateway)

	user, err := svc.Activate(context.Background(), "usr_1", domain.LevelGold, domain.CategoryHighEnd, domain.BillingAnnual)

	assert.NoError(t, err)
	assert.Equal(t, domain.LevelGold, user.AccessLevel)
	assert.Equal(t, domain.SubscriptionActive, user.SubscriptionStatus)
	assert.Equal(t, domain.CategoryHighEnd, user.CardCategory)
	assert.Equal(t, "ACCESS+USR_1-GOLD", user.WalletQR)
	assert.NotNil(t, user.MembershipExpires)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), *user.MembershipExpires, time.Minute)
	assert.NotNil(t, user.Plan)
	assert.Equal(t, "Gold Access", user.Plan.Name)
	assert.Empty(t, user.PasswordHash)

	users.AssertCalled(t, "ApplyActivation", mock.Anything, mock.Anything, mock.MatchedBy(func(rec *domain.PaymentRecord) bool {
		return rec.Amount == 999.0 && rec.Plan == "Gold Access" && rec.UserID == "usr_1"
	}))
}

func TestActivate_MonthlyPrice(t *testing.T) {
	users := new(MockUserRepository)
	gateway := new(MockPaymentGateway)

	users.On("GetByID", mock.Anything, "usr_1").Return(pendingUser("usr_1"), nil)
	gateway.On("Charge", mock.Anything, "usr_1", 199.0, "VIP Access").Return(nil)
	users.On("ApplyActivation", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, new(MockPaymentRepository), gateway)

	_, err := svc.Activate(context.Background(), "usr_1", domain.LevelVIP, domain.CategoryUltraHighEnd, domain.BillingMonthly)
	assert.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestActivate_TierNotEligible(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockPaymentRepository), new(MockPaymentGateway))

	// Premium cards max out at Gold
	_, err := svc.Activate(context.Background(), "usr_1", domain.LevelVIP, domain.CategoryPremium, domain.BillingAnnual)
	assert.ErrorIs(t, err, ErrTierNotEligible)
}

func TestActivate_DeclinedChargeLeavesUserUntouched(t *testing.T) {
	users := new(MockUserRepository)
	gateway := new(MockPaymentGateway)

	user := pendingUser("usr_1")
	users.On("GetByID", mock.Anything, "usr_1").Return(user, nil)
	gateway.On("Charge", mock.Anything, "usr_1", 999.0, "Gold Access").Return(ErrPaymentDeclined)

	svc := newTestService(users, new(MockPaymentRepository), gateway)

	_, err := svc.Activate(context.Background(), "usr_1", domain.LevelGold, domain.CategoryHighEnd, domain.BillingAnnual)

	assert.ErrorIs(t, err, ErrActivationFailed)
	assert.Equal(t, domain.SubscriptionPending, user.SubscriptionStatus)
	assert.Empty(t, user.AccessLevel)
	assert.Empty(t, user.WalletQR)
	users.AssertNotCalled(t, "ApplyActivation", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivate_UserNotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "usr_missing").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(users, new(MockPaymentRepository), new(MockPaymentGateway))

	_, err := svc.Activate(context.Background(), "usr_missing", domain.LevelGold, domain.CategoryHighEnd, domain.BillingAnnual)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangeTier_RestartsExpiryFromNow(t *testing.T) {
	users := new(MockUserRepository)
	gateway := new(MockPaymentGateway)

	oldExpiry := time.Now().AddDate(0, 2, 0)
	user := pendingUser("usr_1")
	user.AccessLevel = domain.LevelGold
	user.CardCategory = domain.CategoryHighEnd
	user.SubscriptionStatus = domain.SubscriptionActive
	user.MembershipExpires = &oldExpiry

	users.On("GetByID", mock.Anything, "usr_1").Return(user, nil)
	gateway.On("Charge", mock.Anything, "usr_1", 1999.0, "VIP Access").Return(nil)
	users.On("ApplyActivation", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, new(MockPaymentRepository), gateway)

	out, err := svc.ChangeTier(context.Background(), "usr_1", domain.LevelVIP, domain.BillingAnnual)

	assert.NoError(t, err)
	assert.Equal(t, domain.LevelVIP, out.AccessLevel)
	assert.Equal(t, "ACCESS+USR_1-VIP", out.WalletQR)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), *out.MembershipExpires, time.Minute)
}

func TestChangeTier_RequiresSubscription(t *testing.T) {
	users := new(MockUserRepository)
	user := pendingUser("usr_1")
	user.SubscriptionStatus = ""
	users.On("GetByID", mock.Anything, "usr_1").Return(user, nil)

	svc := newTestService(users, new(MockPaymentRepository), new(MockPaymentGateway))

	_, err := svc.ChangeTier(context.Background(), "usr_1", domain.LevelVIP, domain.BillingAnnual)
	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestToggleStatus_ActiveAndBack(t *testing.T) {
	users := new(MockUserRepository)

	expiry := time.Now().AddDate(0, 6, 0)
	user := pendingUser("usr_1")
	user.AccessLevel = domain.LevelGold
	user.SubscriptionStatus = domain.SubscriptionActive
	user.MembershipExpires = &expiry

	users.On("GetByID", mock.Anything, "usr_1").Return(user, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, new(MockPaymentRepository), new(MockPaymentGateway))

	out, err := svc.ToggleStatus(context.Background(), "usr_1")
	assert.NoError(t, err)
	assert.Equal(t, domain.SubscriptionSuspended, out.SubscriptionStatus)
	assert.Equal(t, expiry, *out.MembershipExpires)

	out, err = svc.ToggleStatus(context.Background(), "usr_1")
	assert.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, out.SubscriptionStatus)
}

func TestToggleStatus_RejectsOtherStates(t *testing.T) {
	users := new(MockUserRepository)
	user := pendingUser("usr_1")
	user.SubscriptionStatus = domain.SubscriptionCanceled
	users.On("GetByID", mock.Anything, "usr_1").Return(user, nil)

	svc := newTestService(users, new(MockPaymentRepository), new(MockPaymentGateway))

	_, err := svc.ToggleStatus(context.Background(), "usr_1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPaymentHistory_Passthrough(t *testing.T) {
	payments := new(MockPaymentRepository)
	records := []domain.PaymentRecord{
		{ID: "pay_2", Amount: 99},
		{ID: "pay_1", Amount: 49},
	}
	payments.On("ListByUser", mock.Anything, "usr_1").Return(records, nil)

	svc := newTestService(new(MockUserRepository), payments, new(MockPaymentGateway))

	out, err := svc.PaymentHistory(context.Background(), "usr_1")
	assert.NoError(t, err)
	assert.Equal(t, records, out)
}

func TestSimulatedGateway_RespectsContext(t *testing.T) {
	gateway := NewSimulatedGateway(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gateway.Charge(ctx, "usr_1", 99, "Gold Access")
	assert.True(t, errors.Is(err, context.Canceled))
}
