package admin

import (
	"context"
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

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Count(ctx context.Context, statuses ...domain.VenueStatus) (int64, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(int64), args.Error(1)
}

type MockReservationCounter struct {
	mock.Mock
}

func (m *MockReservationCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationCounter) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) ToggleStatus(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(users *MockUserRepository, venues *MockVenueRepository, reservations *MockReservationCounter, membership *MockMembershipService) *Service {
	return NewService(users, venues, reservations, membership)
}

func TestChangeVenueStatus_PendingToApproved(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("GetByID", mock.Anything, "ven_1").Return(&domain.Venue{ID: "ven_1", Status: domain.VenuePending}, nil)
	venues.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(new(MockUserRepository), venues, new(MockReservationCounter), new(MockMembershipService))

	v, err := svc.ChangeVenueStatus(context.Background(), "ven_1", domain.VenueApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.VenueApproved, v.Status)
}

func TestChangeVenueStatus_PendingToSuspendedRejected(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("GetByID", mock.Anything, "ven_1").Return(&domain.Venue{ID: "ven_1", Status: domain.VenuePending}, nil)

	svc := newTestService(new(MockUserRepository), venues, new(MockReservationCounter), new(MockMembershipService))

	_, err := svc.ChangeVenueStatus(context.Background(), "ven_1", domain.VenueSuspended)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	venues.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeVenueStatus_ApprovedSuspendedRoundTrip(t *testing.T) {
	venues := new(MockVenueRepository)
	venue := &domain.Venue{ID: "ven_1", Status: domain.VenueApproved}
	venues.On("GetByID", mock.Anything, "ven_1").Return(venue, nil)
	venues.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(new(MockUserRepository), venues, new(MockReservationCounter), new(MockMembershipService))

	v, err := svc.ChangeVenueStatus(context.Background(), "ven_1", domain.VenueSuspended)
	assert.NoError(t, err)
	assert.Equal(t, domain.VenueSuspended, v.Status)

	v, err = svc.ChangeVenueStatus(context.Background(), "ven_1", domain.VenueApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.VenueApproved, v.Status)
}

func TestChangeVenueStatus_NotFound(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(new(MockUserRepository), venues, new(MockReservationCounter), new(MockMembershipService))

	_, err := svc.ChangeVenueStatus(context.Background(), "missing", domain.VenueApproved)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateUser_ActivatedImmediately(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "nuevo@email.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(users, new(MockVenueRepository), new(MockReservationCounter), new(MockMembershipService))

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Name:     "Socio Nuevo",
		Email:    "Nuevo@Email.com",
		Password: "clave-segura",
		Level:    "Gold",
		Country:  "Chile",
	})

	assert.NoError(t, err)
	assert.Equal(t, "nuevo@email.com", u.Email)
	assert.Equal(t, domain.LevelGold, u.AccessLevel)
	assert.Equal(t, domain.CategoryPremium, u.CardCategory)
	assert.Equal(t, domain.SubscriptionActive, u.SubscriptionStatus)
	assert.NotNil(t, u.MembershipExpires)
	assert.NotEmpty(t, u.WalletQR)
	assert.NotNil(t, u.Plan)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(true, nil)

	svc := newTestService(users, new(MockVenueRepository), new(MockReservationCounter), new(MockMembershipService))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Name:     "Socio Nuevo",
		Email:    "nuevo@email.com",
		Password: "clave-segura",
		Level:    "Gold",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestListUsers_AttachesPlans(t *testing.T) {
	users := new(MockUserRepository)
	users.On("List", mock.Anything).Return([]domain.User{
		{ID: "usr_1", AccessLevel: domain.LevelVIP},
		{ID: "usr_2"},
	}, nil)

	svc := newTestService(users, new(MockVenueRepository), new(MockReservationCounter), new(MockMembershipService))

	out, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, out[0].Plan)
	assert.Equal(t, "VIP Access", out[0].Plan.Name)
	assert.Nil(t, out[1].Plan)
}

func TestStatistics_Totals(t *testing.T) {
	users := new(MockUserRepository)
	venues := new(MockVenueRepository)
	reservations := new(MockReservationCounter)

	users.On("Count", mock.Anything).Return(int64(42), nil)
	venues.On("Count", mock.Anything, []domain.VenueStatus(nil)).Return(int64(10), nil)
	venues.On("Count", mock.Anything, []domain.VenueStatus{domain.VenuePending}).Return(int64(2), nil)
	reservations.On("Count", mock.Anything).Return(int64(120), nil)
	reservations.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(int64(7), nil)

	svc := newTestService(users, venues, reservations, new(MockMembershipService))

	stats, err := svc.Statistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(10), stats.TotalVenues)
	assert.Equal(t, int64(2), stats.PendingVenues)
	assert.Equal(t, int64(120), stats.TotalReservations)
	assert.Equal(t, int64(7), stats.TodaysReservations)
}
