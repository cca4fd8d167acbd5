package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestRelativeAge_Cascade(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "hace un momento"},
		{time.Minute, "hace 1 minuto"},
		{5 * time.Minute, "hace 5 minutos"},
		{time.Hour, "hace 1 hora"},
		{3 * time.Hour, "hace 3 horas"},
		{24 * time.Hour, "hace 1 día"},
		{2 * 24 * time.Hour, "hace 2 días"},
		{35 * 24 * time.Hour, "hace 1 mes"},
		{90 * 24 * time.Hour, "hace 3 meses"},
		{365 * 24 * time.Hour, "hace 1 año"},
		{800 * 24 * time.Hour, "hace 2 años"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeAge(now.Add(-tc.ago), now), "ago=%s", tc.ago)
	}
}

func TestRelativeAge_FutureTimestampClamps(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "hace un momento", RelativeAge(now.Add(time.Hour), now))
}

func TestFeed_DecoratesWithAge(t *testing.T) {
	repo := new(MockNotificationRepository)
	rows := []domain.Notification{
		{ID: "ntf_1", Title: "Reserva Confirmada", CreatedAt: time.Now().Add(-5 * time.Minute)},
		{ID: "ntf_2", Title: "Nueva Oferta", CreatedAt: time.Now().Add(-3 * time.Hour)},
	}
	repo.On("GetByUserID", mock.Anything, "usr_1", defaultFeedLimit).Return(rows, nil)

	svc := NewService(repo, nil)

	out, err := svc.Feed(context.Background(), "usr_1")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "hace 5 minutos", out[0].Age)
	assert.Equal(t, "hace 3 horas", out[1].Age)
}

func TestMarkAllAsRead_Idempotent(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("MarkAllAsRead", mock.Anything, "usr_1").Return(nil)

	svc := NewService(repo, nil)

	assert.NoError(t, svc.MarkAllAsRead(context.Background(), "usr_1"))
	// a second pass over an already-read feed still succeeds
	assert.NoError(t, svc.MarkAllAsRead(context.Background(), "usr_1"))
	repo.AssertNumberOfCalls(t, "MarkAllAsRead", 2)
}

func TestMarkAsRead_MissingNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("MarkAsRead", mock.Anything, "ntf_missing", "usr_1").Return(gorm.ErrRecordNotFound)

	svc := NewService(repo, nil)

	err := svc.MarkAsRead(context.Background(), "ntf_missing", "usr_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotify_PersistsRecord(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == "usr_1" &&
			n.Type == domain.NotifReservation &&
			n.Title == "Reserva confirmada" &&
			!n.Read
	})).Return(nil)

	svc := NewService(repo, nil)

	svc.NotifyReservationConfirmed(context.Background(), "usr_1", "Boragó")
	repo.AssertExpectations(t)
}

func TestNotifyMembershipActivated_Message(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifSystem &&
			n.Message == "Bienvenido a ACCESS+ Gold. Tu membresía ya está activa."
	})).Return(nil)

	svc := NewService(repo, nil)

	svc.NotifyMembershipActivated(context.Background(), "usr_1", domain.LevelGold)
	repo.AssertExpectations(t)
}

func TestHub_UnknownUserOffline(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	assert.False(t, hub.IsOnline("usr_1"))
	assert.False(t, hub.SendToUser("usr_1", map[string]any{"x": 1}))
}
