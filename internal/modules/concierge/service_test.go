package concierge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"accessplus/internal/domain"
	"accessplus/internal/pkg/genai"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
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

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) EditImage(ctx context.Context, model, instruction string, image []byte, mimeType string) (*genai.ImageResult, error) {
	args := m.Called(ctx, model, instruction, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.ImageResult), args.Error(1)
}

func TestRecommend_OnlyApprovedVenuesInPrompt(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("List", mock.Anything).Return([]domain.Venue{
		{ID: "ven_1", Name: "Boragó", Status: domain.VenueApproved, Category: domain.CategoryRestaurante},
		{ID: "ven_2", Name: "Sarita Colonia", Status: domain.VenuePending, Category: domain.CategoryRestaurante},
		{ID: "ven_3", Name: "Sala Gente", Status: domain.VenueSuspended, Category: domain.CategoryDiscoteca},
	}, nil)

	ai := new(MockGenerator)
	ai.On("GenerateText", mock.Anything, "gemini-2.5-pro", mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Boragó") &&
			!strings.Contains(prompt, "Sarita Colonia") &&
			!strings.Contains(prompt, "Sala Gente")
	})).Return("Te sugiero Boragó.", nil)

	svc := NewService(venues, new(MockUserRepository), ai, "")

	out, err := svc.Recommend(context.Background(), "Quiero una cena especial en Santiago")
	assert.NoError(t, err)
	assert.Equal(t, "Te sugiero Boragó.", out)
	ai.AssertExpectations(t)
}

func TestRecommend_IncludesMemberQuery(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("List", mock.Anything).Return([]domain.Venue{}, nil)

	ai := new(MockGenerator)
	ai.On("GenerateText", mock.Anything, "gemini-2.5-pro", mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, `SOLICITUD DEL MIEMBRO: "algo tranquilo para dos"`)
	})).Return("ok", nil)

	svc := NewService(venues, new(MockUserRepository), ai, "")

	_, err := svc.Recommend(context.Background(), "  algo tranquilo para dos  ")
	assert.NoError(t, err)
	ai.AssertExpectations(t)
}

func TestRecommend_TruncatesLongQueryOnRuneBoundary(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("List", mock.Anything).Return([]domain.Venue{}, nil)

	ai := new(MockGenerator)
	ai.On("GenerateText", mock.Anything, "gemini-2.5-pro", mock.MatchedBy(func(prompt string) bool {
		return utf8.ValidString(prompt) &&
			strings.Contains(prompt, `SOLICITUD DEL MIEMBRO: "`+strings.Repeat("ñ", 500)+`"`) &&
			!strings.Contains(prompt, strings.Repeat("ñ", 501))
	})).Return("ok", nil)

	svc := NewService(venues, new(MockUserRepository), ai, "")

	_, err := svc.Recommend(context.Background(), strings.Repeat("ñ", 600))
	assert.NoError(t, err)
	ai.AssertExpectations(t)
}

func TestRecommend_EmptyQuery(t *testing.T) {
	svc := NewService(new(MockVenueRepository), new(MockUserRepository), new(MockGenerator), "")

	_, err := svc.Recommend(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRecommend_WrapsGeneratorFailure(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("List", mock.Anything).Return([]domain.Venue{}, nil)

	ai := new(MockGenerator)
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("503 backend overloaded"))

	svc := NewService(venues, new(MockUserRepository), ai, "")

	_, err := svc.Recommend(context.Background(), "cena")
	assert.ErrorIs(t, err, ErrExternalService)
	assert.Contains(t, err.Error(), "503 backend overloaded")
}

func TestAnalyze_SamplesAndTotals(t *testing.T) {
	users := new(MockUserRepository)
	all := make([]domain.User, 8)
	for i := range all {
		all[i] = domain.User{ID: "usr_" + string(rune('a'+i)), Name: "Socio"}
	}
	users.On("List", mock.Anything).Return(all, nil)

	venues := new(MockVenueRepository)
	venues.On("List", mock.Anything).Return([]domain.Venue{{ID: "ven_1", Name: "Central"}}, nil)

	ai := new(MockGenerator)
	ai.On("GenerateText", mock.Anything, "gemini-2.5-pro", mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Total Users: 8") &&
			strings.Contains(prompt, "Total Venues: 1") &&
			strings.Contains(prompt, "usr_e") &&
			!strings.Contains(prompt, "usr_f")
	})).Return("análisis", nil)

	svc := NewService(venues, users, ai, "")

	out, err := svc.Analyze(context.Background(), "¿Cuántos socios VIP hay?")
	assert.NoError(t, err)
	assert.Equal(t, "análisis", out)
	ai.AssertExpectations(t)
}

func TestEditImage_UsesImageModel(t *testing.T) {
	ai := new(MockGenerator)
	ai.On("EditImage", mock.Anything, "gemini-2.5-flash-image", "hazla nocturna", []byte{1, 2, 3}, "image/png").
		Return(&genai.ImageResult{MimeType: "image/png", Data: []byte{9}}, nil)

	svc := NewService(new(MockVenueRepository), new(MockUserRepository), ai, "")

	out, err := svc.EditImage(context.Background(), "hazla nocturna", []byte{1, 2, 3}, "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", out.MimeType)
}
