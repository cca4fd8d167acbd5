package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
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

func (m *MockVenueRepository) ListByCountry(ctx context.Context, country string, statuses ...domain.VenueStatus) ([]domain.Venue, error) {
	args := m.Called(ctx, country, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) ListByCountryPage(ctx context.Context, country string, page, pageSize int, statuses ...domain.VenueStatus) ([]domain.Venue, bool, error) {
	args := m.Called(ctx, country, page, pageSize, statuses)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Venue), args.Bool(1), args.Error(2)
}

func sampleVenues() []domain.Venue {
	return []domain.Venue{
		{ID: "v1", Name: "Boragó", Category: domain.CategoryRestaurante},
		{ID: "v2", Name: "Tramonto Bar & Terrace", Category: domain.CategoryRooftop},
		{ID: "v3", Name: "Club La Feria", Category: domain.CategoryDiscoteca},
		{ID: "v4", Name: "Bocanáriz", Category: domain.CategoryBar},
		{ID: "v5", Name: "Bar Liguria", Category: domain.CategoryBar},
	}
}

func TestFilterVenues_CategoryAll(t *testing.T) {
	out := FilterVenues(sampleVenues(), "All", "")
	assert.Len(t, out, 5)

	out = FilterVenues(sampleVenues(), "", "")
	assert.Len(t, out, 5)
}

func TestFilterVenues_CategoryExact(t *testing.T) {
	out := FilterVenues(sampleVenues(), "Bar", "")
	assert.Len(t, out, 2)
	assert.Equal(t, "Bocanáriz", out[0].Name)
	assert.Equal(t, "Bar Liguria", out[1].Name)
}

func TestFilterVenues_SearchCaseInsensitive(t *testing.T) {
	out := FilterVenues(sampleVenues(), "All", "BAR")
	// matches by name substring, not category
	assert.Len(t, out, 2)
	assert.Equal(t, "Tramonto Bar & Terrace", out[0].Name)
	assert.Equal(t, "Bar Liguria", out[1].Name)
}

func TestFilterVenues_PredicatesCombine(t *testing.T) {
	out := FilterVenues(sampleVenues(), "Bar", "liguria")
	assert.Len(t, out, 1)
	assert.Equal(t, "Bar Liguria", out[0].Name)

	out = FilterVenues(sampleVenues(), "Rooftop", "liguria")
	assert.Empty(t, out)
}

func TestFilterVenues_OrderPreserved(t *testing.T) {
	out := FilterVenues(sampleVenues(), "All", "a")
	ids := make([]string, 0, len(out))
	for _, v := range out {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids)
}

func TestListByCountry_RequiresCountry(t *testing.T) {
	svc := NewService(new(MockVenueRepository))

	_, err := svc.ListByCountry(context.Background(), "")
	assert.ErrorIs(t, err, ErrCountryRequired)
}

func TestListByCountry_ApprovedOnly(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("ListByCountry", mock.Anything, "Chile", []domain.VenueStatus{domain.VenueApproved}).
		Return(sampleVenues(), nil)

	svc := NewService(venues)

	out, err := svc.ListByCountry(context.Background(), "Chile")
	assert.NoError(t, err)
	assert.Len(t, out, 5)
	venues.AssertExpectations(t)
}

func TestListByCountry_EmptyForUncoveredCountry(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("ListByCountry", mock.Anything, "Argentina", []domain.VenueStatus{domain.VenueApproved}).
		Return([]domain.Venue{}, nil)

	svc := NewService(venues)

	out, err := svc.ListByCountry(context.Background(), "Argentina")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestListByCountry_UnsupportedCountrySkipsStorage(t *testing.T) {
	venues := new(MockVenueRepository)

	svc := NewService(venues)

	out, err := svc.ListByCountry(context.Background(), "Francia")
	assert.NoError(t, err)
	assert.Empty(t, out)
	venues.AssertNotCalled(t, "ListByCountry", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByCountryPage_NormalizesArgs(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("ListByCountryPage", mock.Anything, "Chile", 1, 20, []domain.VenueStatus{domain.VenueApproved}).
		Return(sampleVenues()[:2], true, nil)

	svc := NewService(venues)

	out, hasMore, err := svc.ListByCountryPage(context.Background(), "Chile", 0, 0)
	assert.NoError(t, err)
	assert.True(t, hasMore)
	assert.Len(t, out, 2)
}

func TestRegisterVenue_StartsPending(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Venue) bool {
		return v.Status == domain.VenuePending && v.ID != ""
	})).Return(nil)

	svc := NewService(venues)

	v, err := svc.RegisterVenue(context.Background(), CreateVenueRequest{
		Name:     "Sarita Colonia",
		Category: "Bar",
		Location: "Bellavista, Santiago",
		Country:  "Chile",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.VenuePending, v.Status)
	venues.AssertExpectations(t)
}

func TestCreateVenue_AdminApprovedImmediately(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(venues)

	v, err := svc.CreateVenue(context.Background(), CreateVenueRequest{
		Name:     "Osaka Santiago",
		Category: "Restaurante",
		Location: "Vitacura, Santiago",
		Country:  "Chile",
		Benefits: []BenefitRequest{
			{Description: "Mesa preferencial garantizada", PlanRequired: "Gold"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.VenueApproved, v.Status)
	assert.Len(t, v.Benefits, 1)
	assert.Equal(t, domain.LevelGold, v.Benefits[0].PlanRequired)
}

func TestRegisterVenue_RejectsUnknownCategory(t *testing.T) {
	venues := new(MockVenueRepository)

	svc := NewService(venues)

	_, err := svc.RegisterVenue(context.Background(), CreateVenueRequest{
		Name:     "Sala Indie",
		Category: "Teatro",
		Location: "Lastarria, Santiago",
		Country:  "Chile",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
	venues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVenue_RejectsOutOfRangeCoordinates(t *testing.T) {
	venues := new(MockVenueRepository)

	svc := NewService(venues)

	_, err := svc.CreateVenue(context.Background(), CreateVenueRequest{
		Name:     "Osaka Santiago",
		Category: "Restaurante",
		Location: "Vitacura, Santiago",
		Country:  "Chile",
		Lat:      120.5,
		Lng:      -70.6,
	})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestUpdateDetails_StatusUntouched(t *testing.T) {
	venues := new(MockVenueRepository)

	existing := &domain.Venue{ID: "v1", Name: "Boragó", Status: domain.VenuePending, Category: domain.CategoryRestaurante}
	venues.On("GetByID", mock.Anything, "v1").Return(existing, nil)
	venues.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(venues)

	newName := "Boragó Restaurante"
	v, err := svc.UpdateDetails(context.Background(), "v1", UpdateVenueRequest{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Boragó Restaurante", v.Name)
	assert.Equal(t, domain.VenuePending, v.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	venues := new(MockVenueRepository)
	venues.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(venues)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
