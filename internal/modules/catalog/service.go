package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

// ListByCountry returns approved venues for member-facing listings. An
// unsupported or not-yet-covered country yields an empty slice, not an error.
func (s *Service) ListByCountry(ctx context.Context, country string) ([]domain.Venue, error) {
	if country == "" {
		return nil, ErrCountryRequired
	}
	if !domain.CountrySupported(country) {
		return []domain.Venue{}, nil
	}
	return s.venues.ListByCountry(ctx, country, domain.VenueApproved)
}

// ListByCountryPage returns one 1-indexed page of approved venues plus a
// hasMore flag.
func (s *Service) ListByCountryPage(ctx context.Context, country string, page, pageSize int) ([]domain.Venue, bool, error) {
	if country == "" {
		return nil, false, ErrCountryRequired
	}
	if !domain.CountrySupported(country) {
		return []domain.Venue{}, false, nil
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.venues.ListByCountryPage(ctx, country, page, pageSize, domain.VenueApproved)
}

// FilterVenues narrows an already-loaded venue list in memory. Category "All"
// (or empty) matches everything; the search term matches venue names
// case-insensitively as a substring. Both predicates must hold. Input order
// is preserved.
func FilterVenues(venues []domain.Venue, category, searchTerm string) []domain.Venue {
	needle := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if category != "" && category != "All" && string(v.Category) != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(v.Name), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// RegisterVenue handles self-registration by a venue-role user. The venue
// starts out pendiente and stays out of member listings until an admin
// approves it.
func (s *Service) RegisterVenue(ctx context.Context, req CreateVenueRequest) (*domain.Venue, error) {
	return s.create(ctx, req, domain.VenuePending)
}

// CreateVenue is the admin path. Admin-created venues are approved
// immediately.
func (s *Service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*domain.Venue, error) {
	return s.create(ctx, req, domain.VenueApproved)
}

func (s *Service) create(ctx context.Context, req CreateVenueRequest, status domain.VenueStatus) (*domain.Venue, error) {
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if !validCoordinates(req.Lat, req.Lng) {
		return nil, ErrInvalidCoordinates
	}

	now := time.Now()
	v := &domain.Venue{
		ID:          "ven_" + uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Category:    domain.VenueCategory(req.Category),
		Location:    req.Location,
		Address:     req.Address,
		Country:     req.Country,
		Image:       req.Image,
		Description: req.Description,
		Coordinates: domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		Status:      status,
		Benefits:    req.benefits(),
		Hours:       req.Hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Contact != nil {
		v.Contact = &domain.VenueContact{Email: req.Contact.Email, Phone: req.Contact.Phone}
	}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateDetails patches venue fields. Status is never touched here; status
// changes go through the admin module.
func (s *Service) UpdateDetails(ctx context.Context, id string, req UpdateVenueRequest) (*domain.Venue, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		v.Category = domain.VenueCategory(*req.Category)
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Image != nil {
		v.Image = *req.Image
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Lat != nil {
		v.Coordinates.Lat = *req.Lat
	}
	if req.Lng != nil {
		v.Coordinates.Lng = *req.Lng
	}
	if !validCoordinates(v.Coordinates.Lat, v.Coordinates.Lng) {
		return nil, ErrInvalidCoordinates
	}
	if req.Benefits != nil {
		benefits := make([]domain.Benefit, 0, len(req.Benefits))
		for _, b := range req.Benefits {
			benefits = append(benefits, domain.Benefit{
				Description:  b.Description,
				PlanRequired: domain.AccessLevel(b.PlanRequired),
			})
		}
		v.Benefits = benefits
	}
	if req.Contact != nil {
		v.Contact = &domain.VenueContact{Email: req.Contact.Email, Phone: req.Contact.Phone}
	}
	if req.Hours != nil {
		v.Hours = req.Hours
	}

	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func validCategory(c string) bool {
	switch domain.VenueCategory(c) {
	case domain.CategoryRestaurante, domain.CategoryBar, domain.CategoryRooftop, domain.CategoryDiscoteca:
		return true
	}
	return false
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
