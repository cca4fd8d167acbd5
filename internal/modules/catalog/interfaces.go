package catalog

import (
	"context"

	"accessplus/internal/domain"
)

// VenueRepository is the storage surface the catalog service needs.
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	ListByCountry(ctx context.Context, country string, statuses ...domain.VenueStatus) ([]domain.Venue, error)
	ListByCountryPage(ctx context.Context, country string, page, pageSize int, statuses ...domain.VenueStatus) ([]domain.Venue, bool, error)
}
