package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"accessplus/internal/domain"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category"`
	Location    string    `gorm:"column:location"`
	Address     string    `gorm:"column:address"`
	Country     string    `gorm:"column:country;index"`
	Image       string    `gorm:"column:image"`
	Rating      float64   `gorm:"column:rating"`
	Description string    `gorm:"column:description"`
	Lat         float64   `gorm:"column:lat"`
	Lng         float64   `gorm:"column:lng"`
	Status      string    `gorm:"column:status;index"`
	Benefits    []byte    `gorm:"column:benefits"`
	Contact     []byte    `gorm:"column:contact"`
	Hours       []byte    `gorm:"column:hours"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (venueModel) TableName() string { return "venues" }

func toDomainVenue(m venueModel) *domain.Venue {
	v := &domain.Venue{
		ID:          m.ID,
		Name:        m.Name,
		Category:    domain.VenueCategory(m.Category),
		Location:    m.Location,
		Address:     m.Address,
		Country:     m.Country,
		Image:       m.Image,
		Rating:      m.Rating,
		Description: m.Description,
		Coordinates: domain.Coordinates{Lat: m.Lat, Lng: m.Lng},
		Status:      domain.VenueStatus(m.Status),
		Benefits:    []domain.Benefit{},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.Benefits) > 0 {
		_ = json.Unmarshal(m.Benefits, &v.Benefits)
	}
	if len(m.Contact) > 0 {
		var c domain.VenueContact
		if err := json.Unmarshal(m.Contact, &c); err == nil {
			v.Contact = &c
		}
	}
	if len(m.Hours) > 0 {
		_ = json.Unmarshal(m.Hours, &v.Hours)
	}
	return v
}

func toVenueModel(v *domain.Venue) venueModel {
	m := venueModel{
		ID:          v.ID,
		Name:        v.Name,
		Category:    string(v.Category),
		Location:    v.Location,
		Address:     v.Address,
		Country:     v.Country,
		Image:       v.Image,
		Rating:      v.Rating,
		Description: v.Description,
		Lat:         v.Coordinates.Lat,
		Lng:         v.Coordinates.Lng,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if len(v.Benefits) > 0 {
		m.Benefits, _ = json.Marshal(v.Benefits)
	}
	if v.Contact != nil {
		m.Contact, _ = json.Marshal(v.Contact)
	}
	if len(v.Hours) > 0 {
		m.Hours, _ = json.Marshal(v.Hours)
	}
	return m
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	m := toVenueModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVenue(m)
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var m venueModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVenue(m), nil
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	m := toVenueModel(v)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVenue(m)
	return nil
}

func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var rows []venueModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVenues(rows), nil
}

// ListByCountry returns venues whose country matches exactly, restricted to
// the given statuses when provided.
func (r *VenueRepository) ListByCountry(ctx context.Context, country string, statuses ...domain.VenueStatus) ([]domain.Venue, error) {
	q := r.db.WithContext(ctx).Where("country = ?", country)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}

	var rows []venueModel
	tx := q.Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVenues(rows), nil
}

// ListByCountryPage returns one 1-indexed page plus whether more pages exist.
func (r *VenueRepository) ListByCountryPage(ctx context.Context, country string, page, pageSize int, statuses ...domain.VenueStatus) ([]domain.Venue, bool, error) {
	q := r.db.WithContext(ctx).Where("country = ?", country)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}

	offset := (page - 1) * pageSize
	var rows []venueModel
	// fetch one extra row to detect a following page
	tx := q.Order("created_at DESC").Offset(offset).Limit(pageSize + 1).Find(&rows)
	if tx.Error != nil {
		return nil, false, tx.Error
	}

	hasMore := len(rows) > pageSize
	if hasMore {
		rows = rows[:pageSize]
	}
	return toDomainVenues(rows), hasMore, nil
}

func (r *VenueRepository) Count(ctx context.Context, statuses ...domain.VenueStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&venueModel{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}
	var cnt int64
	tx := q.Count(&cnt)
	return cnt, tx.Error
}

func toDomainVenues(rows []venueModel) []domain.Venue {
	out := make([]domain.Venue, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVenue(m))
	}
	return out
}

func statusStrings(statuses []domain.VenueStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
