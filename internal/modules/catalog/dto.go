package catalog

import "accessplus/internal/domain"

type CreateVenueRequest struct {
	Name        string              `json:"name" binding:"required,min=2,max=120"`
	Category    string              `json:"category" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	Address     string              `json:"address"`
	Country     string              `json:"country" binding:"required"`
	Image       string              `json:"image"`
	Description string              `json:"description"`
	Lat         float64             `json:"lat"`
	Lng         float64             `json:"lng"`
	Benefits    []BenefitRequest    `json:"benefits"`
	Contact     *ContactRequest     `json:"contact"`
	Hours       []domain.VenueHours `json:"hours"`
}

type BenefitRequest struct {
	Description  string `json:"description" binding:"required"`
	PlanRequired string `json:"plan_required" binding:"required,oneof=Silver Gold VIP"`
}

type ContactRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type UpdateVenueRequest struct {
	Name        *string             `json:"name"`
	Category    *string             `json:"category"`
	Location    *string             `json:"location"`
	Address     *string             `json:"address"`
	Image       *string             `json:"image"`
	Description *string             `json:"description"`
	Lat         *float64            `json:"lat"`
	Lng         *float64            `json:"lng"`
	Benefits    []BenefitRequest    `json:"benefits"`
	Contact     *ContactRequest     `json:"contact"`
	Hours       []domain.VenueHours `json:"hours"`
}

func (r CreateVenueRequest) benefits() []domain.Benefit {
	out := make([]domain.Benefit, 0, len(r.Benefits))
	for _, b := range r.Benefits {
		out = append(out, domain.Benefit{
			Description:  b.Description,
			PlanRequired: domain.AccessLevel(b.PlanRequired),
		})
	}
	return out
}
