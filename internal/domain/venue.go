package domain

import "time"

type VenueStatus string

const (
	VenuePending   VenueStatus = "pendiente"
	VenueApproved  VenueStatus = "aprobado"
	VenueSuspended VenueStatus = "suspendido"
)

type VenueCategory string

const (
	CategoryRestaurante VenueCategory = "Restaurante"
	CategoryBar         VenueCategory = "Bar"
	CategoryRooftop     VenueCategory = "Rooftop"
	CategoryDiscoteca   VenueCategory = "Discoteca"
)

// SupportedCountries is the closed set the club currently operates in.
// Other countries are a valid "not yet available" empty state, not an error.
var SupportedCountries = []string{"Chile", "Perú", "Colombia", "Argentina"}

func CountrySupported(country string) bool {
	for _, c := range SupportedCountries {
		if c == country {
			return true
		}
	}
	return false
}

// Benefit is a venue perk gated by a minimum access level.
type Benefit struct {
	Description  string      `json:"description"`
	PlanRequired AccessLevel `json:"plan_required"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VenueContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type VenueHours struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Venue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    VenueCategory `json:"category"`
	Location    string        `json:"location"`
	Address     string        `json:"address"`
	Country     string        `json:"country"`
	Image       string        `json:"image"`
	Rating      float64       `json:"rating"`
	Description string        `json:"description"`
	Coordinates Coordinates   `json:"coordinates"`
	Status      VenueStatus   `json:"status"`
	Benefits    []Benefit     `json:"benefits"`
	Contact     *VenueContact `json:"contact,omitempty"`
	Hours       []VenueHours  `json:"hours,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// legalVenueTransitions: pendiente→aprobado, aprobado↔suspendido.
var legalVenueTransitions = map[VenueStatus][]VenueStatus{
	VenuePending:   {VenueApproved},
	VenueApproved:  {VenueSuspended},
	VenueSuspended: {VenueApproved},
}

// VenueTransitionAllowed reports whether a status change is legal.
func VenueTransitionAllowed(from, to VenueStatus) bool {
	for _, next := range legalVenueTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
