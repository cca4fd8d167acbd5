package domain

// BillingCycle selects which tier price a payment is charged at.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// MembershipTier is immutable reference data, exactly one entry per level.
type MembershipTier struct {
	Level        AccessLevel `json:"level"`
	Name         string      `json:"name"`
	PriceMonthly float64     `json:"price_monthly"`
	PriceAnnual  float64     `json:"price_annual"`
	Features     []string    `json:"features"`
}

// Price returns the tier price for the given billing cycle.
func (t MembershipTier) Price(cycle BillingCycle) float64 {
	if cycle == BillingMonthly {
		return t.PriceMonthly
	}
	return t.PriceAnnual
}

var membershipTiers = []MembershipTier{
	{
		Level:        LevelSilver,
		Name:         "Silver Access",
		PriceMonthly: 49,
		PriceAnnual:  499,
		Features:     []string{"Acceso a eventos seleccionados", "Descuentos del 10%", "Soporte estándar"},
	},
	{
		Level:        LevelGold,
		Name:         "Gold Access",
		PriceMonthly: 99,
		PriceAnnual:  999,
		Features:     []string{"Acceso prioritario", "Bebida de bienvenida", "Reservas garantizadas", "Soporte prioritario"},
	},
	{
		Level:        LevelVIP,
		Name:         "VIP Access",
		PriceMonthly: 199,
		PriceAnnual:  1999,
		Features:     []string{"Acceso VIP total", "Concierge personal", "Eventos exclusivos Black", "Upgrades de cortesía"},
	},
}

// Tiers returns the catalog in ascending level order.
func Tiers() []MembershipTier {
	out := make([]MembershipTier, len(membershipTiers))
	copy(out, membershipTiers)
	return out
}

func TierByLevel(level AccessLevel) (MembershipTier, bool) {
	for _, t := range membershipTiers {
		if t.Level == level {
			return t, true
		}
	}
	return MembershipTier{}, false
}

// tierEligibility maps a card category to the tiers it may purchase.
var tierEligibility = map[CardCategory][]AccessLevel{
	CategoryPremium:      {LevelSilver, LevelGold},
	CategoryHighEnd:      {LevelGold, LevelVIP},
	CategoryUltraHighEnd: {LevelVIP},
}

// EligibleTiers returns the tiers purchasable with the given card category.
// Unknown categories yield an empty list.
func EligibleTiers(category CardCategory) []MembershipTier {
	levels, ok := tierEligibility[category]
	if !ok {
		return []MembershipTier{}
	}
	out := make([]MembershipTier, 0, len(levels))
	for _, lvl := range levels {
		if t, found := TierByLevel(lvl); found {
			out = append(out, t)
		}
	}
	return out
}
