package domain

// CardBIN describes a recognized bank identification number prefix.
type CardBIN struct {
	Category CardCategory `json:"category"`
	Bank     string       `json:"bank"`
	Brand    string       `json:"brand"`
}

// RejectedBIN is the sentinel prefix that never qualifies for membership.
const RejectedBIN = "000000"

var cardBINs = map[string]CardBIN{
	"411111": {Category: CategoryPremium, Bank: "Bank of America", Brand: "Visa"},
	"510000": {Category: CategoryHighEnd, Bank: "Chase", Brand: "Mastercard"},
	"370000": {Category: CategoryUltraHighEnd, Bank: "American Express", Brand: "Amex"},
	"424242": {Category: CategoryHighEnd, Bank: "Santander", Brand: "Visa"},
	"999999": {Category: CategoryPremium, Bank: "Scotiabank", Brand: "Visa"},
}

// LookupBIN resolves a 6-digit prefix against the card table.
func LookupBIN(bin string) (CardBIN, bool) {
	c, ok := cardBINs[bin]
	return c, ok
}
