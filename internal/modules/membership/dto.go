package membership

type ValidateCardRequest struct {
	BIN string `json:"bin" binding:"required,len=6,numeric"`
}

type ActivateRequest struct {
	Level        string `json:"level" binding:"required"`
	CardCategory string `json:"card_category" binding:"required"`
	BillingCycle string `json:"billing_cycle"`
}

type ChangeTierRequest struct {
	Level        string `json:"level" binding:"required"`
	BillingCycle string `json:"billing_cycle"`
}
