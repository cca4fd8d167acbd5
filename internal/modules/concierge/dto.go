package concierge

type QueryRequest struct {
	Query string `json:"query" binding:"required,max=500"`
}
