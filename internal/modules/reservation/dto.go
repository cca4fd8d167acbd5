package reservation

type CreateRequest struct {
	VenueID   string `json:"venue_id" binding:"required"`
	Date      string `json:"date" binding:"required,dateonly"`
	Time      string `json:"time" binding:"required,clocktime"`
	PartySize int    `json:"party_size" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmada cancelada"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=1000"`
}
