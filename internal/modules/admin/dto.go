package admin

type ChangeVenueStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendiente aprobado suspendido"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Level    string `json:"level" binding:"required,oneof=Silver Gold VIP"`
	Country  string `json:"country"`
}

type Statistics struct {
	TotalUsers         int64 `json:"total_users"`
	TotalVenues        int64 `json:"total_venues"`
	PendingVenues      int64 `json:"pending_venues"`
	TotalReservations  int64 `json:"total_reservations"`
	TodaysReservations int64 `json:"todays_reservations"`
}
