package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DocumentID  string `json:"document_id,omitempty"`
	Birthdate   string `json:"birthdate,omitempty"`
	SocialMedia string `json:"social_media,omitempty"`
}
