package person

type CreatePersonRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Role         string  `json:"role" binding:"required,oneof=ADMIN CHIEF DISPONENT ANALYST"`
	HomeLocation *string `json:"home_location"`
}

type UpdatePersonRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Role         *string `json:"role" binding:"omitempty,oneof=ADMIN CHIEF DISPONENT ANALYST"`
	Active       *bool   `json:"active"`
	HomeLocation *string `json:"home_location"`
}

type PersonResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Active       bool    `json:"active"`
	HomeLocation *string `json:"home_location,omitempty"`
	DeletedAt    *string `json:"deleted_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type PersonOptionResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	HomeLocation *string `json:"home_location,omitempty"`
}
