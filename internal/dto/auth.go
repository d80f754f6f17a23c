package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"asker@example.com"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=asker lawyer" example:"asker"`

	// Lawyer-only fields.
	FullName  string `json:"full_name,omitempty" example:"Kim Min-su"`
	BarNumber string `json:"bar_number,omitempty" example:"12-34567"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"asker@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
