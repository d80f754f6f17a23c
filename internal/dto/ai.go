package dto

type AIChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user model" example:"user"`
	Content string `json:"content" validate:"required"`
}

type AIChatRequestDTO struct {
	Messages []AIChatMessageDTO `json:"messages" validate:"required,min=1"`
}

type AIChatResponseDTO struct {
	Reply string `json:"reply"`
}
