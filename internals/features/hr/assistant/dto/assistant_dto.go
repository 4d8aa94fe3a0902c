package dto

// Un turno previo de la conversación, tal cual lo devolvió o envió el chat.
type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

type ChatRequest struct {
	History []ChatTurn `json:"history" validate:"omitempty,dive"`
	Message string     `json:"message" validate:"required,min=1"`
}
