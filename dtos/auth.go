package dtos

type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
