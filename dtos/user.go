package dtos

type CreateUserInput struct {
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type UpdateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=4"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}
