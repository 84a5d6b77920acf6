package request

import "shareit/internal/usecase/commands"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r *CreateUserRequest) ToUseCase() commands.CreateUserRequest {
	return commands.CreateUserRequest{Name: r.Name, Email: r.Email}
}

func (r *UpdateUserRequest) ToUseCase() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{Name: r.Name, Email: r.Email}
}
