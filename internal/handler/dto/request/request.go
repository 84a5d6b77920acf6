package request

import "shareit/internal/usecase/commands"

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

func (r *CreateItemRequestRequest) ToUseCase() commands.CreateRequestRequest {
	return commands.CreateRequestRequest{Description: r.Description}
}
