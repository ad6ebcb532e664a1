package request

import "flash-coupon/internal/usecase/commands"

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email,max=100"`
	Name  string `json:"name" binding:"required,max=50"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{Email: r.Email, Name: r.Name}
}
