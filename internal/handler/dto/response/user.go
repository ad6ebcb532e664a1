package response

import (
	"time"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/usecase/queries"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email().Value(),
		Name:      u.Name().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromUserViews(views []queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = &UserResponse{
			ID:        v.ID.String(),
			Email:     v.Email,
			Name:      v.Name,
			CreatedAt: v.CreatedAt,
		}
	}
	return res
}
