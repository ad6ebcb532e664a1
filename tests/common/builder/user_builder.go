//go:build unit || e2e

package builder

import (
	"time"

	"flash-coupon/internal/domain/user"
	reqdto "flash-coupon/internal/handler/dto/request"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Name:      "Test User",
		CreatedAt: Now(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, name, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() queries.UserView {
	return queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{Email: u.Email, Name: u.Name}
}
