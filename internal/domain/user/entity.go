package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the holder of issued coupons. Admin access is granted by token role, not stored here.
type User struct {
	id        uuid.UUID
	email     Email
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email Email, name Name, now time.Time) *User {
	return &User{
		id:        uuid.New(),
		email:     email,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructUser(id uuid.UUID, email, name string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     Email{value: email},
		name:      Name(name),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() Name           { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
