package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func NewUser(email, name, phone, address string) *User {
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
}

// DisplayNameFromEmail derives a display name for users created implicitly
// on first login: the local part of the address.
func DisplayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
