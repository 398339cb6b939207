package mapper

import (
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/application/types"
	userdomain "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/domain"
)

// CreateUser is the admin payload for a new staff account.
type CreateUser struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// User represents the transport-level staff payload.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
}

// Credentials is the staff login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned after a staff login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ToCreateInput converts a transport payload to the application command.
func ToCreateInput(model CreateUser) types.CreateUserInput {
	return types.CreateUserInput{
		Email:    model.Email,
		FullName: model.FullName,
		Role:     model.Role,
		Password: model.Password,
	}
}

func ToLoginInput(model Credentials) types.LoginInput {
	return types.LoginInput{Email: model.Email, Password: model.Password}
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}
}

// FromDomainUsers converts a slice of domain users to transport representation.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}

func FromLoginResult(result *types.LoginResult) Session {
	if result == nil {
		return Session{}
	}
	return Session{Token: result.Token, User: FromDomainUser(result.User)}
}
