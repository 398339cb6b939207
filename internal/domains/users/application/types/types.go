package types

import "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/domain"

// CreateUserInput carries the fields an admin provides for a new staff account.
type CreateUserInput struct {
	Email    string
	FullName string
	Role     string
	Password string
}

// LoginInput carries staff credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned after a successful staff login.
type LoginResult struct {
	Token string
	User  *domain.User
}
