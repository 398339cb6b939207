package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("supplier name is required")
	ErrInvalidEmail  = errors.New("supplier email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest accepted supplier password.
const MinPasswordLength = 8

// Supplier is a vendor that receives procurement orders by email.
type Supplier struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	SuppliedItems []string
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSupplier builds a supplier ensuring required invariants.
func NewSupplier(name, email, phone string, suppliedItems []string) (*Supplier, error) {
	supplier := &Supplier{
		Name:          strings.TrimSpace(name),
		Email:         NormalizeEmail(email),
		Phone:         strings.TrimSpace(phone),
		SuppliedItems: cleanItems(suppliedItems),
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Validate re-applies core invariants for persistence.
func (s *Supplier) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Supplies reports whether the supplier lists the item, ignoring case.
func (s *Supplier) Supplies(item string) bool {
	item = strings.TrimSpace(item)
	for _, candidate := range s.SuppliedItems {
		if strings.EqualFold(candidate, item) {
			return true
		}
	}
	return false
}

// CheckPasswordPolicy validates a plaintext password before hashing.
func CheckPasswordPolicy(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
