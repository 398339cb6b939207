package types

import "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"

// RegisterSupplierInput carries the fields an admin provides for a new supplier.
type RegisterSupplierInput struct {
	Name          string
	Email         string
	Phone         string
	SuppliedItems []string
	Password      string
}

// LoginInput carries supplier credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned after a successful supplier login.
type LoginResult struct {
	Token    string
	Supplier *domain.Supplier
}
