package mapper

import (
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application/types"
	supplierdomain "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
)

// RegisterSupplier is the admin payload for a new supplier.
type RegisterSupplier struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	SuppliedItems []string `json:"suppliedItems"`
	Password      string   `json:"password"`
}

// Supplier is the transport representation. The password hash never leaves the service.
type Supplier struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	SuppliedItems []string `json:"suppliedItems"`
}

// Credentials is the login payload shared by suppliers and staff.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned after a supplier login.
type Session struct {
	Token    string   `json:"token"`
	Supplier Supplier `json:"supplier"`
}

func ToRegisterInput(model RegisterSupplier) types.RegisterSupplierInput {
	return types.RegisterSupplierInput{
		Name:          model.Name,
		Email:         model.Email,
		Phone:         model.Phone,
		SuppliedItems: append([]string(nil), model.SuppliedItems...),
		Password:      model.Password,
	}
}

func ToLoginInput(model Credentials) types.LoginInput {
	return types.LoginInput{Email: model.Email, Password: model.Password}
}

func FromDomainSupplier(supplier *supplierdomain.Supplier) Supplier {
	if supplier == nil {
		return Supplier{}
	}
	items := append([]string{}, supplier.SuppliedItems...)
	return Supplier{
		ID:            supplier.ID,
		Name:          supplier.Name,
		Email:         supplier.Email,
		Phone:         supplier.Phone,
		SuppliedItems: items,
	}
}

func FromDomainSuppliers(suppliers []*supplierdomain.Supplier) []Supplier {
	result := make([]Supplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		result = append(result, FromDomainSupplier(supplier))
	}
	return result
}

func FromLoginResult(result *types.LoginResult) Session {
	if result == nil {
		return Session{}
	}
	return Session{Token: result.Token, Supplier: FromDomainSupplier(result.Supplier)}
}
