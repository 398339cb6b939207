// Package errors renders station failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is the application/problem+json body returned for every failed request.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy carrying the user-facing message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension returns a copy with one more extension member. The map is
// copied so templates are never mutated.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

// Problem type URIs, relative to the responder's base URI.
const (
	TypeValidation        = "/problems/validation-error"
	TypeBadRequest        = "/problems/bad-request"
	TypeUnauthorized      = "/problems/unauthorized"
	TypeForbidden         = "/problems/forbidden"
	TypeNotFound          = "/problems/not-found"
	TypeConflict          = "/problems/conflict"
	TypeAlreadyReconciled = "/problems/already-reconciled"
	TypeInsufficientStock = "/problems/insufficient-stock"
	TypeUnknownSupplier   = "/problems/unknown-supplier"
	TypeInternal          = "/problems/internal-error"
)

var (
	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	ErrUnauthorized = ProblemDetail{
		Type:   TypeUnauthorized,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
	}

	// ErrForbidden covers both missing roles and orders addressed to another supplier.
	ErrForbidden = ProblemDetail{
		Type:   TypeForbidden,
		Title:  "Forbidden",
		Status: http.StatusForbidden,
	}

	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	ErrConflict = ProblemDetail{
		Type:   TypeConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
	}

	// ErrAlreadyReconciled is returned when a delivery was already added to inventory.
	ErrAlreadyReconciled = ProblemDetail{
		Type:   TypeAlreadyReconciled,
		Title:  "Delivery Already Added To Inventory",
		Status: http.StatusConflict,
	}

	ErrInsufficientStock = ProblemDetail{
		Type:   TypeInsufficientStock,
		Title:  "Insufficient Stock",
		Status: http.StatusConflict,
	}

	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}
)

// NewValidationProblem lists the offending request fields under extensions.fields.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	return ErrValidation.WithExtension("fields", fieldErrors)
}

// NewUnknownSupplierProblem reports an order addressed to an email outside the supplier catalog.
func NewUnknownSupplierProblem(fieldErrors map[string]string) ProblemDetail {
	problem := NewValidationProblem(fieldErrors)
	problem.Type = TypeUnknownSupplier
	problem.Title = "Unknown Supplier"
	return problem
}

// NewConflictProblem reports a state conflict with the resource that caused it.
func NewConflictProblem(template ProblemDetail, resourceType string, identifier any, detail string) ProblemDetail {
	return template.
		WithDetail(detail).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}

// NewForbiddenProblem reports an action the caller is not allowed to perform.
func NewForbiddenProblem(detail string) ProblemDetail {
	return ErrForbidden.WithDetail(detail)
}
