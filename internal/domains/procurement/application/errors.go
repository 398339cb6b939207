package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid procurement input")
	// ErrForbidden signals the caller is not the supplier the order is addressed to.
	ErrForbidden = errors.New("order is addressed to a different supplier")
	// ErrUnknownSupplier signals the supplier email is not in the catalog.
	ErrUnknownSupplier = errors.New("supplier email is not registered")
	// ErrConflict signals the entity is not in a state that allows the operation.
	ErrConflict = errors.New("procurement state conflict")
)

// ValidationError enumerates the offending fields of a request. Reason, when
// set, names the business rule behind them.
type ValidationError struct {
	Fields map[string]string
	Reason error
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Unwrap lets callers match ErrInvalidInput and the Reason.
func (e *ValidationError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrInvalidInput, e.Reason}
	}
	return []error{ErrInvalidInput}
}

type fieldErrors map[string]string

func (f fieldErrors) require(ok bool, field, msg string) {
	if !ok {
		if _, exists := f[field]; !exists {
			f[field] = msg
		}
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return err
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrConflict) || errors.Is(err, ErrForbidden) {
		return err
	}
	if errors.Is(err, domain.ErrEmptyItemName) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidSupplierEmail) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidKind) ||
		errors.Is(err, domain.ErrInvalidPolicy) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrNegativeStock) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrAlreadyReconciled) ||
		errors.Is(err, domain.ErrOrderNotAccepted) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, ports.ErrConcurrentModification) ||
		errors.Is(err, ports.ErrDuplicate) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
