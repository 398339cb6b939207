package stationserver

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	procurementapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application"
	procurementdomain "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	procurementports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/ports"
	suppliersapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application"
	supplierports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
	usersapp "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/application"
	userports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/ports"
	apierrors "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/shared/errors"
)

var responder = apierrors.NewChainedResponder("",
	mapValidationError,
	mapNotFoundError,
	mapForbiddenError,
	mapConflictError,
	mapAuthenticationError,
	mapInvalidInputError,
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondServiceError maps any application error to a problem response.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func mapValidationError(err error) (apierrors.ProblemDetail, bool) {
	var validation *procurementapp.ValidationError
	if errors.As(err, &validation) {
		if errors.Is(err, procurementapp.ErrUnknownSupplier) {
			return apierrors.NewUnknownSupplierProblem(validation.Fields), true
		}
		return apierrors.NewValidationProblem(validation.Fields), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapNotFoundError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, procurementports.ErrNotFound) ||
		errors.Is(err, supplierports.ErrNotFound) ||
		errors.Is(err, userports.ErrNotFound) {
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapForbiddenError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, procurementapp.ErrForbidden) {
		return apierrors.NewForbiddenProblem(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapConflictError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, procurementapp.ErrConflict) ||
		errors.Is(err, suppliersapp.ErrConflict) ||
		errors.Is(err, usersapp.ErrConflict) {
		return conflictTemplate(err).WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// conflictTemplate picks the most specific 409 problem for err.
func conflictTemplate(err error) apierrors.ProblemDetail {
	switch {
	case errors.Is(err, procurementdomain.ErrAlreadyReconciled):
		return apierrors.ErrAlreadyReconciled
	case errors.Is(err, procurementdomain.ErrInsufficientStock):
		return apierrors.ErrInsufficientStock
	default:
		return apierrors.ErrConflict
	}
}

func mapAuthenticationError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, suppliersapp.ErrAuthentication) || errors.Is(err, usersapp.ErrAuthentication) {
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInvalidInputError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, procurementapp.ErrInvalidInput) ||
		errors.Is(err, procurementapp.ErrUnknownSupplier) ||
		errors.Is(err, suppliersapp.ErrInvalidInput) ||
		errors.Is(err, usersapp.ErrInvalidInput) {
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// parseIDParam reads a positive integer path parameter, responding 400 otherwise.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("invalid "+name+": "+raw))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body, responding 400 on malformed payloads.
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return false
	}
	return true
}
