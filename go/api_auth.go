package stationserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/adapters/http/mapper"
	userports "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/users/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
	apierrors "github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/shared/errors"
)

// AuthAPI handles staff sessions and staff account administration.
type AuthAPI struct {
	service userports.Service
}

// NewAuthAPI creates an AuthAPI backed by the staff user service.
func NewAuthAPI(service userports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /api/auth/login
func (api *AuthAPI) Login(c *gin.Context) {
	var payload usermapper.Credentials
	if !bindJSON(c, &payload) {
		return
	}
	result, err := api.service.Login(c.Request.Context(), usermapper.ToLoginInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromLoginResult(result))
}

// Post /api/auth/users
func (api *AuthAPI) CreateUser(c *gin.Context) {
	var payload usermapper.CreateUser
	if !bindJSON(c, &payload) {
		return
	}
	user, err := api.service.CreateUser(c.Request.Context(), usermapper.ToCreateInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usermapper.FromDomainUser(user))
}

// Get /api/auth/users
func (api *AuthAPI) ListUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUsers(users))
}

// Delete /api/auth/users/:id
// Admins cannot remove their own account.
func (api *AuthAPI) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if identity, ok := auth.IdentityFrom(c); ok && identity.Subject == id {
		respondProblem(c, apierrors.NewForbiddenProblem("admins cannot delete their own account"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
