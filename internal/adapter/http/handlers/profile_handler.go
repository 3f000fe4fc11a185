package handlers

import (
	"errors"
	"net/http"

	request "retailcore/internal/adapter/http/dto/request"
	response "retailcore/internal/adapter/http/dto/response"
	"retailcore/internal/usecase"
	"retailcore/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// ProfileHandler handles the admin endpoints for assortment profiles.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// Create registers a weighting profile, optionally as the new default.
//
// @Summary      Create an assortment profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AssortmentProfileRequest  true  "Profile"
// @Success      201      {object}  response.AssortmentProfileResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/assortment-profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var payload request.AssortmentProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.CreateProfile(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAssortmentProfile(profile))
}

// List returns every assortment profile.
//
// @Summary      List assortment profiles
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.AssortmentProfileResponse
// @Router       /admin/assortment-profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.usecase.ListProfiles(c.Request.Context())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssortmentProfiles(profiles))
}

// Delete removes an assortment profile by id.
//
// @Summary      Delete an assortment profile
// @Tags         admin
// @Param        profile_id  path  string  true  "Profile id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/assortment-profiles/{profile_id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.usecase.DeleteProfile(c.Request.Context(), c.Param("profile_id")); err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfile), errors.Is(err, usecase.ErrInvalidProfileID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
