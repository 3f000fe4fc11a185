package handlers

import (
	"errors"
	"net/http"

	request "retailcore/internal/adapter/http/dto/request"
	response "retailcore/internal/adapter/http/dto/response"
	"retailcore/internal/domain/autopick"
	"retailcore/internal/usecase"
	"retailcore/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGeneratePayload = pkg.NewDomainErrorSimple("INVALID_AUTOPICK_INPUT", "Invalid auto-pick payload", http.StatusBadRequest)
	errInvalidApplyPayload    = pkg.NewDomainErrorSimple("INVALID_APPLY_INPUT", "Invalid apply payload", http.StatusBadRequest)
)

// AutoPickHandler handles HTTP requests for the auto-pick draft lifecycle.

type AutoPickHandler struct {
	usecase usecase.IAutoPickUseCase
}

func NewAutoPickHandler(uc usecase.IAutoPickUseCase) *AutoPickHandler {
	return &AutoPickHandler{usecase: uc}
}

// Generate builds and persists an auto-pick draft.
//
// @Summary      Generate an auto-pick draft
// @Description  Ranks the catalog against the user's purchase history and allocates a budget-fitted selection. The draft expires if not applied in time.
// @Tags         autopick
// @Accept       json
// @Produce      json
// @Param        payload  body      request.GenerateAutoPickRequest  true  "Generation parameters"
// @Success      201      {object}  response.GenerateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  response.GenerateFailureResponse
// @Router       /autopick/generate [post]
func (h *AutoPickHandler) Generate(c *gin.Context) {
	var payload request.GenerateAutoPickRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGeneratePayload.HTTPStatus, errInvalidGeneratePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Generate(c.Request.Context(), usecase.GenerateCommand{
		UserID:            payload.ResolveUserID(),
		StoreID:           payload.ResolveStoreID(),
		MinSum:            payload.MinSum,
		MaxSum:            payload.MaxSum,
		MaxPricePerItem:   payload.MaxPricePerItem,
		AssortmentMode:    payload.AssortmentMode,
		ExcludeCategories: payload.ExcludeCategories,
		IncludeCategories: payload.IncludeCategories,
	})
	if err != nil {
		if errors.Is(err, autopick.ErrNoSelection) || errors.Is(err, autopick.ErrBudgetUnreachable) {
			code := "NO_SELECTION"
			if errors.Is(err, autopick.ErrBudgetUnreachable) {
				code = "BUDGET_UNREACHABLE"
			}
			c.JSON(http.StatusUnprocessableEntity, response.GenerateFailureResponse{
				Code:        code,
				Message:     err.Error(),
				Diagnostics: response.FromDiagnostics(res.Diagnostics),
			})
			return
		}
		appErr := mapAutoPickError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.GenerateResponse{
		Draft:       response.FromDraft(res.Draft),
		Diagnostics: response.FromDiagnostics(res.Diagnostics),
	})
}

// Apply materializes a pending draft into the caller's cart.
//
// @Summary      Apply an auto-pick draft
// @Description  Re-validates each draft line against current stock and pricing, upserts the surviving lines into the cart and marks the draft applied.
// @Tags         autopick
// @Accept       json
// @Produce      json
// @Param        draft_id  path      string                    true  "Draft id"
// @Param        payload   body      request.ApplyDraftRequest true  "Apply parameters"
// @Success      200       {object}  response.ApplyDraftResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      403       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      410       {object}  pkg.HTTPError
// @Router       /autopick/drafts/{draft_id}/apply [post]
func (h *AutoPickHandler) Apply(c *gin.Context) {
	var payload request.ApplyDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplyPayload.HTTPStatus, errInvalidApplyPayload.ToHTTPError())
		return
	}

	draftID := c.Param("draft_id")
	res, err := h.usecase.ApplyDraft(c.Request.Context(), draftID, payload.UserID, payload.StoreID)
	if err != nil {
		appErr := mapAutoPickError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ApplyDraftResponse{
		DraftID:      draftID,
		Status:       "applied",
		AppliedItems: res.AppliedItems,
		SkippedItems: res.SkippedItems,
	})
}

// Get returns a draft to its owner.
//
// @Summary      Read an auto-pick draft
// @Tags         autopick
// @Produce      json
// @Param        draft_id  path      string  true  "Draft id"
// @Param        user_id   query     string  true  "Owning user id"
// @Success      200       {object}  response.DraftResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /autopick/drafts/{draft_id} [get]
func (h *AutoPickHandler) Get(c *gin.Context) {
	draftID := c.Param("draft_id")
	userID := c.Query("user_id")

	d, err := h.usecase.GetDraft(c.Request.Context(), draftID, userID)
	if err != nil {
		appErr := mapAutoPickError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(d))
}

func mapAutoPickError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidStoreID),
		errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrInvalidBudgetBounds):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotOwned):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_OWNED", "Draft belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDraftWrongStatus):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_PENDING", "Draft is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftExpired):
		return pkg.NewDomainErrorSimple("DRAFT_EXPIRED", "Draft expired before it was applied", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
