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

var errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)

// RulesHandler handles the admin endpoints for category and stock rules.

type RulesHandler struct {
	usecase usecase.IRulesUseCase
}

func NewRulesHandler(uc usecase.IRulesUseCase) *RulesHandler {
	return &RulesHandler{usecase: uc}
}

// CreateCategoryRule registers a minimum-quantity floor.
//
// @Summary      Create a category rule
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CategoryRuleRequest  true  "Rule"
// @Success      201      {object}  response.CategoryRuleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/category-rules [post]
func (h *RulesHandler) CreateCategoryRule(c *gin.Context) {
	var payload request.CategoryRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.CreateCategoryRule(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCategoryRule(rule))
}

// ListCategoryRules returns every category rule.
//
// @Summary      List category rules
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.CategoryRuleResponse
// @Router       /admin/category-rules [get]
func (h *RulesHandler) ListCategoryRules(c *gin.Context) {
	rules, err := h.usecase.ListCategoryRules(c.Request.Context())
	if err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryRules(rules))
}

// DeleteCategoryRule removes a category rule by id.
//
// @Summary      Delete a category rule
// @Tags         admin
// @Param        rule_id  path  string  true  "Rule id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/category-rules/{rule_id} [delete]
func (h *RulesHandler) DeleteCategoryRule(c *gin.Context) {
	if err := h.usecase.DeleteCategoryRule(c.Request.Context(), c.Param("rule_id")); err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateStockRule registers an availability classification rule.
//
// @Summary      Create a stock rule
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.StockRuleRequest  true  "Rule"
// @Success      201      {object}  response.StockRuleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/stock-rules [post]
func (h *RulesHandler) CreateStockRule(c *gin.Context) {
	var payload request.StockRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.CreateStockRule(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromStockRule(rule))
}

// ListStockRules returns every stock rule in priority order.
//
// @Summary      List stock rules
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.StockRuleResponse
// @Router       /admin/stock-rules [get]
func (h *RulesHandler) ListStockRules(c *gin.Context) {
	rules, err := h.usecase.ListStockRules(c.Request.Context())
	if err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStockRules(rules))
}

// DeleteStockRule removes a stock rule by id.
//
// @Summary      Delete a stock rule
// @Tags         admin
// @Param        rule_id  path  string  true  "Rule id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/stock-rules/{rule_id} [delete]
func (h *RulesHandler) DeleteStockRule(c *gin.Context) {
	if err := h.usecase.DeleteStockRule(c.Request.Context(), c.Param("rule_id")); err != nil {
		appErr := mapRulesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRulesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryRule),
		errors.Is(err, usecase.ErrInvalidStockRule),
		errors.Is(err, usecase.ErrInvalidRuleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
