package handlers

import (
	"net/http"

	response "retailcore/internal/adapter/http/dto/response"
	"retailcore/internal/usecase"
	"retailcore/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read access to the product catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// List returns active products, optionally narrowed to one category.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query    string  false  "Category filter"
// @Success      200       {array}  response.ProductResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}
