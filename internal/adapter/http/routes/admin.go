package routes

import (
	"retailcore/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCategoryRules      = "/admin/category-rules"
	PathStockRules         = "/admin/stock-rules"
	PathAssortmentProfiles = "/admin/assortment-profiles"
)

func addAdminRoutes(rg *gin.RouterGroup, rulesHandler *handlers.RulesHandler, profileHandler *handlers.ProfileHandler) {
	categoryRules := rg.Group(PathCategoryRules)
	{
		categoryRules.POST("", rulesHandler.CreateCategoryRule)
		categoryRules.GET("", rulesHandler.ListCategoryRules)
		categoryRules.DELETE("/:rule_id", rulesHandler.DeleteCategoryRule)
	}

	stockRules := rg.Group(PathStockRules)
	{
		stockRules.POST("", rulesHandler.CreateStockRule)
		stockRules.GET("", rulesHandler.ListStockRules)
		stockRules.DELETE("/:rule_id", rulesHandler.DeleteStockRule)
	}

	profiles := rg.Group(PathAssortmentProfiles)
	{
		profiles.POST("", profileHandler.Create)
		profiles.GET("", profileHandler.List)
		profiles.DELETE("/:profile_id", profileHandler.Delete)
	}
}
