package routes

import (
	"retailcore/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAutoPick = "/autopick"
	PathProducts = "/products"
)

func addAutoPickRoutes(rg *gin.RouterGroup, autoPickHandler *handlers.AutoPickHandler, catalogHandler *handlers.CatalogHandler) {
	autopick := rg.Group(PathAutoPick)
	{
		autopick.POST("/generate", autoPickHandler.Generate)
		autopick.GET("/drafts/:draft_id", autoPickHandler.Get)
		autopick.POST("/drafts/:draft_id/apply", autoPickHandler.Apply)
	}

	rg.GET(PathProducts, catalogHandler.List)
}
