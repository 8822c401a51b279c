package router

import (
	"github.com/labstack/echo/v4"

	"hempdb/pkg/catalog/controller"
)

func New(
	e *echo.Echo,
	plantCtrl controller.PlantController,
	industryCtrl controller.IndustryController,
	productCtrl controller.ProductController,
	researchCtrl controller.ResearchController,
	statsCtrl controller.StatsController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.GET("/plant-types", plantCtrl.ListTypes)
	api.GET("/plant-types/:id", plantCtrl.GetType)
	api.POST("/plant-types", plantCtrl.CreateType)

	api.GET("/plant-parts", plantCtrl.ListParts)
	api.GET("/plant-parts/:id", plantCtrl.GetPart)
	api.POST("/plant-parts", plantCtrl.CreatePart)

	api.GET("/industries", industryCtrl.List)
	api.GET("/industries/:id", industryCtrl.Get)
	api.POST("/industries", industryCtrl.Create)

	api.GET("/sub-industries", industryCtrl.ListSub)
	api.GET("/sub-industries/:id", industryCtrl.GetSub)
	api.POST("/sub-industries", industryCtrl.CreateSub)

	api.GET("/hemp-products", productCtrl.List)
	api.GET("/hemp-products/search", productCtrl.Search)
	api.GET("/hemp-products/:id", productCtrl.Get)
	api.POST("/hemp-products", productCtrl.Create)

	api.GET("/research-papers", researchCtrl.List)
	api.GET("/research-papers/search", researchCtrl.Search)
	api.GET("/research-papers/plant-type/:plantTypeId", researchCtrl.ListByPlantType)
	api.GET("/research-papers/plant-part/:plantPartId", researchCtrl.ListByPlantPart)
	api.GET("/research-papers/industry/:industryId", researchCtrl.ListByIndustry)
	api.GET("/research-papers/:id", researchCtrl.Get)
	api.POST("/research-papers", researchCtrl.Create)
	api.POST("/research-papers/import", researchCtrl.Import)

	api.GET("/stats", statsCtrl.Stats)

	return e
}
