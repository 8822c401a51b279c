package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hempdb/pkg/catalog/repository"
)

type StatsCtrl struct{ repo repository.Storage }

func NewStats(repo repository.Storage) *StatsCtrl { return &StatsCtrl{repo} }

// Stats feeds the landing-page counters.
func (h *StatsCtrl) Stats(c echo.Context) error {
	totalProducts, err := h.repo.CountProducts()
	if err != nil {
		return fail(c, "Failed to fetch statistics", err)
	}
	industries, err := h.repo.AllIndustries()
	if err != nil {
		return fail(c, "Failed to fetch statistics", err)
	}
	plantParts, err := h.repo.AllPlantParts()
	if err != nil {
		return fail(c, "Failed to fetch statistics", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"totalProducts":   totalProducts,
		"totalIndustries": len(industries),
		"totalPlantParts": len(plantParts),
	})
}
