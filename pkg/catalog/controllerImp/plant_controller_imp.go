package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

type PlantCtrl struct{ repo repository.Storage }

func NewPlant(repo repository.Storage) *PlantCtrl { return &PlantCtrl{repo} }

func (h *PlantCtrl) ListTypes(c echo.Context) error {
	out, err := h.repo.AllPlantTypes()
	if err != nil {
		return fail(c, "Failed to fetch plant types", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) GetType(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	pt, err := h.repo.PlantTypeByID(id)
	if err != nil {
		return fail(c, "Failed to fetch plant type", err)
	}
	if pt == nil {
		return notFound(c, "Plant type")
	}
	return c.JSON(http.StatusOK, pt)
}

func (h *PlantCtrl) CreateType(c echo.Context) error {
	var in entities.PlantType
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	err := h.repo.CreatePlantType(&in)
	return created(c, in, "Failed to create plant type", err)
}

func (h *PlantCtrl) ListParts(c echo.Context) error {
	plantTypeID, ok, err := queryID(c, "plantTypeId")
	if err != nil {
		return badParam(c, "plantTypeId")
	}
	var out []entities.PlantPart
	if ok {
		out, err = h.repo.PlantPartsByType(plantTypeID)
	} else {
		out, err = h.repo.AllPlantParts()
	}
	if err != nil {
		return fail(c, "Failed to fetch plant parts", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) GetPart(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	pp, err := h.repo.PlantPartByID(id)
	if err != nil {
		return fail(c, "Failed to fetch plant part", err)
	}
	if pp == nil {
		return notFound(c, "Plant part")
	}
	return c.JSON(http.StatusOK, pp)
}

func (h *PlantCtrl) CreatePart(c echo.Context) error {
	var in entities.PlantPart
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	err := h.repo.CreatePlantPart(&in)
	return created(c, in, "Failed to create plant part", err)
}
