package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

type IndustryCtrl struct{ repo repository.Storage }

func NewIndustry(repo repository.Storage) *IndustryCtrl { return &IndustryCtrl{repo} }

func (h *IndustryCtrl) List(c echo.Context) error {
	out, err := h.repo.AllIndustries()
	if err != nil {
		return fail(c, "Failed to fetch industries", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IndustryCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	in, err := h.repo.IndustryByID(id)
	if err != nil {
		return fail(c, "Failed to fetch industry", err)
	}
	if in == nil {
		return notFound(c, "Industry")
	}
	return c.JSON(http.StatusOK, in)
}

func (h *IndustryCtrl) Create(c echo.Context) error {
	var in entities.Industry
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	err := h.repo.CreateIndustry(&in)
	return created(c, in, "Failed to create industry", err)
}

func (h *IndustryCtrl) ListSub(c echo.Context) error {
	industryID, ok, err := queryID(c, "industryId")
	if err != nil {
		return badParam(c, "industryId")
	}
	var out []entities.SubIndustry
	if ok {
		out, err = h.repo.SubIndustriesByIndustry(industryID)
	} else {
		out, err = h.repo.AllSubIndustries()
	}
	if err != nil {
		return fail(c, "Failed to fetch sub-industries", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IndustryCtrl) GetSub(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	si, err := h.repo.SubIndustryByID(id)
	if err != nil {
		return fail(c, "Failed to fetch sub-industry", err)
	}
	if si == nil {
		return notFound(c, "Sub-industry")
	}
	return c.JSON(http.StatusOK, si)
}

func (h *IndustryCtrl) CreateSub(c echo.Context) error {
	var in entities.SubIndustry
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	err := h.repo.CreateSubIndustry(&in)
	return created(c, in, "Failed to create sub-industry", err)
}
