package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

type ProductCtrl struct{ repo repository.Storage }

func NewProduct(repo repository.Storage) *ProductCtrl { return &ProductCtrl{repo} }

// paginationEnvelope matches the shape the front end pages on.
type paginationEnvelope struct {
	Products   []entities.HempProduct `json:"products"`
	Pagination paginationMeta         `json:"pagination"`
}

type paginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// positiveInt parses an optional positive integer query param with a default.
func positiveInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errNotPositive
	}
	return n, nil
}

var errNotPositive = errors.New("not a positive integer")

func (h *ProductCtrl) List(c echo.Context) error {
	plantPartID, hasPart, err := queryID(c, "plantPartId")
	if err != nil {
		return badParam(c, "plantPartId")
	}
	industryID, hasIndustry, err := queryID(c, "industryId")
	if err != nil {
		return badParam(c, "industryId")
	}
	subIndustryID, hasSub, err := queryID(c, "subIndustryId")
	if err != nil {
		return badParam(c, "subIndustryId")
	}

	if c.QueryParam("pagination") == "true" {
		page, err := positiveInt(c, "page", 1)
		if err != nil {
			return badParam(c, "page")
		}
		limit, err := positiveInt(c, "limit", 5)
		if err != nil {
			return badParam(c, "limit")
		}
		pg, err := h.repo.PaginateProducts(page, limit, plantPartID, industryID, subIndustryID)
		if err != nil {
			return fail(c, "Failed to fetch hemp products", err)
		}
		pages := (pg.Total + int64(limit) - 1) / int64(limit)
		return c.JSON(http.StatusOK, paginationEnvelope{
			Products:   pg.Products,
			Pagination: paginationMeta{Page: page, Limit: limit, Total: pg.Total, Pages: pages},
		})
	}

	// no listing op covers this pair; refusing beats dropping a filter
	if hasSub && (hasPart || hasIndustry) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "subIndustryId cannot be combined with plantPartId or industryId",
		})
	}

	var out []entities.HempProduct
	switch {
	case hasPart && hasIndustry:
		out, err = h.repo.ProductsByPartAndIndustry(plantPartID, industryID)
	case hasPart:
		out, err = h.repo.ProductsByPart(plantPartID)
	case hasIndustry:
		out, err = h.repo.ProductsByIndustry(industryID)
	case hasSub:
		out, err = h.repo.ProductsBySubIndustry(subIndustryID)
	default:
		out, err = h.repo.AllProducts()
	}
	if err != nil {
		return fail(c, "Failed to fetch hemp products", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	p, err := h.repo.ProductByID(id)
	if err != nil {
		return fail(c, "Failed to fetch hemp product", err)
	}
	if p == nil {
		return notFound(c, "Hemp product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Search query is required"})
	}
	// short queries come back empty from the engine, not as an error
	out, err := h.repo.SearchProducts(q)
	if err != nil {
		return fail(c, "Failed to search hemp products", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var in entities.HempProduct
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	err := h.repo.CreateProduct(&in)
	return created(c, in, "Failed to create hemp product", err)
}
