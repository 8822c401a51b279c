package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

type ResearchCtrl struct {
	repo     repository.Storage
	allow    map[string]bool
	maxBytes int
	client   *http.Client
}

func NewResearch(repo repository.Storage, allowedDomains string) *ResearchCtrl {
	return &ResearchCtrl{
		repo:     repo,
		allow:    parseAllowlist(allowedDomains),
		maxBytes: 1500000,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (h *ResearchCtrl) List(c echo.Context) error {
	out, err := h.repo.AllResearchPapers()
	if err != nil {
		return fail(c, "Failed to fetch research papers", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResearchCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return badParam(c, "id")
	}
	rp, err := h.repo.ResearchPaperByID(id)
	if err != nil {
		return fail(c, "Failed to fetch research paper", err)
	}
	if rp == nil {
		return notFound(c, "Research paper")
	}
	return c.JSON(http.StatusOK, rp)
}

func (h *ResearchCtrl) ListByPlantType(c echo.Context) error {
	id, err := parseID(c.Param("plantTypeId"))
	if err != nil {
		return badParam(c, "plantTypeId")
	}
	out, err := h.repo.ResearchPapersByPlantType(id)
	if err != nil {
		return fail(c, "Failed to fetch research papers by plant type", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResearchCtrl) ListByPlantPart(c echo.Context) error {
	id, err := parseID(c.Param("plantPartId"))
	if err != nil {
		return badParam(c, "plantPartId")
	}
	out, err := h.repo.ResearchPapersByPlantPart(id)
	if err != nil {
		return fail(c, "Failed to fetch research papers by plant part", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResearchCtrl) ListByIndustry(c echo.Context) error {
	id, err := parseID(c.Param("industryId"))
	if err != nil {
		return badParam(c, "industryId")
	}
	out, err := h.repo.ResearchPapersByIndustry(id)
	if err != nil {
		return fail(c, "Failed to fetch research papers by industry", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResearchCtrl) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Search query is required"})
	}
	out, err := h.repo.SearchResearchPapers(q)
	if err != nil {
		return fail(c, "Failed to search research papers", err)
	}
	return c.JSON(http.StatusOK, out)
}

// createPaperReq accepts the publication date as a plain YYYY-MM-DD string.
type createPaperReq struct {
	Title           string   `json:"title"`
	Authors         string   `json:"authors"`
	Abstract        string   `json:"abstract"`
	PublicationDate string   `json:"publicationDate"`
	Journal         string   `json:"journal"`
	DOI             string   `json:"doi"`
	URL             string   `json:"url"`
	PDFURL          string   `json:"pdfUrl"`
	ImageURL        string   `json:"imageUrl"`
	PlantTypeID     *uint    `json:"plantTypeId"`
	PlantPartID     *uint    `json:"plantPartId"`
	IndustryID      *uint    `json:"industryId"`
	Keywords        []string `json:"keywords"`
	Citations       *int     `json:"citations"`
}

func (h *ResearchCtrl) Create(c echo.Context) error {
	var req createPaperReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	rp := entities.ResearchPaper{
		Title:       req.Title,
		Authors:     req.Authors,
		Abstract:    req.Abstract,
		Journal:     req.Journal,
		DOI:         req.DOI,
		URL:         req.URL,
		PDFURL:      req.PDFURL,
		ImageURL:    req.ImageURL,
		PlantTypeID: req.PlantTypeID,
		PlantPartID: req.PlantPartID,
		IndustryID:  req.IndustryID,
		Keywords:    req.Keywords,
		Citations:   req.Citations,
	}
	if req.PublicationDate != "" {
		d, err := time.Parse("2006-01-02", req.PublicationDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "Validation error",
				"errors":  []entities.FieldError{{Field: "publicationDate", Message: "must be YYYY-MM-DD"}},
			})
		}
		rp.PublicationDate = &d
	}
	err := h.repo.CreateResearchPaper(&rp)
	return created(c, rp, "Failed to create research paper", err)
}
