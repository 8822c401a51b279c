package controllerImp_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hempdb/entities"
	"hempdb/pkg/catalog/controllerImp"
	"hempdb/pkg/catalog/memoryImp"
	"hempdb/pkg/catalog/repository"
	healthCtrlImp "hempdb/pkg/health/controllerImp"
	"hempdb/pkg/seed"
	"hempdb/router"
)

// newServer wires the full route table over a seeded in-memory store, the
// same way main does.
func newServer(t *testing.T, allowedDomains string) (*httptest.Server, repository.Storage) {
	t.Helper()
	st := memoryImp.New()
	require.NoError(t, seed.Run(st, nil))

	e := echo.New()
	r := router.New(e,
		controllerImp.NewPlant(st),
		controllerImp.NewIndustry(st),
		controllerImp.NewProduct(st),
		controllerImp.NewResearch(st, allowedDomains),
		controllerImp.NewStats(st),
		healthCtrlImp.NewHealthCtrl(nil, "memory"),
	)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, srv *httptest.Server, path string, in, out any) int {
	t.Helper()
	b, err := json.Marshal(in)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

type errBody struct {
	Message string                `json:"message"`
	Errors  []entities.FieldError `json:"errors"`
}

func TestSeededListings(t *testing.T) {
	srv, _ := newServer(t, "")

	var types []entities.PlantType
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/plant-types", &types))
	assert.Len(t, types, 3)

	var parts []entities.PlantPart
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/plant-parts", &parts))
	assert.Len(t, parts, 5)

	var industries []entities.Industry
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/industries", &industries))
	assert.Len(t, industries, 5)

	var products []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products", &products))
	require.Len(t, products, 5)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID, products[i].ID)
	}
}

func TestGetByIDAndErrors(t *testing.T) {
	srv, _ := newServer(t, "")

	var pt entities.PlantType
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/plant-types/1", &pt))
	assert.Equal(t, uint(1), pt.ID)

	var e errBody
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/api/plant-types/999", &e))
	assert.Equal(t, "Plant type not found", e.Message)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/plant-types/abc", &e))
	assert.Equal(t, "Invalid id", e.Message)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/api/hemp-products/999", &e))
	assert.Equal(t, "Hemp product not found", e.Message)

	var si entities.SubIndustry
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/sub-industries/1", &si))
	assert.Equal(t, uint(1), si.ID)
}

func TestProductFilters(t *testing.T) {
	srv, _ := newServer(t, "")

	// every seeded product hangs off the Stalk part (id 1)
	var byPart []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?plantPartId=1", &byPart))
	assert.Len(t, byPart, 5)

	var byIndustry []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?industryId=1", &byIndustry))
	require.Len(t, byIndustry, 1)
	assert.Equal(t, "Hemp Clothing & Apparel", byIndustry[0].Name)

	var both []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?plantPartId=1&industryId=2", &both))
	require.Len(t, both, 1)
	assert.Equal(t, "Hempcrete", both[0].Name)

	var bySub []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?subIndustryId=2", &bySub))
	require.Len(t, bySub, 1)
	assert.Equal(t, "Hempcrete", bySub[0].Name)

	var none []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?industryId=999", &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)

	var e errBody
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products?plantPartId=abc", &e))
	assert.Equal(t, "Invalid plantPartId", e.Message)

	// the plain listing has no combined sub-industry op; refused, not dropped
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products?plantPartId=1&subIndustryId=2", &e))
	assert.Equal(t, "subIndustryId cannot be combined with plantPartId or industryId", e.Message)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products?industryId=2&subIndustryId=2", &e))
	assert.Equal(t, "subIndustryId cannot be combined with plantPartId or industryId", e.Message)
}

func TestProductPagination(t *testing.T) {
	srv, _ := newServer(t, "")

	type page struct {
		Products   []entities.HempProduct `json:"products"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int64 `json:"pages"`
		} `json:"pagination"`
	}

	var p1 page
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?pagination=true&page=1&limit=2", &p1))
	assert.Len(t, p1.Products, 2)
	assert.EqualValues(t, 5, p1.Pagination.Total)
	assert.EqualValues(t, 3, p1.Pagination.Pages)

	var p3 page
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?pagination=true&page=3&limit=2", &p3))
	assert.Len(t, p3.Products, 1)

	// past the end: still 200, empty page, total intact
	var p9 page
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?pagination=true&page=9&limit=2", &p9))
	assert.Empty(t, p9.Products)
	assert.EqualValues(t, 5, p9.Pagination.Total)

	// no page overlap
	ids := map[uint]bool{}
	for _, p := range append(p1.Products, p3.Products...) {
		assert.False(t, ids[p.ID])
		ids[p.ID] = true
	}

	// defaults apply when page/limit are absent
	var pd page
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?pagination=true", &pd))
	assert.Equal(t, 1, pd.Pagination.Page)
	assert.Equal(t, 5, pd.Pagination.Limit)

	// sub-industry narrows the paginated set too
	var ps page
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products?pagination=true&subIndustryId=2&limit=5", &ps))
	require.Len(t, ps.Products, 1)
	assert.Equal(t, "Hempcrete", ps.Products[0].Name)
	assert.EqualValues(t, 1, ps.Pagination.Total)

	var e errBody
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products?pagination=true&page=0", &e))
	assert.Equal(t, "Invalid page", e.Message)
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products?pagination=true&limit=-3", &e))
	assert.Equal(t, "Invalid limit", e.Message)
}

func TestProductSearch(t *testing.T) {
	srv, _ := newServer(t, "")

	var hits []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products/search?q=hempcrete", &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "Hempcrete", hits[0].Name)

	// short query: the engine answers with an empty list, not an error
	var short []entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/hemp-products/search?q=ab", &short))
	assert.NotNil(t, short)
	assert.Empty(t, short)

	var e errBody
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/hemp-products/search", &e))
	assert.Equal(t, "Search query is required", e.Message)
}

func TestCreateProductRoundTrip(t *testing.T) {
	srv, _ := newServer(t, "")

	sub := uint(1)
	in := entities.HempProduct{
		Name:          "Hemp Rope",
		Description:   "Twisted bast fiber rope",
		PlantPartID:   1,
		IndustryID:    1,
		SubIndustryID: &sub,
		Properties:    []string{"Strong", "Rot-resistant"},
		AffiliateLinks: []entities.AffiliateLink{
			{Name: "RopeCo", URL: "https://example.com/ropeco"},
		},
		RelatedProductIDs: []uint{1, 999},
	}
	var out entities.HempProduct
	require.Equal(t, http.StatusCreated, postJSON(t, srv, "/api/hemp-products", in, &out))
	require.NotZero(t, out.ID)

	var got entities.HempProduct
	require.Equal(t, http.StatusOK, getJSON(t, srv, fmt.Sprintf("/api/hemp-products/%d", out.ID), &got))
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Properties, got.Properties)
	assert.Equal(t, in.AffiliateLinks, got.AffiliateLinks)
	// dangling related id survives untouched
	assert.Equal(t, []uint{1, 999}, got.RelatedProductIDs)
}

func TestCreateValidationErrors(t *testing.T) {
	srv, _ := newServer(t, "")

	var e errBody
	require.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/hemp-products", entities.HempProduct{}, &e))
	assert.Equal(t, "Validation error", e.Message)
	fields := map[string]bool{}
	for _, fe := range e.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "description", "plantPartId", "industryId"} {
		assert.True(t, fields[want], "missing field error %q", want)
	}

	// sub-industry from another industry
	sub := uint(1) // Clothing & Apparel, belongs to Textiles (1)
	bad := entities.HempProduct{Name: "X", Description: "y", PlantPartID: 1, IndustryID: 3, SubIndustryID: &sub}
	require.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/hemp-products", bad, &e))
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "subIndustryId", e.Errors[0].Field)

	// duplicate industry name
	require.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/industries", entities.Industry{Name: "Textiles"}, &e))
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "name", e.Errors[0].Field)
}

func TestResearchPaperEndpoints(t *testing.T) {
	srv, _ := newServer(t, "")

	body := map[string]any{
		"title":           "Hemp hurd absorbency",
		"authors":         "Doe, J.; Roe, R.",
		"abstract":        "Absorbency of hemp hurd bedding.",
		"publicationDate": "2024-03-15",
		"plantTypeId":     1,
		"industryId":      5,
		"keywords":        []string{"hurd", "bedding"},
	}
	var out entities.ResearchPaper
	require.Equal(t, http.StatusCreated, postJSON(t, srv, "/api/research-papers", body, &out))
	require.NotZero(t, out.ID)
	require.NotNil(t, out.PublicationDate)
	assert.Equal(t, "2024-03-15", out.PublicationDate.Format("2006-01-02"))

	var byType []entities.ResearchPaper
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/research-papers/plant-type/1", &byType))
	assert.Len(t, byType, 1)

	var byInd []entities.ResearchPaper
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/research-papers/industry/5", &byInd))
	assert.Len(t, byInd, 1)

	var hits []entities.ResearchPaper
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/research-papers/search?q=absorbency", &hits))
	assert.Len(t, hits, 1)

	var e errBody
	body["publicationDate"] = "15/03/2024"
	require.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/research-papers", body, &e))
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "publicationDate", e.Errors[0].Field)
}

func TestResearchImport(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head>
			<meta name="citation_title" content="Carbon storage in hempcrete walls">
			<meta name="citation_author" content="Doe, Jane">
			<meta name="citation_author" content="Roe, Richard">
			<meta name="citation_journal_title" content="Journal of Building Materials">
			<meta name="citation_doi" content="10.1000/xyz123">
			<meta name="description" content="Lifecycle carbon accounting for hempcrete.">
			<meta name="keywords" content="hempcrete; carbon, lime">
			</head><body></body></html>`)
	}))
	defer page.Close()

	host := mustHost(t, page.URL)
	srv, _ := newServer(t, host)

	var out entities.ResearchPaper
	req := map[string]string{"url": page.URL + "/paper"}
	require.Equal(t, http.StatusCreated, postJSON(t, srv, "/api/research-papers/import", req, &out))
	assert.Equal(t, "Carbon storage in hempcrete walls", out.Title)
	assert.Equal(t, "Doe, Jane, Roe, Richard", out.Authors)
	assert.Equal(t, "Journal of Building Materials", out.Journal)
	assert.Equal(t, "10.1000/xyz123", out.DOI)
	assert.ElementsMatch(t, []string{"hempcrete", "carbon", "lime"}, out.Keywords)

	var e errBody
	require.Equal(t, http.StatusForbidden, postJSON(t, srv, "/api/research-papers/import",
		map[string]string{"url": "https://evil.example.com/paper"}, &e))
	assert.Equal(t, "domain not allowed", e.Message)

	require.Equal(t, http.StatusBadRequest, postJSON(t, srv, "/api/research-papers/import",
		map[string]string{}, &e))
	assert.Equal(t, "url required", e.Message)
}

func mustHost(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}

func TestStatsAndHealth(t *testing.T) {
	srv, _ := newServer(t, "")

	var stats struct {
		TotalProducts   int64 `json:"totalProducts"`
		TotalIndustries int   `json:"totalIndustries"`
		TotalPlantParts int   `json:"totalPlantParts"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/stats", &stats))
	assert.EqualValues(t, 5, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalIndustries)
	assert.Equal(t, 5, stats.TotalPlantParts)

	var health struct {
		Storage string `json:"storage"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/health", &health))
	assert.Equal(t, "memory", health.Storage)
}

func TestSubIndustryRoutes(t *testing.T) {
	srv, _ := newServer(t, "")

	var all []entities.SubIndustry
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/sub-industries", &all))
	assert.Len(t, all, 5)

	var byInd []entities.SubIndustry
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/sub-industries?industryId=1", &byInd))
	require.Len(t, byInd, 1)
	assert.Equal(t, "Clothing & Apparel", byInd[0].Name)
}

func TestPlantPartsByTypeQuery(t *testing.T) {
	srv, st := newServer(t, "")

	other := entities.PlantType{Name: "Bamboo-Like Hemp", Description: "tall cultivar"}
	require.NoError(t, st.CreatePlantType(&other))
	require.NoError(t, st.CreatePlantPart(&entities.PlantPart{Name: "Bark", Description: "outer layer", PlantTypeID: other.ID}))

	var parts []entities.PlantPart
	require.Equal(t, http.StatusOK, getJSON(t, srv, fmt.Sprintf("/api/plant-parts?plantTypeId=%d", other.ID), &parts))
	require.Len(t, parts, 1)
	assert.Equal(t, "Bark", parts[0].Name)
}
