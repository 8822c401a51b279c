package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"hempdb/entities"
)

// Staleness windows for cached responses. Entity listings change rarely;
// search results are kept fresher.
const (
	listTTL   = 5 * time.Minute
	searchTTL = 1 * time.Minute
)

type cacheEntry struct {
	body    []byte
	expires time.Time
}

// Client talks to the catalog API. Responses are cached per request URL so
// repeated reads within the staleness window never hit the network.
type Client struct {
	base   string
	apiKey string
	httpc  *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

type Option func(*Client)

// WithAPIKey sends the key on every request as X-API-Key.
func WithAPIKey(key string) Option { return func(c *Client) { c.apiKey = key } }

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpc = h } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: 15 * time.Second},
		cache: map[string]cacheEntry{},
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// get fetches path (with query) and decodes the JSON body into out, serving
// from the cache when a live entry exists. Errors are never cached.
func (c *Client) get(path string, q url.Values, ttl time.Duration, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	c.mu.Lock()
	if e, ok := c.cache[u]; ok && c.now().Before(e.expires) {
		c.mu.Unlock()
		return json.Unmarshal(e.body, out)
	}
	c.mu.Unlock()

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[u] = cacheEntry{body: body, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// APIError carries the server's status code and message body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func apiError(status int, body []byte) error {
	var m struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &m)
	if m.Message == "" {
		m.Message = strings.TrimSpace(string(body))
	}
	return &APIError{Status: status, Message: m.Message}
}

func (c *Client) PlantTypes() ([]entities.PlantType, error) {
	var out []entities.PlantType
	err := c.get("/api/plant-types", nil, listTTL, &out)
	return out, err
}

func (c *Client) PlantType(id uint) (*entities.PlantType, error) {
	var out entities.PlantType
	if err := c.get(fmt.Sprintf("/api/plant-types/%d", id), nil, listTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlantParts() ([]entities.PlantPart, error) {
	var out []entities.PlantPart
	err := c.get("/api/plant-parts", nil, listTTL, &out)
	return out, err
}

func (c *Client) Industries() ([]entities.Industry, error) {
	var out []entities.Industry
	err := c.get("/api/industries", nil, listTTL, &out)
	return out, err
}

func (c *Client) SubIndustries(industryID uint) ([]entities.SubIndustry, error) {
	q := url.Values{}
	if industryID != 0 {
		q.Set("industryId", fmt.Sprint(industryID))
	}
	var out []entities.SubIndustry
	err := c.get("/api/sub-industries", q, listTTL, &out)
	return out, err
}

// ProductFilter narrows Products; zero fields are omitted.
type ProductFilter struct {
	PlantPartID   uint
	IndustryID    uint
	SubIndustryID uint
}

func (c *Client) Products(f ProductFilter) ([]entities.HempProduct, error) {
	q := url.Values{}
	if f.PlantPartID != 0 {
		q.Set("plantPartId", fmt.Sprint(f.PlantPartID))
	}
	if f.IndustryID != 0 {
		q.Set("industryId", fmt.Sprint(f.IndustryID))
	}
	if f.SubIndustryID != 0 {
		q.Set("subIndustryId", fmt.Sprint(f.SubIndustryID))
	}
	var out []entities.HempProduct
	err := c.get("/api/hemp-products", q, listTTL, &out)
	return out, err
}

// ProductPage is one page of a paginated product listing.
type ProductPage struct {
	Products   []entities.HempProduct `json:"products"`
	Pagination struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int64 `json:"pages"`
	} `json:"pagination"`
}

func (c *Client) ProductsPage(page, limit int, f ProductFilter) (*ProductPage, error) {
	q := url.Values{}
	q.Set("pagination", "true")
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	if f.PlantPartID != 0 {
		q.Set("plantPartId", fmt.Sprint(f.PlantPartID))
	}
	if f.IndustryID != 0 {
		q.Set("industryId", fmt.Sprint(f.IndustryID))
	}
	if f.SubIndustryID != 0 {
		q.Set("subIndustryId", fmt.Sprint(f.SubIndustryID))
	}
	var out ProductPage
	if err := c.get("/api/hemp-products", q, listTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(id uint) (*entities.HempProduct, error) {
	var out entities.HempProduct
	if err := c.get(fmt.Sprintf("/api/hemp-products/%d", id), nil, listTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchProducts short-circuits queries under three characters to an empty
// result without touching the network, matching the server's length guard.
func (c *Client) SearchProducts(query string) ([]entities.HempProduct, error) {
	if len([]rune(strings.TrimSpace(query))) < 3 {
		return []entities.HempProduct{}, nil
	}
	q := url.Values{}
	q.Set("q", query)
	var out []entities.HempProduct
	err := c.get("/api/hemp-products/search", q, searchTTL, &out)
	return out, err
}

func (c *Client) ResearchPapers() ([]entities.ResearchPaper, error) {
	var out []entities.ResearchPaper
	err := c.get("/api/research-papers", nil, listTTL, &out)
	return out, err
}

func (c *Client) SearchResearchPapers(query string) ([]entities.ResearchPaper, error) {
	if len([]rune(strings.TrimSpace(query))) < 3 {
		return []entities.ResearchPaper{}, nil
	}
	q := url.Values{}
	q.Set("q", query)
	var out []entities.ResearchPaper
	err := c.get("/api/research-papers/search", q, searchTTL, &out)
	return out, err
}

// Stats mirrors the landing-page counters.
type Stats struct {
	TotalProducts   int64 `json:"totalProducts"`
	TotalIndustries int   `json:"totalIndustries"`
	TotalPlantParts int   `json:"totalPlantParts"`
}

func (c *Client) Stats() (*Stats, error) {
	var out Stats
	if err := c.get("/api/stats", nil, listTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invalidate drops every cached response, forcing fresh fetches.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cache = map[string]cacheEntry{}
	c.mu.Unlock()
}
