package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"hempdb/entities"
)

func parseAllowlist(domains string) map[string]bool {
	allow := map[string]bool{}
	for _, h := range strings.Split(domains, ",") {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			allow[h] = true
		}
	}
	return allow
}

// Import scrapes bibliographic metadata from an allowlisted page and stores
// it as a research paper. Explicit fields in the request override whatever
// the page provides.
func (h *ResearchCtrl) Import(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil || u.Host == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "domain not allowed"})
	}

	rp, err := h.fetchPaperMeta(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": err.Error()})
	}
	if body.Title != "" {
		rp.Title = body.Title
	}
	err = h.repo.CreateResearchPaper(rp)
	return created(c, rp, "Failed to import research paper", err)
}

func (h *ResearchCtrl) fetchPaperMeta(pageURL string) (*entities.ResearchPaper, error) {
	resp, err := h.client.Get(pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(h.maxBytes)}
	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return nil, err
	}

	meta := func(names ...string) string {
		for _, n := range names {
			sel := fmt.Sprintf(`meta[name=%q], meta[property=%q]`, n, n)
			if v, ok := doc.Find(sel).First().Attr("content"); ok {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
		return ""
	}

	rp := &entities.ResearchPaper{
		Title:    meta("citation_title", "og:title"),
		Abstract: meta("citation_abstract", "description", "og:description"),
		Journal:  meta("citation_journal_title"),
		DOI:      meta("citation_doi"),
		URL:      pageURL,
		PDFURL:   meta("citation_pdf_url"),
		ImageURL: meta("og:image"),
	}
	if rp.Title == "" {
		rp.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var authors []string
	doc.Find(`meta[name="citation_author"]`).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				authors = append(authors, v)
			}
		}
	})
	if len(authors) == 0 {
		if a := meta("author"); a != "" {
			authors = []string{a}
		}
	}
	rp.Authors = strings.Join(authors, ", ")

	if kw := meta("citation_keywords", "keywords"); kw != "" {
		for _, k := range strings.Split(kw, ";") {
			for _, k2 := range strings.Split(k, ",") {
				if k2 = strings.TrimSpace(k2); k2 != "" {
					rp.Keywords = append(rp.Keywords, k2)
				}
			}
		}
	}
	if n, err := strconv.Atoi(meta("citation_citation_count")); err == nil {
		rp.Citations = &n
	}
	return rp, nil
}
