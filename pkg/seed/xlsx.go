package seed

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"hempdb/entities"
)

// ProductRow is one product from a seed spreadsheet. Plant part, industry
// and sub-industry are referenced by name; Run resolves them against the
// seeded reference data.
type ProductRow struct {
	Name                 string
	Description          string
	ImageURL             string
	PlantPart            string
	Industry             string
	SubIndustry          string
	Properties           []string
	Facts                []string
	SustainabilityImpact string
}

// LoadProductsXLSX reads product rows from the first sheet of a workbook.
// Required columns: name, description, plant_part, industry. Optional:
// sub_industry, image_url, properties, facts, sustainability (list cells
// are |-separated). Header matching tolerates spacing/underscore variants.
func LoadProductsXLSX(path string) ([]ProductRow, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("name", "product")
	cDesc := findAny("description", "desc")
	cPart := findAny("plant_part", "part")
	cInd := findAny("industry")
	cSub := findAny("sub_industry", "subindustry", "category")
	cImg := findAny("image_url", "image")
	cProps := findAny("properties", "props")
	cFacts := findAny("facts")
	cSust := findAny("sustainability", "sustainability_impact")

	if cName == -1 || cDesc == -1 || cPart == -1 || cInd == -1 {
		return nil, fmt.Errorf("%s missing required columns, found headers: %v", path, rows[0])
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	list := func(s string) []string {
		if s == "" {
			return nil
		}
		parts := strings.Split(s, "|")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	var out []ProductRow
	for _, rec := range rows[1:] {
		name := get(rec, cName)
		if name == "" {
			continue // skip blank rows
		}
		out = append(out, ProductRow{
			Name:                 name,
			Description:          get(rec, cDesc),
			ImageURL:             get(rec, cImg),
			PlantPart:            get(rec, cPart),
			Industry:             get(rec, cInd),
			SubIndustry:          get(rec, cSub),
			Properties:           list(get(rec, cProps)),
			Facts:                list(get(rec, cFacts)),
			SustainabilityImpact: get(rec, cSust),
		})
	}
	return out, nil
}

func resolveRows(rows []ProductRow, parts map[string]*entities.PlantPart, industries map[string]*entities.Industry, subs map[string]*entities.SubIndustry) ([]entities.HempProduct, error) {
	out := make([]entities.HempProduct, 0, len(rows))
	for _, r := range rows {
		pp, ok := parts[r.PlantPart]
		if !ok {
			return nil, fmt.Errorf("seed row %q: unknown plant part %q", r.Name, r.PlantPart)
		}
		in, ok := industries[r.Industry]
		if !ok {
			return nil, fmt.Errorf("seed row %q: unknown industry %q", r.Name, r.Industry)
		}
		p := entities.HempProduct{
			Name:                 r.Name,
			Description:          r.Description,
			ImageURL:             r.ImageURL,
			PlantPartID:          pp.ID,
			IndustryID:           in.ID,
			Properties:           r.Properties,
			Facts:                r.Facts,
			SustainabilityImpact: r.SustainabilityImpact,
		}
		if r.SubIndustry != "" {
			si, ok := subs[r.SubIndustry]
			if !ok {
				return nil, fmt.Errorf("seed row %q: unknown sub-industry %q", r.Name, r.SubIndustry)
			}
			id := si.ID
			p.SubIndustryID = &id
		}
		out = append(out, p)
	}
	return out, nil
}
