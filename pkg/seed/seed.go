package seed

import (
	"fmt"
	"log"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

// LockKey identifies the cross-process advisory lock wrapped around Run when
// the relational storage is in use. Stable across releases.
const LockKey int64 = 436904 // "seed" spelled on a phone pad

// Run inserts the sample reference data once. The guard matches the read
// path: anything beyond one existing plant type means a previous run (or a
// real dataset) is present, so Run does nothing. rows, when non-nil, replaces
// the built-in product set (see LoadProductsXLSX); part/industry names in
// rows are resolved against the freshly seeded reference data.
func Run(st repository.Storage, rows []ProductRow) error {
	n, err := st.CountPlantTypes()
	if err != nil {
		return err
	}
	if n > 1 {
		log.Printf("[seed] %d plant types present, skipping", n)
		return nil
	}
	log.Printf("[seed] inserting sample data")

	fiber := &entities.PlantType{
		Name:            "Fiber Hemp",
		Description:     "Cultivated for long, strong fibers with high plant density",
		PlantingDensity: "800,000+ plants/acre",
		Characteristics: "Tall stalks with minimal branching, optimized for fiber production",
	}
	grain := &entities.PlantType{
		Name:            "Grain/Seed Hemp",
		Description:     "Grown for nutritious seeds with moderate plant density",
		PlantingDensity: "Moderate density",
		Characteristics: "Plants with good seed head development, higher branching",
	}
	cannabinoid := &entities.PlantType{
		Name:            "Cannabinoid Hemp",
		Description:     "Cultivated for CBD-rich flowers with low plant density",
		PlantingDensity: "1,600 plants/acre",
		Characteristics: "Widely spaced plants with extensive flower development",
	}
	for _, pt := range []*entities.PlantType{fiber, grain, cannabinoid} {
		if err := st.CreatePlantType(pt); err != nil {
			return fmt.Errorf("seed plant type %q: %w", pt.Name, err)
		}
	}

	parts := map[string]*entities.PlantPart{}
	for _, def := range []struct{ name, desc string }{
		{"Stalk", "The main stem of the hemp plant, consisting of bast fiber and hurd"},
		{"Leaves", "Fan and sugar leaves from the hemp plant"},
		{"Seeds", "Whole and dehulled seeds from the hemp plant"},
		{"Flowers", "Male and female flowers from the hemp plant"},
		{"Roots", "Taproot and fibrous roots of the hemp plant"},
	} {
		pp := &entities.PlantPart{Name: def.name, Description: def.desc, PlantTypeID: fiber.ID}
		if err := st.CreatePlantPart(pp); err != nil {
			return fmt.Errorf("seed plant part %q: %w", def.name, err)
		}
		parts[def.name] = pp
	}

	industries := map[string]*entities.Industry{}
	for _, def := range []struct{ name, desc, icon string }{
		{"Textiles", "Fabric and textile-related applications of hemp", "Shirt"},
		{"Construction", "Building materials and construction applications of hemp", "Building2"},
		{"Paper", "Paper and pulp products made from hemp", "FileText"},
		{"Automotive", "Hemp applications in the automotive industry", "Car"},
		{"Animal Care", "Hemp products for animal care and welfare", "Paw"},
	} {
		in := &entities.Industry{Name: def.name, Description: def.desc, IconName: def.icon}
		if err := st.CreateIndustry(in); err != nil {
			return fmt.Errorf("seed industry %q: %w", def.name, err)
		}
		industries[def.name] = in
	}

	subs := map[string]*entities.SubIndustry{}
	for _, def := range []struct{ name, desc, industry string }{
		{"Clothing & Apparel", "Hemp-based clothing and wearable items", "Textiles"},
		{"Hempcrete", "Hemp-based building material", "Construction"},
		{"Specialty Paper", "High-quality hemp paper products", "Paper"},
		{"Biocomposites", "Hemp-based composite materials for automotive parts", "Automotive"},
		{"Animal Bedding", "Hemp bedding for animals", "Animal Care"},
	} {
		si := &entities.SubIndustry{Name: def.name, Description: def.desc, IndustryID: industries[def.industry].ID}
		if err := st.CreateSubIndustry(si); err != nil {
			return fmt.Errorf("seed sub-industry %q: %w", def.name, err)
		}
		subs[def.name] = si
	}

	var products []entities.HempProduct
	if rows == nil {
		products = builtinProducts(parts, industries, subs)
	} else {
		products, err = resolveRows(rows, parts, industries, subs)
		if err != nil {
			return err
		}
	}
	for i := range products {
		if err := st.CreateProduct(&products[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Name, err)
		}
	}
	log.Printf("[seed] done: %d products", len(products))
	return nil
}

func builtinProducts(parts map[string]*entities.PlantPart, industries map[string]*entities.Industry, subs map[string]*entities.SubIndustry) []entities.HempProduct {
	stalk := parts["Stalk"].ID
	sub := func(name string) *uint { id := subs[name].ID; return &id }
	return []entities.HempProduct{
		{
			Name:          "Hemp Clothing & Apparel",
			Description:   "Hemp fiber can be processed into a versatile textile similar to linen that is durable, breathable, and antimicrobial. The material becomes softer with each wash while maintaining its strength.",
			PlantPartID:   stalk,
			IndustryID:    industries["Textiles"].ID,
			SubIndustryID: sub("Clothing & Apparel"),
			Properties:    []string{"Durable", "Breathable", "UV resistant", "Antimicrobial"},
			Facts: []string{
				"Hemp fiber is 3-8 times stronger than cotton",
				"Naturally UV resistant",
				"Highly breathable",
			},
			SustainabilityImpact: "Hemp requires roughly half the water cotton does, minimal pesticides, and produces 250% more fiber per acre.",
			AffiliateLinks: []entities.AffiliateLink{
				{Name: "EcoHemp", URL: "https://example.com/ecohemp"},
				{Name: "Hemp Traders", URL: "https://example.com/hemptraders"},
			},
			RelatedProductIDs: []uint{2, 3, 4},
		},
		{
			Name:          "Hempcrete",
			Description:   "Hempcrete is a biocomposite building material made from hemp hurd mixed with lime and water. It creates a lightweight, insulating material with excellent thermal mass and carbon-negative properties.",
			PlantPartID:   stalk,
			IndustryID:    industries["Construction"].ID,
			SubIndustryID: sub("Hempcrete"),
			Properties:    []string{"Insulating", "Fire-resistant", "Carbon-negative", "Moisture-regulating"},
			Facts: []string{
				"One cubic meter of hempcrete stores about 110 kg of CO2",
				"Naturally resists mold and pests",
			},
			SustainabilityImpact: "Hempcrete sequesters carbon throughout its lifecycle and cuts energy costs through its thermal properties.",
			AffiliateLinks: []entities.AffiliateLink{
				{Name: "Hemp Technologies", URL: "https://example.com/hemptech"},
			},
			RelatedProductIDs: []uint{3, 5},
		},
		{
			Name:          "Specialty Paper",
			Description:   "Hemp pulp creates high-quality paper that is stronger, more durable, and more sustainable than wood pulp. Commonly used for art papers, filters, and banknotes.",
			PlantPartID:   stalk,
			IndustryID:    industries["Paper"].ID,
			SubIndustryID: sub("Specialty Paper"),
			Properties:    []string{"Acid-free", "Long-lasting", "Recyclable"},
			Facts: []string{
				"One acre of hemp produces as much paper as 4-10 acres of trees",
				"Hemp paper can be recycled up to 8 times",
				"Hemp paper doesn't yellow with age",
			},
			SustainabilityImpact: "Hemp matures in 3-4 months versus decades for trees and needs no toxic bleaching.",
			AffiliateLinks: []entities.AffiliateLink{
				{Name: "Tree Free Hemp", URL: "https://example.com/treefree"},
			},
			RelatedProductIDs: []uint{1, 4},
		},
		{
			Name:          "Automotive Biocomposites",
			Description:   "Hemp fibers are used in biocomposite materials for automotive interior components, replacing fiberglass in door panels and dashboards while reducing weight.",
			PlantPartID:   stalk,
			IndustryID:    industries["Automotive"].ID,
			SubIndustryID: sub("Biocomposites"),
			Properties:    []string{"Lightweight", "Impact-resistant", "Biodegradable"},
			Facts: []string{
				"Hemp composites can be 30% lighter than fiberglass",
				"Several major automakers now use hemp composites",
			},
			SustainabilityImpact: "Lighter vehicles burn less fuel, and the material biodegrades at end of life instead of going to landfill.",
			AffiliateLinks: []entities.AffiliateLink{
				{Name: "FlexForm Technologies", URL: "https://example.com/flexform"},
			},
			RelatedProductIDs: []uint{1, 5},
		},
		{
			Name:          "Animal Bedding",
			Description:   "Hemp hurd makes excellent animal bedding due to its high absorbency, dust-free nature, and natural antimicrobial properties.",
			PlantPartID:   stalk,
			IndustryID:    industries["Animal Care"].ID,
			SubIndustryID: sub("Animal Bedding"),
			Properties:    []string{"Super-absorbent", "Low-dust", "Odor-control", "Compostable"},
			Facts: []string{
				"Hemp bedding absorbs up to 4x its weight in moisture",
				"Virtually dust-free, reducing respiratory issues",
			},
			SustainabilityImpact: "A renewable alternative to wood shavings or straw; fully compostable after use.",
			AffiliateLinks: []entities.AffiliateLink{
				{Name: "HempFlax Bedding", URL: "https://example.com/hempflax"},
			},
			RelatedProductIDs: []uint{2},
		},
	}
}
