// Package storagetest holds the behavioral contract every Storage
// implementation must satisfy. Both the in-memory store and the gorm store
// run the same suite, so the two back ends cannot drift apart.
package storagetest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

// Factory returns a fresh, empty Storage for each subtest.
type Factory func(t *testing.T) repository.Storage

// Refs is the reference data fixture the suite seeds before product tests.
type Refs struct {
	Fiber    entities.PlantType
	Stalk    entities.PlantPart
	Seeds    entities.PlantPart
	Textiles entities.Industry
	Paper    entities.Industry
	Clothing entities.SubIndustry
}

func seedRefs(t *testing.T, st repository.Storage) Refs {
	t.Helper()
	var r Refs

	r.Fiber = entities.PlantType{Name: "Fiber Hemp", Description: "fiber cultivar"}
	require.NoError(t, st.CreatePlantType(&r.Fiber))

	r.Stalk = entities.PlantPart{Name: "Stalk", Description: "main stem", PlantTypeID: r.Fiber.ID}
	require.NoError(t, st.CreatePlantPart(&r.Stalk))
	r.Seeds = entities.PlantPart{Name: "Seeds", Description: "whole seeds", PlantTypeID: r.Fiber.ID}
	require.NoError(t, st.CreatePlantPart(&r.Seeds))

	r.Textiles = entities.Industry{Name: "Textiles", Description: "fabric uses"}
	require.NoError(t, st.CreateIndustry(&r.Textiles))
	r.Paper = entities.Industry{Name: "Paper", Description: "pulp uses"}
	require.NoError(t, st.CreateIndustry(&r.Paper))

	r.Clothing = entities.SubIndustry{Name: "Clothing", Description: "apparel", IndustryID: r.Textiles.ID}
	require.NoError(t, st.CreateSubIndustry(&r.Clothing))
	return r
}

func product(name string, r Refs, part, industry uint) *entities.HempProduct {
	return &entities.HempProduct{
		Name:        name,
		Description: name + " description",
		PlantPartID: part,
		IndustryID:  industry,
	}
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var ve *entities.ValidationError
	require.True(t, errors.As(err, &ve), "expected *entities.ValidationError, got %v", err)
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

// Run exercises the full Storage contract against stores built by f.
func Run(t *testing.T, f Factory) {
	t.Run("AbsentLookupsReturnNilNil", func(t *testing.T) {
		st := f(t)
		for name, fn := range map[string]func() (any, error){
			"plant type":     func() (any, error) { return st.PlantTypeByID(99) },
			"plant part":     func() (any, error) { return st.PlantPartByID(99) },
			"industry":       func() (any, error) { return st.IndustryByID(99) },
			"sub-industry":   func() (any, error) { return st.SubIndustryByID(99) },
			"product":        func() (any, error) { return st.ProductByID(99) },
			"research paper": func() (any, error) { return st.ResearchPaperByID(99) },
			"user":           func() (any, error) { return st.UserByID(99) },
		} {
			got, err := fn()
			require.NoError(t, err, name)
			assert.Nil(t, got, name)
		}
	})

	t.Run("EmptyListingsAreEmptyNotNil", func(t *testing.T) {
		st := f(t)
		types, err := st.AllPlantTypes()
		require.NoError(t, err)
		assert.NotNil(t, types)
		assert.Empty(t, types)
		products, err := st.AllProducts()
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("CreateAssignsIDAndRoundTrips", func(t *testing.T) {
		st := f(t)
		pt := entities.PlantType{Name: "Grain Hemp", Description: "seed cultivar", PlantingDensity: "moderate"}
		require.NoError(t, st.CreatePlantType(&pt))
		require.NotZero(t, pt.ID)
		assert.False(t, pt.CreatedAt.IsZero())

		got, err := st.PlantTypeByID(pt.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, pt.Name, got.Name)
		assert.Equal(t, pt.PlantingDensity, got.PlantingDensity)

		n, err := st.CountPlantTypes()
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("ValidationListsEveryMissingField", func(t *testing.T) {
		st := f(t)
		err := st.CreateProduct(&entities.HempProduct{})
		fields := validationFields(t, err)
		assert.ElementsMatch(t, []string{"name", "description", "plantPartId", "industryId"}, fields)

		err = st.CreatePlantPart(&entities.PlantPart{Name: "Stalk"})
		fields = validationFields(t, err)
		assert.ElementsMatch(t, []string{"description", "plantTypeId"}, fields)
	})

	t.Run("DuplicateIndustryNameRejected", func(t *testing.T) {
		st := f(t)
		require.NoError(t, st.CreateIndustry(&entities.Industry{Name: "Textiles"}))
		err := st.CreateIndustry(&entities.Industry{Name: "Textiles"})
		fields := validationFields(t, err)
		assert.Equal(t, []string{"name"}, fields)
	})

	t.Run("SubIndustryMustMatchProductIndustry", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)

		// sub-industry belongs to Textiles, product claims Paper
		p := product("Mismatch", r, r.Stalk.ID, r.Paper.ID)
		p.SubIndustryID = &r.Clothing.ID
		fields := validationFields(t, st.CreateProduct(p))
		assert.Equal(t, []string{"subIndustryId"}, fields)

		// unknown sub-industry id
		bogus := uint(4040)
		p2 := product("Unknown sub", r, r.Stalk.ID, r.Textiles.ID)
		p2.SubIndustryID = &bogus
		fields = validationFields(t, st.CreateProduct(p2))
		assert.Equal(t, []string{"subIndustryId"}, fields)

		// matching pair is accepted
		p3 := product("Match", r, r.Stalk.ID, r.Textiles.ID)
		p3.SubIndustryID = &r.Clothing.ID
		require.NoError(t, st.CreateProduct(p3))
	})

	t.Run("DanglingRelatedIDsAreKept", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		p := product("Rope", r, r.Stalk.ID, r.Textiles.ID)
		p.RelatedProductIDs = []uint{7, 8, 9}
		require.NoError(t, st.CreateProduct(p))

		got, err := st.ProductByID(p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []uint{7, 8, 9}, got.RelatedProductIDs)
	})

	t.Run("ProductFiltersAreConjunctive", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		require.NoError(t, st.CreateProduct(product("A", r, r.Stalk.ID, r.Textiles.ID)))
		require.NoError(t, st.CreateProduct(product("B", r, r.Stalk.ID, r.Paper.ID)))
		require.NoError(t, st.CreateProduct(product("C", r, r.Seeds.ID, r.Textiles.ID)))

		byPart, err := st.ProductsByPart(r.Stalk.ID)
		require.NoError(t, err)
		assert.Len(t, byPart, 2)

		byIndustry, err := st.ProductsByIndustry(r.Textiles.ID)
		require.NoError(t, err)
		assert.Len(t, byIndustry, 2)

		both, err := st.ProductsByPartAndIndustry(r.Stalk.ID, r.Textiles.ID)
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "A", both[0].Name)

		none, err := st.ProductsByPart(9999)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("ProductsBySubIndustry", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		p := product("Shirt", r, r.Stalk.ID, r.Textiles.ID)
		p.SubIndustryID = &r.Clothing.ID
		require.NoError(t, st.CreateProduct(p))
		require.NoError(t, st.CreateProduct(product("Plain", r, r.Stalk.ID, r.Textiles.ID)))

		got, err := st.ProductsBySubIndustry(r.Clothing.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Shirt", got[0].Name)
	})

	t.Run("ListingsOrderByAscendingID", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		for _, name := range []string{"Zeta", "Alpha", "Mid"} {
			require.NoError(t, st.CreateProduct(product(name, r, r.Stalk.ID, r.Textiles.ID)))
		}
		all, err := st.AllProducts()
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}
	})

	t.Run("SearchIsCaseInsensitiveSubstring", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		p := product("Hempcrete Block", r, r.Stalk.ID, r.Textiles.ID)
		p.Description = "a biocomposite building material"
		require.NoError(t, st.CreateProduct(p))
		require.NoError(t, st.CreateProduct(product("Paper Sheet", r, r.Stalk.ID, r.Paper.ID)))

		byName, err := st.SearchProducts("HEMPCRETE")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Hempcrete Block", byName[0].Name)

		byDesc, err := st.SearchProducts("biocomposite")
		require.NoError(t, err)
		assert.Len(t, byDesc, 1)

		miss, err := st.SearchProducts("granite")
		require.NoError(t, err)
		assert.Empty(t, miss)
	})

	t.Run("SearchTreatsWildcardsAsLiterals", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		lit := product("Grade a_c fiber", r, r.Stalk.ID, r.Textiles.ID)
		require.NoError(t, st.CreateProduct(lit))
		require.NoError(t, st.CreateProduct(product("Grade abc fiber", r, r.Stalk.ID, r.Textiles.ID)))
		pct := product("Blend", r, r.Stalk.ID, r.Textiles.ID)
		pct.Description = "contains 100% hemp"
		require.NoError(t, st.CreateProduct(pct))

		// "_" must not act as a single-character wildcard
		got, err := st.SearchProducts("a_c")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Grade a_c fiber", got[0].Name)

		// "%" must not act as a multi-character wildcard
		got, err = st.SearchProducts("100%")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Blend", got[0].Name)

		got, err = st.SearchProducts(`0% h`)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("ShortQueriesYieldEmptyNotError", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		require.NoError(t, st.CreateProduct(product("ab", r, r.Stalk.ID, r.Textiles.ID)))

		for _, q := range []string{"", "a", "ab", "  ab  "} {
			got, err := st.SearchProducts(q)
			require.NoError(t, err, "query %q", q)
			assert.NotNil(t, got, "query %q", q)
			assert.Empty(t, got, "query %q", q)
		}
	})

	t.Run("PaginationInvariants", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		for i := 0; i < 12; i++ {
			require.NoError(t, st.CreateProduct(product(fmt.Sprintf("P%02d", i), r, r.Stalk.ID, r.Textiles.ID)))
		}

		pg, err := st.PaginateProducts(1, 5, 0, 0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 12, pg.Total)
		assert.Len(t, pg.Products, 5)
		assert.Equal(t, "P00", pg.Products[0].Name)

		pg3, err := st.PaginateProducts(3, 5, 0, 0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 12, pg3.Total)
		assert.Len(t, pg3.Products, 2)

		// out-of-range page: empty slice, total intact
		pg9, err := st.PaginateProducts(9, 5, 0, 0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 12, pg9.Total)
		assert.NotNil(t, pg9.Products)
		assert.Empty(t, pg9.Products)
	})

	t.Run("PaginationRespectsFilters", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		for i := 0; i < 4; i++ {
			require.NoError(t, st.CreateProduct(product(fmt.Sprintf("T%d", i), r, r.Stalk.ID, r.Textiles.ID)))
		}
		require.NoError(t, st.CreateProduct(product("Other", r, r.Seeds.ID, r.Paper.ID)))

		pg, err := st.PaginateProducts(1, 3, r.Stalk.ID, r.Textiles.ID, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 4, pg.Total)
		assert.Len(t, pg.Products, 3)
		for _, p := range pg.Products {
			assert.Equal(t, r.Stalk.ID, p.PlantPartID)
			assert.Equal(t, r.Textiles.ID, p.IndustryID)
		}
	})

	t.Run("PaginationFiltersBySubIndustry", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		for i := 0; i < 3; i++ {
			p := product(fmt.Sprintf("S%d", i), r, r.Stalk.ID, r.Textiles.ID)
			p.SubIndustryID = &r.Clothing.ID
			require.NoError(t, st.CreateProduct(p))
		}
		require.NoError(t, st.CreateProduct(product("NoSub", r, r.Stalk.ID, r.Textiles.ID)))

		pg, err := st.PaginateProducts(1, 2, 0, 0, r.Clothing.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 3, pg.Total)
		require.Len(t, pg.Products, 2)
		for _, p := range pg.Products {
			require.NotNil(t, p.SubIndustryID)
			assert.Equal(t, r.Clothing.ID, *p.SubIndustryID)
		}
	})

	t.Run("PlantPartsByType", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		other := entities.PlantType{Name: "Cannabinoid Hemp", Description: "flower cultivar"}
		require.NoError(t, st.CreatePlantType(&other))
		require.NoError(t, st.CreatePlantPart(&entities.PlantPart{Name: "Flowers", Description: "buds", PlantTypeID: other.ID}))

		got, err := st.PlantPartsByType(r.Fiber.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("SubIndustriesByIndustry", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)
		require.NoError(t, st.CreateSubIndustry(&entities.SubIndustry{Name: "Rope", IndustryID: r.Textiles.ID}))
		require.NoError(t, st.CreateSubIndustry(&entities.SubIndustry{Name: "Cardstock", IndustryID: r.Paper.ID}))

		got, err := st.SubIndustriesByIndustry(r.Textiles.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2) // Clothing + Rope
	})

	t.Run("ResearchPapers", func(t *testing.T) {
		st := f(t)
		r := seedRefs(t, st)

		err := st.CreateResearchPaper(&entities.ResearchPaper{Title: "No authors"})
		fields := validationFields(t, err)
		assert.ElementsMatch(t, []string{"authors", "abstract"}, fields)

		rp := entities.ResearchPaper{
			Title:       "Tensile strength of hemp fiber",
			Authors:     "Doe, J.",
			Abstract:    "Measurements of bast fiber tensile strength.",
			PlantTypeID: &r.Fiber.ID,
			PlantPartID: &r.Stalk.ID,
			IndustryID:  &r.Textiles.ID,
			Keywords:    []string{"fiber", "tensile"},
		}
		require.NoError(t, st.CreateResearchPaper(&rp))
		require.NotZero(t, rp.ID)

		other := entities.ResearchPaper{Title: "Hemp paper aging", Authors: "Roe, R.", Abstract: "Acid-free longevity study."}
		require.NoError(t, st.CreateResearchPaper(&other))

		byType, err := st.ResearchPapersByPlantType(r.Fiber.ID)
		require.NoError(t, err)
		assert.Len(t, byType, 1)
		byPart, err := st.ResearchPapersByPlantPart(r.Stalk.ID)
		require.NoError(t, err)
		assert.Len(t, byPart, 1)
		byInd, err := st.ResearchPapersByIndustry(r.Textiles.ID)
		require.NoError(t, err)
		assert.Len(t, byInd, 1)

		found, err := st.SearchResearchPapers("tensile")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, rp.Title, found[0].Title)

		short, err := st.SearchResearchPapers("te")
		require.NoError(t, err)
		assert.Empty(t, short)
	})

	t.Run("Users", func(t *testing.T) {
		st := f(t)
		u := entities.User{Username: "editor", Password: "s3cret"}
		require.NoError(t, st.CreateUser(&u))

		got, err := st.UserByUsername("editor")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)

		dup := entities.User{Username: "editor", Password: "other"}
		fields := validationFields(t, st.CreateUser(&dup))
		assert.Equal(t, []string{"username"}, fields)
	})
}
