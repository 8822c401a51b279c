package seed_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hempdb/pkg/catalog/memoryImp"
	"hempdb/pkg/seed"
)

func TestRunSeedsOnce(t *testing.T) {
	st := memoryImp.New()
	require.NoError(t, seed.Run(st, nil))

	types, err := st.AllPlantTypes()
	require.NoError(t, err)
	assert.Len(t, types, 3)

	parts, err := st.AllPlantParts()
	require.NoError(t, err)
	assert.Len(t, parts, 5)

	industries, err := st.AllIndustries()
	require.NoError(t, err)
	assert.Len(t, industries, 5)

	subs, err := st.AllSubIndustries()
	require.NoError(t, err)
	assert.Len(t, subs, 5)

	n, err := st.CountProducts()
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	// second run is a no-op
	require.NoError(t, seed.Run(st, nil))
	n2, err := st.CountProducts()
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	types2, err := st.AllPlantTypes()
	require.NoError(t, err)
	assert.Len(t, types2, 3)
}

func TestSeededProductsAreLinked(t *testing.T) {
	st := memoryImp.New()
	require.NoError(t, seed.Run(st, nil))

	products, err := st.AllProducts()
	require.NoError(t, err)
	for _, p := range products {
		part, err := st.PlantPartByID(p.PlantPartID)
		require.NoError(t, err)
		assert.NotNil(t, part, "product %q references missing part", p.Name)
		industry, err := st.IndustryByID(p.IndustryID)
		require.NoError(t, err)
		require.NotNil(t, industry, "product %q references missing industry", p.Name)
		if p.SubIndustryID != nil {
			sub, err := st.SubIndustryByID(*p.SubIndustryID)
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, industry.ID, sub.IndustryID)
		}
	}
}

func writeWorkbook(t *testing.T, headers []string, rows [][]string) string {
	t.Helper()
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, x.SetCellValue(sheet, cell, h))
	}
	for r, rec := range rows {
		for i, v := range rec {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			require.NoError(t, err)
			require.NoError(t, x.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, x.SaveAs(path))
	return path
}

func TestLoadProductsXLSX(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Name", "Description", "Plant Part", "Industry", "Sub-Industry", "Properties", "Facts"},
		[][]string{
			{"Hemp Twine", "Fine cordage", "Stalk", "Textiles", "Clothing & Apparel", "Strong|Thin", "Biodegradable"},
			{"", "skipped blank row", "Stalk", "Textiles", "", "", ""},
			{"Hemp Panels", "Pressed boards", "Stalk", "Construction", "", "", ""},
		})

	rows, err := seed.LoadProductsXLSX(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hemp Twine", rows[0].Name)
	assert.Equal(t, []string{"Strong", "Thin"}, rows[0].Properties)
	assert.Equal(t, "Clothing & Apparel", rows[0].SubIndustry)
	assert.Equal(t, "Hemp Panels", rows[1].Name)
	assert.Nil(t, rows[1].Properties)
}

func TestLoadProductsXLSXMissingColumns(t *testing.T) {
	path := writeWorkbook(t, []string{"Name", "Description"}, nil)
	_, err := seed.LoadProductsXLSX(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestRunWithSpreadsheetRows(t *testing.T) {
	rows := []seed.ProductRow{
		{Name: "Hemp Twine", Description: "Fine cordage", PlantPart: "Stalk", Industry: "Textiles", SubIndustry: "Clothing & Apparel"},
	}
	st := memoryImp.New()
	require.NoError(t, seed.Run(st, rows))

	products, err := st.AllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Hemp Twine", products[0].Name)
	require.NotNil(t, products[0].SubIndustryID)

	// reference data still seeded around the custom product set
	industries, err := st.AllIndustries()
	require.NoError(t, err)
	assert.Len(t, industries, 5)
}

func TestRunRejectsUnknownReference(t *testing.T) {
	rows := []seed.ProductRow{
		{Name: "Mystery", Description: "x", PlantPart: "Stalk", Industry: "Aerospace"},
	}
	st := memoryImp.New()
	err := seed.Run(st, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown industry")
}
