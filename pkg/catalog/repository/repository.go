package repository

import (
	"strings"
	"unicode/utf8"

	"hempdb/entities"
)

// ProductPage is one page of a filtered product listing. Total counts every
// matching row regardless of slicing.
type ProductPage struct {
	Products []entities.HempProduct
	Total    int64
}

// Storage is the data-access façade. Two implementations exist: in-memory
// maps (memoryImp) and gorm over Postgres/SQLite (repositoryImp). Lookups by
// id return (nil, nil) when the row does not exist; only infrastructure
// failures are errors. Creates validate first and return
// *entities.ValidationError with every failing field.
type Storage interface {
	// plant types
	AllPlantTypes() ([]entities.PlantType, error)
	PlantTypeByID(id uint) (*entities.PlantType, error)
	CreatePlantType(pt *entities.PlantType) error
	CountPlantTypes() (int64, error)

	// plant parts
	AllPlantParts() ([]entities.PlantPart, error)
	PlantPartsByType(plantTypeID uint) ([]entities.PlantPart, error)
	PlantPartByID(id uint) (*entities.PlantPart, error)
	CreatePlantPart(pp *entities.PlantPart) error

	// industries
	AllIndustries() ([]entities.Industry, error)
	IndustryByID(id uint) (*entities.Industry, error)
	CreateIndustry(in *entities.Industry) error

	// sub-industries
	AllSubIndustries() ([]entities.SubIndustry, error)
	SubIndustriesByIndustry(industryID uint) ([]entities.SubIndustry, error)
	SubIndustryByID(id uint) (*entities.SubIndustry, error)
	CreateSubIndustry(si *entities.SubIndustry) error

	// hemp products; a zero id argument means "no filter on that column"
	AllProducts() ([]entities.HempProduct, error)
	ProductByID(id uint) (*entities.HempProduct, error)
	ProductsByPart(plantPartID uint) ([]entities.HempProduct, error)
	ProductsByIndustry(industryID uint) ([]entities.HempProduct, error)
	ProductsBySubIndustry(subIndustryID uint) ([]entities.HempProduct, error)
	ProductsByPartAndIndustry(plantPartID, industryID uint) ([]entities.HempProduct, error)
	SearchProducts(query string) ([]entities.HempProduct, error)
	PaginateProducts(page, limit int, plantPartID, industryID, subIndustryID uint) (*ProductPage, error)
	CountProducts() (int64, error)
	CreateProduct(p *entities.HempProduct) error

	// research papers
	AllResearchPapers() ([]entities.ResearchPaper, error)
	ResearchPaperByID(id uint) (*entities.ResearchPaper, error)
	ResearchPapersByPlantType(plantTypeID uint) ([]entities.ResearchPaper, error)
	ResearchPapersByPlantPart(plantPartID uint) ([]entities.ResearchPaper, error)
	ResearchPapersByIndustry(industryID uint) ([]entities.ResearchPaper, error)
	SearchResearchPapers(query string) ([]entities.ResearchPaper, error)
	CreateResearchPaper(rp *entities.ResearchPaper) error

	// users (table reserved for future auth, no route serves it)
	UserByID(id uint) (*entities.User, error)
	UserByUsername(username string) (*entities.User, error)
	CreateUser(u *entities.User) error
}

// MinSearchLen is the shortest query the search operations accept; anything
// shorter yields an empty result at the engine boundary.
const MinSearchLen = 3

// NormalizeQuery trims and lowercases a search query. ok is false when the
// query is too short to run; both storages share this guard so the length
// policy lives in one place.
func NormalizeQuery(q string) (norm string, ok bool) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinSearchLen {
		return "", false
	}
	return strings.ToLower(q), true
}
