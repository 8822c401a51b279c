package repositoryImp

import (
	"gorm.io/gorm"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

func (s *Store) AllProducts() ([]entities.HempProduct, error) {
	out := []entities.HempProduct{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) ProductByID(id uint) (*entities.HempProduct, error) {
	return firstOrNil[entities.HempProduct](s.db.Where("id = ?", id))
}

// productFilter applies the optional conjunctive filter; zero means no
// predicate on that column.
func (s *Store) productFilter(plantPartID, industryID, subIndustryID uint) *gorm.DB {
	q := s.db.Model(&entities.HempProduct{})
	if plantPartID != 0 {
		q = q.Where("plant_part_id = ?", plantPartID)
	}
	if industryID != 0 {
		q = q.Where("industry_id = ?", industryID)
	}
	if subIndustryID != 0 {
		q = q.Where("sub_industry_id = ?", subIndustryID)
	}
	return q
}

func (s *Store) ProductsByPart(plantPartID uint) ([]entities.HempProduct, error) {
	out := []entities.HempProduct{}
	return out, s.productFilter(plantPartID, 0, 0).Order("id ASC").Find(&out).Error
}

func (s *Store) ProductsByIndustry(industryID uint) ([]entities.HempProduct, error) {
	out := []entities.HempProduct{}
	return out, s.productFilter(0, industryID, 0).Order("id ASC").Find(&out).Error
}

func (s *Store) ProductsBySubIndustry(subIndustryID uint) ([]entities.HempProduct, error) {
	out := []entities.HempProduct{}
	return out, s.productFilter(0, 0, subIndustryID).Order("id ASC").Find(&out).Error
}

func (s *Store) ProductsByPartAndIndustry(plantPartID, industryID uint) ([]entities.HempProduct, error) {
	out := []entities.HempProduct{}
	return out, s.productFilter(plantPartID, industryID, 0).Order("id ASC").Find(&out).Error
}

func (s *Store) SearchProducts(query string) ([]entities.HempProduct, error) {
	q, ok := repository.NormalizeQuery(query)
	if !ok {
		return []entities.HempProduct{}, nil
	}
	pattern := likePattern(q)
	out := []entities.HempProduct{}
	err := s.db.
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").Find(&out).Error
	return out, err
}

func (s *Store) PaginateProducts(page, limit int, plantPartID, industryID, subIndustryID uint) (*repository.ProductPage, error) {
	var total int64
	if err := s.productFilter(plantPartID, industryID, subIndustryID).Count(&total).Error; err != nil {
		return nil, err
	}
	out := []entities.HempProduct{}
	err := s.productFilter(plantPartID, industryID, subIndustryID).
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return &repository.ProductPage{Products: out, Total: total}, nil
}

func (s *Store) CountProducts() (int64, error) {
	var n int64
	return n, s.db.Model(&entities.HempProduct{}).Count(&n).Error
}

func (s *Store) CreateProduct(p *entities.HempProduct) error {
	if err := entities.Validate(p); err != nil {
		return err
	}
	if p.SubIndustryID != nil {
		si, err := s.SubIndustryByID(*p.SubIndustryID)
		if err != nil {
			return err
		}
		if si == nil {
			return entities.NewValidationError("subIndustryId", "does not exist")
		}
		if si.IndustryID != p.IndustryID {
			return entities.NewValidationError("subIndustryId", "does not belong to industryId")
		}
	}
	return s.db.Create(p).Error
}
