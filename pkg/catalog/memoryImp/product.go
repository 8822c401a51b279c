package memoryImp

import (
	"strings"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

func (s *Store) AllProducts() ([]entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.HempProduct, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return sortByID(out, func(p entities.HempProduct) uint { return p.ID }), nil
}

func (s *Store) ProductByID(id uint) (*entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// filtered returns products matching every non-zero filter, ordered by id.
// Unknown ids simply match nothing; filtered collections never error.
func (s *Store) filtered(plantPartID, industryID, subIndustryID uint) []entities.HempProduct {
	out := []entities.HempProduct{}
	for _, p := range s.products {
		if plantPartID != 0 && p.PlantPartID != plantPartID {
			continue
		}
		if industryID != 0 && p.IndustryID != industryID {
			continue
		}
		if subIndustryID != 0 && (p.SubIndustryID == nil || *p.SubIndustryID != subIndustryID) {
			continue
		}
		out = append(out, p)
	}
	return sortByID(out, func(p entities.HempProduct) uint { return p.ID })
}

func (s *Store) ProductsByPart(plantPartID uint) ([]entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(plantPartID, 0, 0), nil
}

func (s *Store) ProductsByIndustry(industryID uint) ([]entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(0, industryID, 0), nil
}

func (s *Store) ProductsBySubIndustry(subIndustryID uint) ([]entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(0, 0, subIndustryID), nil
}

func (s *Store) ProductsByPartAndIndustry(plantPartID, industryID uint) ([]entities.HempProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(plantPartID, industryID, 0), nil
}

func (s *Store) SearchProducts(query string) ([]entities.HempProduct, error) {
	q, ok := repository.NormalizeQuery(query)
	if !ok {
		return []entities.HempProduct{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.HempProduct{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return sortByID(out, func(p entities.HempProduct) uint { return p.ID }), nil
}

func (s *Store) PaginateProducts(page, limit int, plantPartID, industryID, subIndustryID uint) (*repository.ProductPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.filtered(plantPartID, industryID, subIndustryID)
	total := int64(len(all))
	if limit < 0 {
		limit = 0
	}
	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return &repository.ProductPage{Products: all[start:end], Total: total}, nil
}

func (s *Store) CountProducts() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

func (s *Store) CreateProduct(p *entities.HempProduct) error {
	if err := entities.Validate(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.SubIndustryID != nil {
		si, ok := s.subIndustries[*p.SubIndustryID]
		if !ok {
			return entities.NewValidationError("subIndustryId", "does not exist")
		}
		if si.IndustryID != p.IndustryID {
			return entities.NewValidationError("subIndustryId", "does not belong to industryId")
		}
	}
	p.ID = s.nextProduct
	s.nextProduct++
	p.CreatedAt = now()
	s.products[p.ID] = *p
	return nil
}
