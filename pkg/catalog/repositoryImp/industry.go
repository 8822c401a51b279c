package repositoryImp

import "hempdb/entities"

func (s *Store) AllIndustries() ([]entities.Industry, error) {
	out := []entities.Industry{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) IndustryByID(id uint) (*entities.Industry, error) {
	return firstOrNil[entities.Industry](s.db.Where("id = ?", id))
}

func (s *Store) CreateIndustry(in *entities.Industry) error {
	if err := entities.Validate(in); err != nil {
		return err
	}
	// checked here as well as by the unique index so both storages report
	// the same field-level error instead of a driver-specific one
	existing, err := firstOrNil[entities.Industry](s.db.Where("name = ?", in.Name))
	if err != nil {
		return err
	}
	if existing != nil {
		return entities.NewValidationError("name", "already exists")
	}
	return s.db.Create(in).Error
}

func (s *Store) AllSubIndustries() ([]entities.SubIndustry, error) {
	out := []entities.SubIndustry{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) SubIndustriesByIndustry(industryID uint) ([]entities.SubIndustry, error) {
	out := []entities.SubIndustry{}
	return out, s.db.Where("industry_id = ?", industryID).Order("id ASC").Find(&out).Error
}

func (s *Store) SubIndustryByID(id uint) (*entities.SubIndustry, error) {
	return firstOrNil[entities.SubIndustry](s.db.Where("id = ?", id))
}

func (s *Store) CreateSubIndustry(si *entities.SubIndustry) error {
	if err := entities.Validate(si); err != nil {
		return err
	}
	return s.db.Create(si).Error
}
