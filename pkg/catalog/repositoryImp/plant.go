package repositoryImp

import "hempdb/entities"

func (s *Store) AllPlantTypes() ([]entities.PlantType, error) {
	out := []entities.PlantType{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) PlantTypeByID(id uint) (*entities.PlantType, error) {
	return firstOrNil[entities.PlantType](s.db.Where("id = ?", id))
}

func (s *Store) CreatePlantType(pt *entities.PlantType) error {
	if err := entities.Validate(pt); err != nil {
		return err
	}
	return s.db.Create(pt).Error
}

func (s *Store) CountPlantTypes() (int64, error) {
	var n int64
	return n, s.db.Model(&entities.PlantType{}).Count(&n).Error
}

func (s *Store) AllPlantParts() ([]entities.PlantPart, error) {
	out := []entities.PlantPart{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) PlantPartsByType(plantTypeID uint) ([]entities.PlantPart, error) {
	out := []entities.PlantPart{}
	return out, s.db.Where("plant_type_id = ?", plantTypeID).Order("id ASC").Find(&out).Error
}

func (s *Store) PlantPartByID(id uint) (*entities.PlantPart, error) {
	return firstOrNil[entities.PlantPart](s.db.Where("id = ?", id))
}

func (s *Store) CreatePlantPart(pp *entities.PlantPart) error {
	if err := entities.Validate(pp); err != nil {
		return err
	}
	return s.db.Create(pp).Error
}
