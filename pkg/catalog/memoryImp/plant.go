package memoryImp

import "hempdb/entities"

func (s *Store) AllPlantTypes() ([]entities.PlantType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.PlantType, 0, len(s.plantTypes))
	for _, pt := range s.plantTypes {
		out = append(out, pt)
	}
	return sortByID(out, func(pt entities.PlantType) uint { return pt.ID }), nil
}

func (s *Store) PlantTypeByID(id uint) (*entities.PlantType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pt, ok := s.plantTypes[id]; ok {
		return &pt, nil
	}
	return nil, nil
}

func (s *Store) CreatePlantType(pt *entities.PlantType) error {
	if err := entities.Validate(pt); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pt.ID = s.nextPlantType
	s.nextPlantType++
	pt.CreatedAt = now()
	s.plantTypes[pt.ID] = *pt
	return nil
}

func (s *Store) CountPlantTypes() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.plantTypes)), nil
}

func (s *Store) AllPlantParts() ([]entities.PlantPart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.PlantPart, 0, len(s.plantParts))
	for _, pp := range s.plantParts {
		out = append(out, pp)
	}
	return sortByID(out, func(pp entities.PlantPart) uint { return pp.ID }), nil
}

func (s *Store) PlantPartsByType(plantTypeID uint) ([]entities.PlantPart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.PlantPart{}
	for _, pp := range s.plantParts {
		if pp.PlantTypeID == plantTypeID {
			out = append(out, pp)
		}
	}
	return sortByID(out, func(pp entities.PlantPart) uint { return pp.ID }), nil
}

func (s *Store) PlantPartByID(id uint) (*entities.PlantPart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pp, ok := s.plantParts[id]; ok {
		return &pp, nil
	}
	return nil, nil
}

func (s *Store) CreatePlantPart(pp *entities.PlantPart) error {
	if err := entities.Validate(pp); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pp.ID = s.nextPlantPart
	s.nextPlantPart++
	pp.CreatedAt = now()
	s.plantParts[pp.ID] = *pp
	return nil
}
