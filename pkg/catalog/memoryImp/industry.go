package memoryImp

import "hempdb/entities"

func (s *Store) AllIndustries() ([]entities.Industry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Industry, 0, len(s.industries))
	for _, in := range s.industries {
		out = append(out, in)
	}
	return sortByID(out, func(in entities.Industry) uint { return in.ID }), nil
}

func (s *Store) IndustryByID(id uint) (*entities.Industry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if in, ok := s.industries[id]; ok {
		return &in, nil
	}
	return nil, nil
}

func (s *Store) CreateIndustry(in *entities.Industry) error {
	if err := entities.Validate(in); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.industries {
		if existing.Name == in.Name {
			return entities.NewValidationError("name", "already exists")
		}
	}
	in.ID = s.nextIndustry
	s.nextIndustry++
	in.CreatedAt = now()
	s.industries[in.ID] = *in
	return nil
}

func (s *Store) AllSubIndustries() ([]entities.SubIndustry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.SubIndustry, 0, len(s.subIndustries))
	for _, si := range s.subIndustries {
		out = append(out, si)
	}
	return sortByID(out, func(si entities.SubIndustry) uint { return si.ID }), nil
}

func (s *Store) SubIndustriesByIndustry(industryID uint) ([]entities.SubIndustry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entities.SubIndustry{}
	for _, si := range s.subIndustries {
		if si.IndustryID == industryID {
			out = append(out, si)
		}
	}
	return sortByID(out, func(si entities.SubIndustry) uint { return si.ID }), nil
}

func (s *Store) SubIndustryByID(id uint) (*entities.SubIndustry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if si, ok := s.subIndustries[id]; ok {
		return &si, nil
	}
	return nil, nil
}

func (s *Store) CreateSubIndustry(si *entities.SubIndustry) error {
	if err := entities.Validate(si); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	si.ID = s.nextSubIndustry
	s.nextSubIndustry++
	si.CreatedAt = now()
	s.subIndustries[si.ID] = *si
	return nil
}
