package memoryImp

import (
	"strings"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

func (s *Store) AllResearchPapers() ([]entities.ResearchPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ResearchPaper, 0, len(s.papers))
	for _, rp := range s.papers {
		out = append(out, rp)
	}
	return sortByID(out, func(rp entities.ResearchPaper) uint { return rp.ID }), nil
}

func (s *Store) ResearchPaperByID(id uint) (*entities.ResearchPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rp, ok := s.papers[id]; ok {
		return &rp, nil
	}
	return nil, nil
}

func (s *Store) papersWhere(match func(entities.ResearchPaper) bool) []entities.ResearchPaper {
	out := []entities.ResearchPaper{}
	for _, rp := range s.papers {
		if match(rp) {
			out = append(out, rp)
		}
	}
	return sortByID(out, func(rp entities.ResearchPaper) uint { return rp.ID })
}

func (s *Store) ResearchPapersByPlantType(plantTypeID uint) ([]entities.ResearchPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.papersWhere(func(rp entities.ResearchPaper) bool {
		return rp.PlantTypeID != nil && *rp.PlantTypeID == plantTypeID
	}), nil
}

func (s *Store) ResearchPapersByPlantPart(plantPartID uint) ([]entities.ResearchPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.papersWhere(func(rp entities.ResearchPaper) bool {
		return rp.PlantPartID != nil && *rp.PlantPartID == plantPartID
	}), nil
}

func (s *Store) ResearchPapersByIndustry(industryID uint) ([]entities.ResearchPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.papersWhere(func(rp entities.ResearchPaper) bool {
		return rp.IndustryID != nil && *rp.IndustryID == industryID
	}), nil
}

func (s *Store) SearchResearchPapers(query string) ([]entities.ResearchPaper, error) {
	q, ok := repository.NormalizeQuery(query)
	if !ok {
		return []entities.ResearchPaper{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.papersWhere(func(rp entities.ResearchPaper) bool {
		for _, field := range []string{rp.Title, rp.Authors, rp.Abstract, rp.Journal} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}), nil
}

func (s *Store) CreateResearchPaper(rp *entities.ResearchPaper) error {
	if err := entities.Validate(rp); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rp.ID = s.nextPaper
	s.nextPaper++
	rp.CreatedAt = now()
	rp.UpdatedAt = rp.CreatedAt
	s.papers[rp.ID] = *rp
	return nil
}
