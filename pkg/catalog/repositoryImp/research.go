package repositoryImp

import (
	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

func (s *Store) AllResearchPapers() ([]entities.ResearchPaper, error) {
	out := []entities.ResearchPaper{}
	return out, s.db.Order("id ASC").Find(&out).Error
}

func (s *Store) ResearchPaperByID(id uint) (*entities.ResearchPaper, error) {
	return firstOrNil[entities.ResearchPaper](s.db.Where("id = ?", id))
}

func (s *Store) ResearchPapersByPlantType(plantTypeID uint) ([]entities.ResearchPaper, error) {
	out := []entities.ResearchPaper{}
	return out, s.db.Where("plant_type_id = ?", plantTypeID).Order("id ASC").Find(&out).Error
}

func (s *Store) ResearchPapersByPlantPart(plantPartID uint) ([]entities.ResearchPaper, error) {
	out := []entities.ResearchPaper{}
	return out, s.db.Where("plant_part_id = ?", plantPartID).Order("id ASC").Find(&out).Error
}

func (s *Store) ResearchPapersByIndustry(industryID uint) ([]entities.ResearchPaper, error) {
	out := []entities.ResearchPaper{}
	return out, s.db.Where("industry_id = ?", industryID).Order("id ASC").Find(&out).Error
}

func (s *Store) SearchResearchPapers(query string) ([]entities.ResearchPaper, error) {
	q, ok := repository.NormalizeQuery(query)
	if !ok {
		return []entities.ResearchPaper{}, nil
	}
	pattern := likePattern(q)
	out := []entities.ResearchPaper{}
	err := s.db.
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(authors) LIKE ? ESCAPE '\' OR LOWER(abstract) LIKE ? ESCAPE '\' OR LOWER(journal) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern).
		Order("id ASC").Find(&out).Error
	return out, err
}

func (s *Store) CreateResearchPaper(rp *entities.ResearchPaper) error {
	if err := entities.Validate(rp); err != nil {
		return err
	}
	return s.db.Create(rp).Error
}
