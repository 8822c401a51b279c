package memoryImp

import (
	"sort"
	"sync"
	"time"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

// Store keeps every collection in a map with an incrementing id counter.
// It is constructed explicitly and passed to whoever needs it; there is no
// package-level instance.
type Store struct {
	mu sync.RWMutex

	plantTypes    map[uint]entities.PlantType
	plantParts    map[uint]entities.PlantPart
	industries    map[uint]entities.Industry
	subIndustries map[uint]entities.SubIndustry
	products      map[uint]entities.HempProduct
	papers        map[uint]entities.ResearchPaper
	users         map[uint]entities.User

	nextPlantType   uint
	nextPlantPart   uint
	nextIndustry    uint
	nextSubIndustry uint
	nextProduct     uint
	nextPaper       uint
	nextUser        uint
}

func New() *Store {
	return &Store{
		plantTypes:    map[uint]entities.PlantType{},
		plantParts:    map[uint]entities.PlantPart{},
		industries:    map[uint]entities.Industry{},
		subIndustries: map[uint]entities.SubIndustry{},
		products:      map[uint]entities.HempProduct{},
		papers:        map[uint]entities.ResearchPaper{},
		users:         map[uint]entities.User{},

		nextPlantType:   1,
		nextPlantPart:   1,
		nextIndustry:    1,
		nextSubIndustry: 1,
		nextProduct:     1,
		nextPaper:       1,
		nextUser:        1,
	}
}

var _ repository.Storage = (*Store)(nil)

func now() time.Time { return time.Now().UTC() }

// byID keeps listing and pagination order stable: ascending id everywhere.
func sortByID[T any](items []T, id func(T) uint) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	return items
}

func (s *Store) UserByID(id uint) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Store) UserByUsername(username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(u *entities.User) error {
	if err := entities.Validate(u); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return entities.NewValidationError("username", "already exists")
		}
	}
	u.ID = s.nextUser
	s.nextUser++
	s.users[u.ID] = *u
	return nil
}
