package repositoryImp

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"hempdb/entities"
	"hempdb/pkg/catalog/repository"
)

type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

var _ repository.Storage = (*Store)(nil)

// likeEscaper neutralizes LIKE metacharacters so a user query matches
// literally, the same way the in-memory store's substring match does.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(q string) string { return "%" + likeEscaper.Replace(q) + "%" }

// firstOrNil maps gorm's not-found error to the façade's (nil, nil) sentinel.
func firstOrNil[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// WithAdvisoryLock serializes fn across processes sharing the same Postgres
// database. On other dialects (sqlite in tests and local dev) fn just runs;
// the row-count guard alone covers the single-process case.
//
// pg_advisory_lock is session-scoped, so lock and unlock must run on the
// same connection: Connection pins one for the duration instead of letting
// the pool hand each Exec a different session.
func (s *Store) WithAdvisoryLock(key int64, fn func() error) error {
	if s.db.Dialector.Name() != "postgres" {
		return fn()
	}
	return s.db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", key).Error; err != nil {
			return err
		}
		fnErr := fn()
		if err := conn.Exec("SELECT pg_advisory_unlock(?)", key).Error; err != nil {
			if fnErr == nil {
				return fmt.Errorf("advisory unlock: %w", err)
			}
			log.Printf("[db] advisory unlock: %v", err)
		}
		return fnErr
	})
}

func (s *Store) UserByID(id uint) (*entities.User, error) {
	return firstOrNil[entities.User](s.db.Where("id = ?", id))
}

func (s *Store) UserByUsername(username string) (*entities.User, error) {
	return firstOrNil[entities.User](s.db.Where("username = ?", username))
}

func (s *Store) CreateUser(u *entities.User) error {
	if err := entities.Validate(u); err != nil {
		return err
	}
	existing, err := s.UserByUsername(u.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return entities.NewValidationError("username", "already exists")
	}
	return s.db.Create(u).Error
}
