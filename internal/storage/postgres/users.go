package postgres

import (
	"fmt"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
)

func (s *Store) AddUser(user models.User) error {
	_, err := s.db.Exec(`INSERT INTO users (id, name, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Name, storage.FormatTime(user.CreatedAt))
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+storage.UserColumns+" FROM users WHERE id = $1", id)
	u, err := storage.ScanUser(row)
	if err != nil {
		return models.User{}, storage.NotFound(err, "user "+id)
	}
	return u, nil
}

func (s *Store) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT " + storage.UserColumns + " FROM users ORDER BY created_at, name, id")
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanUser)
}
