// exposes a Store interface that is passed to API handlers
package db

import (
	"github.com/masjid-labs/muadhin/internal/model"
)

// Store is the admin-account surface the HTTP layer depends on.
type Store interface {
	CreateAdmin(email, hashedPassword string, name *string) (int, error)
	GetAdminByEmail(email string) (*model.Admin, error)
	GetAdminByID(id int) (*model.Admin, error)
	UpdateAdminProfile(id int, email string, name *string) error
}

type pgStore struct{}

// NewStore returns a Store backed by the package connection.
func NewStore() Store { return pgStore{} }

var _ Store = pgStore{}

func (pgStore) CreateAdmin(email, hashedPassword string, name *string) (int, error) {
	return CreateAdmin(email, hashedPassword, name)
}

func (pgStore) GetAdminByEmail(email string) (*model.Admin, error) {
	return GetAdminByEmail(email)
}

func (pgStore) GetAdminByID(id int) (*model.Admin, error) {
	return GetAdminByID(id)
}

func (pgStore) UpdateAdminProfile(id int, email string, name *string) error {
	return UpdateAdminProfile(id, email, name)
}
