package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/model"
)

// CreateAdmin inserts a new operator account and returns its ID.
func CreateAdmin(email, hashedPassword string, name *string) (int, error) {
	query := `
	INSERT INTO admins (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;
	`
	var newID int
	err := DB.QueryRow(query, email, hashedPassword, name).Scan(&newID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create admin")
		return 0, err
	}
	return newID, nil
}

// GetAdminByEmail fetches an admin by email. Returns sql.ErrNoRows when
// no account exists.
func GetAdminByEmail(email string) (*model.Admin, error) {
	var a model.Admin
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM admins
	WHERE email = $1;
	`
	err := DB.Get(&a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get admin by email")
		return nil, err
	}
	return &a, nil
}

// GetAdminByID fetches an admin by ID. Returns sql.ErrNoRows when no
// account exists.
func GetAdminByID(id int) (*model.Admin, error) {
	var a model.Admin
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM admins
	WHERE id = $1;
	`
	err := DB.Get(&a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get admin by id")
		return nil, err
	}
	return &a, nil
}

// UpdateAdminProfile updates an admin's email and name and bumps
// updated_at. Errors when the account does not exist.
func UpdateAdminProfile(id int, email string, name *string) error {
	query := `
	UPDATE admins
	SET email = $2,
	name = $3,
	updated_at = now()
	WHERE id = $1;
	`
	res, err := DB.Exec(query, id, email, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to update admin profile")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no such admin")
	}
	return nil
}
