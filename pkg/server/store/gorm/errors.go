package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// translate maps GORM and driver errors onto the store error contract.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrDuplicate
	}
	return err
}

// affected turns a write that matched no rows into model.ErrNotFound.
func affected(tx *gorm.DB) error {
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
