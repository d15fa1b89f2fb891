package dao

import (
	"context"
	"errors"

	"gptlog/gptlog/sources/psql/models"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the process started without a usable
// DATABASE_URL; writes fail until the configuration is fixed.
var ErrNoDatabase = errors.New("no database connection configured")

type InteractionDAO struct {
	DB *gorm.DB
}

func NewInteractionDAO(db *gorm.DB) *InteractionDAO {
	return &InteractionDAO{DB: db}
}

// Insert writes one interaction row inside its own transaction. Either the
// full row is committed or the transaction is rolled back.
func (dao *InteractionDAO) Insert(ctx context.Context, interaction *models.Interaction) error {
	if dao.DB == nil {
		return ErrNoDatabase
	}
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(interaction).Error
	})
}
