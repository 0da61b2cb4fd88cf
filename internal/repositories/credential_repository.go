package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"placeholder/internal/models/db_models"
)

type CredentialRepositoryInterface interface {
	// Upsert replaces the account's credential key.
	Upsert(ctx context.Context, credential *db_models.Credential) error
	FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Credential, error)
}

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Upsert(ctx context.Context, credential *db_models.Credential) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"key", "issued_at"}),
		}).
		Create(credential).Error
}

func (r *CredentialRepository) FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Credential, error) {
	var credential db_models.Credential
	err := r.db.WithContext(ctx).First(&credential, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}
