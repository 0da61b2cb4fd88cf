package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
)

// AccountRepository persists accounts together with the address, geo and
// company rows that only exist as part of an account.
type AccountRepository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction; any returned error rolls everything back.
	Transaction(ctx context.Context, fn func(repo AccountRepository) error) error

	InsertAccount(ctx context.Context, account *db_models.Account) error
	SaveAccount(ctx context.Context, account *db_models.Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) (bool, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	ListAccounts(ctx context.Context, list request_models.ListRequest) ([]db_models.Account, error)

	InsertGeo(ctx context.Context, geo *db_models.Geo) error
	SaveGeo(ctx context.Context, geo *db_models.Geo) error
	InsertAddress(ctx context.Context, address *db_models.Address) error
	SaveAddress(ctx context.Context, address *db_models.Address) error
	InsertCompany(ctx context.Context, company *db_models.Company) error
	SaveCompany(ctx context.Context, company *db_models.Company) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Transaction(ctx context.Context, fn func(repo AccountRepository) error) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepository{db: tx})
	})
}

func (a *accountRepository) withProfile(ctx context.Context) *gorm.DB {
	return a.db.WithContext(ctx).
		Preload("Address").
		Preload("Address.Geo").
		Preload("Company")
}

func (a *accountRepository) InsertAccount(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Create(account).Error
}

func (a *accountRepository) SaveAccount(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Save(account).Error
}

func (a *accountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) (bool, error) {
	result := a.db.WithContext(ctx).Delete(&db_models.Account{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.withProfile(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (a *accountRepository) ListAccounts(ctx context.Context, list request_models.ListRequest) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.withProfile(ctx).
		Scopes(oldestFirst, paginate(list)).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) InsertGeo(ctx context.Context, geo *db_models.Geo) error {
	return a.db.WithContext(ctx).Create(geo).Error
}

func (a *accountRepository) SaveGeo(ctx context.Context, geo *db_models.Geo) error {
	return a.db.WithContext(ctx).Save(geo).Error
}

func (a *accountRepository) InsertAddress(ctx context.Context, address *db_models.Address) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Create(address).Error
}

func (a *accountRepository) SaveAddress(ctx context.Context, address *db_models.Address) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Save(address).Error
}

func (a *accountRepository) InsertCompany(ctx context.Context, company *db_models.Company) error {
	return a.db.WithContext(ctx).Create(company).Error
}

func (a *accountRepository) SaveCompany(ctx context.Context, company *db_models.Company) error {
	return a.db.WithContext(ctx).Save(company).Error
}
