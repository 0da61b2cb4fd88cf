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

type AlbumRepositoryInterface interface {
	ListAlbums(ctx context.Context, list request_models.ListRequest) ([]db_models.Album, error)
	ListAlbumsByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Album, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Album, error)
	FindByTitle(ctx context.Context, title string) (*db_models.Album, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, album *db_models.Album) error
	Save(ctx context.Context, album *db_models.Album) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumRepositoryInterface {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) ListAlbums(ctx context.Context, list request_models.ListRequest) ([]db_models.Album, error) {
	var albums []db_models.Album
	err := r.db.WithContext(ctx).Scopes(oldestFirst, paginate(list)).Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) ListAlbumsByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Album, error) {
	var albums []db_models.Album
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Scopes(oldestFirst).
		Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Album, error) {
	var album db_models.Album
	err := r.db.WithContext(ctx).First(&album, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) FindByTitle(ctx context.Context, title string) (*db_models.Album, error) {
	var album db_models.Album
	err := r.db.WithContext(ctx).First(&album, "title = ?", title).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Album{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AlbumRepository) Insert(ctx context.Context, album *db_models.Album) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(album).Error
}

func (r *AlbumRepository) Save(ctx context.Context, album *db_models.Album) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(album).Error
}

func (r *AlbumRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Album{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
