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

type PhotoRepositoryInterface interface {
	ListPhotos(ctx context.Context, list request_models.ListRequest) ([]db_models.Photo, error)
	ListPhotosByAlbum(ctx context.Context, albumID uuid.UUID) ([]db_models.Photo, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Photo, error)
	Insert(ctx context.Context, photo *db_models.Photo) error
	Save(ctx context.Context, photo *db_models.Photo) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepositoryInterface {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) ListPhotos(ctx context.Context, list request_models.ListRequest) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).Scopes(oldestFirst, paginate(list)).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) ListPhotosByAlbum(ctx context.Context, albumID uuid.UUID) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Scopes(oldestFirst).
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) Insert(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(photo).Error
}

func (r *PhotoRepository) Save(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(photo).Error
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Photo{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
