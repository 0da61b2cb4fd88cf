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

type PostRepositoryInterface interface {
	ListPosts(ctx context.Context, list request_models.ListRequest) ([]db_models.Post, error)
	ListPostsByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Post, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, post *db_models.Post) error
	Save(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepositoryInterface {
	return &PostRepository{db: db}
}

func (r *PostRepository) ListPosts(ctx context.Context, list request_models.ListRequest) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).Scopes(oldestFirst, paginate(list)).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) ListPostsByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Scopes(oldestFirst).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *PostRepository) Save(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
