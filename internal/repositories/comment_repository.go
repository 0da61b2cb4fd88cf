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

// CommentRepositoryInterface always preloads the author so the name/email
// display fields can be resolved.
type CommentRepositoryInterface interface {
	ListComments(ctx context.Context, list request_models.ListRequest) ([]db_models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]db_models.Comment, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	Insert(ctx context.Context, comment *db_models.Comment) error
	Save(ctx context.Context, comment *db_models.Comment) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepositoryInterface {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Account")
}

func (r *CommentRepository) ListComments(ctx context.Context, list request_models.ListRequest) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.withAuthor(ctx).Scopes(oldestFirst, paginate(list)).Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.withAuthor(ctx).
		Where("post_id = ?", postID).
		Scopes(oldestFirst).
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.withAuthor(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

func (r *CommentRepository) Save(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Comment{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
