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

type ToDoRepositoryInterface interface {
	ListToDos(ctx context.Context, list request_models.ListRequest) ([]db_models.ToDo, error)
	ListToDosByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ToDo, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.ToDo, error)
	Insert(ctx context.Context, todo *db_models.ToDo) error
	Save(ctx context.Context, todo *db_models.ToDo) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ToDoRepository struct {
	db *gorm.DB
}

func NewToDoRepository(db *gorm.DB) ToDoRepositoryInterface {
	return &ToDoRepository{db: db}
}

func (r *ToDoRepository) ListToDos(ctx context.Context, list request_models.ListRequest) ([]db_models.ToDo, error) {
	var todos []db_models.ToDo
	err := r.db.WithContext(ctx).Scopes(oldestFirst, paginate(list)).Find(&todos).Error
	return todos, err
}

func (r *ToDoRepository) ListToDosByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ToDo, error) {
	var todos []db_models.ToDo
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Scopes(oldestFirst).
		Find(&todos).Error
	return todos, err
}

func (r *ToDoRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.ToDo, error) {
	var todo db_models.ToDo
	err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *ToDoRepository) Insert(ctx context.Context, todo *db_models.ToDo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(todo).Error
}

func (r *ToDoRepository) Save(ctx context.Context, todo *db_models.ToDo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(todo).Error
}

func (r *ToDoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.ToDo{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
