package services

import (
	"context"

	"github.com/google/uuid"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
	"placeholder/internal/models/response_models"
	"placeholder/internal/repositories"
	"placeholder/pkg/utils"
)

type ToDoServiceInterface interface {
	ListToDos(ctx context.Context, list request_models.ListRequest) ([]response_models.ToDoResponse, error)
	CreateToDo(ctx context.Context, actorID uuid.UUID, request request_models.ToDoRequest) (*response_models.ToDoResponse, error)
	GetToDo(ctx context.Context, id uuid.UUID) (*response_models.ToDoResponse, error)
	UpdateToDo(ctx context.Context, id uuid.UUID, patch request_models.ToDoPatchRequest) (*response_models.ToDoResponse, error)
	DeleteToDo(ctx context.Context, id uuid.UUID) error
	ListToDosByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.ToDoResponse, error)
}

type ToDoService struct {
	todoRepo    repositories.ToDoRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewToDoService(todoRepo repositories.ToDoRepositoryInterface, accountRepo repositories.AccountRepository) ToDoServiceInterface {
	return &ToDoService{
		todoRepo:    todoRepo,
		accountRepo: accountRepo,
	}
}

func (s *ToDoService) ListToDos(ctx context.Context, list request_models.ListRequest) ([]response_models.ToDoResponse, error) {
	todos, err := s.todoRepo.ListToDos(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewToDoResponses(todos), nil
}

func (s *ToDoService) CreateToDo(ctx context.Context, actorID uuid.UUID, request request_models.ToDoRequest) (*response_models.ToDoResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, actorID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	todo := &db_models.ToDo{
		AccountID: actorID,
		Title:     request.Title,
	}
	if request.Completed != nil {
		todo.Completed = *request.Completed
	}
	if err := s.todoRepo.Insert(ctx, todo); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewToDoResponse(todo)
	return &resp, nil
}

func (s *ToDoService) GetToDo(ctx context.Context, id uuid.UUID) (*response_models.ToDoResponse, error) {
	todo, err := s.findToDo(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewToDoResponse(todo)
	return &resp, nil
}

func (s *ToDoService) UpdateToDo(ctx context.Context, id uuid.UUID, patch request_models.ToDoPatchRequest) (*response_models.ToDoResponse, error) {
	todo, err := s.findToDo(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	if err := s.todoRepo.Save(ctx, todo); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewToDoResponse(todo)
	return &resp, nil
}

func (s *ToDoService) DeleteToDo(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrToDoNotFound
	}
	return nil
}

func (s *ToDoService) ListToDosByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.ToDoResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	todos, err := s.todoRepo.ListToDosByAccount(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewToDoResponses(todos), nil
}

func (s *ToDoService) findToDo(ctx context.Context, id uuid.UUID) (*db_models.ToDo, error) {
	todo, err := s.todoRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if todo == nil {
		return nil, utils.ErrToDoNotFound
	}
	return todo, nil
}
