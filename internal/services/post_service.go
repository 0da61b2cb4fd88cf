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

type PostServiceInterface interface {
	ListPosts(ctx context.Context, list request_models.ListRequest) ([]response_models.PostResponse, error)
	CreatePost(ctx context.Context, actorID uuid.UUID, request request_models.PostRequest) (*response_models.PostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, id uuid.UUID, patch request_models.PostPatchRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	ListPostsByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.PostResponse, error)
}

type PostService struct {
	postRepo    repositories.PostRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewPostService(postRepo repositories.PostRepositoryInterface, accountRepo repositories.AccountRepository) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		accountRepo: accountRepo,
	}
}

func (s *PostService) ListPosts(ctx context.Context, list request_models.ListRequest) ([]response_models.PostResponse, error) {
	posts, err := s.postRepo.ListPosts(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewPostResponses(posts), nil
}

func (s *PostService) CreatePost(ctx context.Context, actorID uuid.UUID, request request_models.PostRequest) (*response_models.PostResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, actorID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	post := &db_models.Post{
		AccountID: actorID,
		Title:     request.Title,
		Body:      request.Body,
	}
	if err := s.postRepo.Insert(ctx, post); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewPostResponse(post)
	return &resp, nil
}

func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*response_models.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewPostResponse(post)
	return &resp, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, patch request_models.PostPatchRequest) (*response_models.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Body != nil {
		post.Body = *patch.Body
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewPostResponse(post)
	return &resp, nil
}

// DeletePost also removes the post's comments.
func (s *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrPostNotFound
	}
	return nil
}

func (s *PostService) ListPostsByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.PostResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	posts, err := s.postRepo.ListPostsByAccount(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewPostResponses(posts), nil
}

func (s *PostService) findPost(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}
