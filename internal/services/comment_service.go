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

type CommentServiceInterface interface {
	ListComments(ctx context.Context, list request_models.ListRequest) ([]response_models.CommentResponse, error)
	CreateComment(ctx context.Context, actorID uuid.UUID, request request_models.CommentRequest) (*response_models.CommentResponse, error)
	GetComment(ctx context.Context, id uuid.UUID) (*response_models.CommentResponse, error)
	UpdateComment(ctx context.Context, id uuid.UUID, patch request_models.CommentPatchRequest) (*response_models.CommentResponse, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]response_models.CommentResponse, error)
}

type CommentService struct {
	commentRepo repositories.CommentRepositoryInterface
	postRepo    repositories.PostRepositoryInterface
}

func NewCommentService(commentRepo repositories.CommentRepositoryInterface, postRepo repositories.PostRepositoryInterface) CommentServiceInterface {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) ListComments(ctx context.Context, list request_models.ListRequest) ([]response_models.CommentResponse, error) {
	comments, err := s.commentRepo.ListComments(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewCommentResponses(comments), nil
}

func (s *CommentService) CreateComment(ctx context.Context, actorID uuid.UUID, request request_models.CommentRequest) (*response_models.CommentResponse, error) {
	postID, err := s.resolvePost(ctx, request.PostID)
	if err != nil {
		return nil, err
	}

	comment := &db_models.Comment{
		PostID:    postID,
		AccountID: &actorID,
		Body:      request.Body,
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, dbError(err)
	}

	// reload for the author's name and email
	return s.GetComment(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uuid.UUID) (*response_models.CommentResponse, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewCommentResponse(comment)
	return &resp, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id uuid.UUID, patch request_models.CommentPatchRequest) (*response_models.CommentResponse, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PostID != nil {
		postID, err := s.resolvePost(ctx, *patch.PostID)
		if err != nil {
			return nil, err
		}
		comment.PostID = postID
	}
	if patch.Body != nil {
		comment.Body = *patch.Body
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewCommentResponse(comment)
	return &resp, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrCommentNotFound
	}
	return nil
}

func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]response_models.CommentResponse, error) {
	exists, err := s.postRepo.ExistsById(ctx, postID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrPostNotFound
	}

	comments, err := s.commentRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewCommentResponses(comments), nil
}

func (s *CommentService) findComment(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	comment, err := s.commentRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if comment == nil {
		return nil, utils.ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) resolvePost(ctx context.Context, raw string) (uuid.UUID, error) {
	postID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.NewValidationError("postId", objectDoesNotExist(raw))
	}

	exists, err := s.postRepo.ExistsById(ctx, postID)
	if err != nil {
		return uuid.Nil, dbError(err)
	}
	if !exists {
		return uuid.Nil, utils.NewValidationError("postId", objectDoesNotExist(raw))
	}
	return postID, nil
}
