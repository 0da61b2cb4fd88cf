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

type PhotoServiceInterface interface {
	ListPhotos(ctx context.Context, list request_models.ListRequest) ([]response_models.PhotoResponse, error)
	CreatePhoto(ctx context.Context, actorID uuid.UUID, request request_models.PhotoRequest) (*response_models.PhotoResponse, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*response_models.PhotoResponse, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, patch request_models.PhotoPatchRequest) (*response_models.PhotoResponse, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
	ListPhotosByAlbum(ctx context.Context, albumID uuid.UUID) ([]response_models.PhotoResponse, error)
}

type PhotoService struct {
	photoRepo repositories.PhotoRepositoryInterface
	albumRepo repositories.AlbumRepositoryInterface
}

func NewPhotoService(photoRepo repositories.PhotoRepositoryInterface, albumRepo repositories.AlbumRepositoryInterface) PhotoServiceInterface {
	return &PhotoService{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
	}
}

func (s *PhotoService) ListPhotos(ctx context.Context, list request_models.ListRequest) ([]response_models.PhotoResponse, error) {
	photos, err := s.photoRepo.ListPhotos(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewPhotoResponses(photos), nil
}

// CreatePhoto attributes the photo to actorID.
func (s *PhotoService) CreatePhoto(ctx context.Context, actorID uuid.UUID, request request_models.PhotoRequest) (*response_models.PhotoResponse, error) {
	albumID, err := s.resolveAlbum(ctx, request.AlbumID)
	if err != nil {
		return nil, err
	}

	photo := &db_models.Photo{
		AlbumID:      albumID,
		AccountID:    &actorID,
		Title:        request.Title,
		URL:          request.URL,
		ThumbnailURL: request.ThumbnailURL,
	}
	if err := s.photoRepo.Insert(ctx, photo); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewPhotoResponse(photo)
	return &resp, nil
}

func (s *PhotoService) GetPhoto(ctx context.Context, id uuid.UUID) (*response_models.PhotoResponse, error) {
	photo, err := s.findPhoto(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewPhotoResponse(photo)
	return &resp, nil
}

func (s *PhotoService) UpdatePhoto(ctx context.Context, id uuid.UUID, patch request_models.PhotoPatchRequest) (*response_models.PhotoResponse, error) {
	photo, err := s.findPhoto(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.AlbumID != nil {
		albumID, err := s.resolveAlbum(ctx, *patch.AlbumID)
		if err != nil {
			return nil, err
		}
		photo.AlbumID = albumID
	}
	if patch.Title != nil {
		photo.Title = *patch.Title
	}
	if patch.URL != nil {
		photo.URL = *patch.URL
	}
	if patch.ThumbnailURL != nil {
		photo.ThumbnailURL = *patch.ThumbnailURL
	}

	if err := s.photoRepo.Save(ctx, photo); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewPhotoResponse(photo)
	return &resp, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.photoRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrPhotoNotFound
	}
	return nil
}

func (s *PhotoService) ListPhotosByAlbum(ctx context.Context, albumID uuid.UUID) ([]response_models.PhotoResponse, error) {
	exists, err := s.albumRepo.ExistsById(ctx, albumID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAlbumNotFound
	}

	photos, err := s.photoRepo.ListPhotosByAlbum(ctx, albumID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewPhotoResponses(photos), nil
}

func (s *PhotoService) findPhoto(ctx context.Context, id uuid.UUID) (*db_models.Photo, error) {
	photo, err := s.photoRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if photo == nil {
		return nil, utils.ErrPhotoNotFound
	}
	return photo, nil
}

// resolveAlbum turns the client supplied albumId into an existing album id.
func (s *PhotoService) resolveAlbum(ctx context.Context, raw string) (uuid.UUID, error) {
	albumID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.NewValidationError("albumId", objectDoesNotExist(raw))
	}

	exists, err := s.albumRepo.ExistsById(ctx, albumID)
	if err != nil {
		return uuid.Nil, dbError(err)
	}
	if !exists {
		return uuid.Nil, utils.NewValidationError("albumId", objectDoesNotExist(raw))
	}
	return albumID, nil
}
