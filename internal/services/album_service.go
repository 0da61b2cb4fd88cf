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

const msgAlbumTitleTaken = "album with this title already exists."

type AlbumServiceInterface interface {
	ListAlbums(ctx context.Context, list request_models.ListRequest) ([]response_models.AlbumResponse, error)
	CreateAlbum(ctx context.Context, actorID uuid.UUID, request request_models.AlbumRequest) (*response_models.AlbumResponse, error)
	GetAlbum(ctx context.Context, id uuid.UUID) (*response_models.AlbumResponse, error)
	UpdateAlbum(ctx context.Context, id uuid.UUID, patch request_models.AlbumPatchRequest) (*response_models.AlbumResponse, error)
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
	ListAlbumsByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.AlbumResponse, error)
}

type AlbumService struct {
	albumRepo   repositories.AlbumRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewAlbumService(albumRepo repositories.AlbumRepositoryInterface, accountRepo repositories.AccountRepository) AlbumServiceInterface {
	return &AlbumService{
		albumRepo:   albumRepo,
		accountRepo: accountRepo,
	}
}

func (s *AlbumService) ListAlbums(ctx context.Context, list request_models.ListRequest) ([]response_models.AlbumResponse, error) {
	albums, err := s.albumRepo.ListAlbums(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewAlbumResponses(albums), nil
}

func (s *AlbumService) CreateAlbum(ctx context.Context, actorID uuid.UUID, request request_models.AlbumRequest) (*response_models.AlbumResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, actorID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	if err := s.checkTitleFree(ctx, request.Title, uuid.Nil); err != nil {
		return nil, err
	}

	album := &db_models.Album{
		AccountID: actorID,
		Title:     request.Title,
	}
	if err := s.albumRepo.Insert(ctx, album); err != nil {
		return nil, uniqueViolation(err, "title", msgAlbumTitleTaken)
	}

	resp := response_models.NewAlbumResponse(album)
	return &resp, nil
}

func (s *AlbumService) GetAlbum(ctx context.Context, id uuid.UUID) (*response_models.AlbumResponse, error) {
	album, err := s.findAlbum(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewAlbumResponse(album)
	return &resp, nil
}

func (s *AlbumService) UpdateAlbum(ctx context.Context, id uuid.UUID, patch request_models.AlbumPatchRequest) (*response_models.AlbumResponse, error) {
	album, err := s.findAlbum(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title != album.Title {
		if err := s.checkTitleFree(ctx, *patch.Title, album.ID); err != nil {
			return nil, err
		}
		album.Title = *patch.Title
	}

	if err := s.albumRepo.Save(ctx, album); err != nil {
		return nil, uniqueViolation(err, "title", msgAlbumTitleTaken)
	}

	resp := response_models.NewAlbumResponse(album)
	return &resp, nil
}

// DeleteAlbum also removes the album's photos.
func (s *AlbumService) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.albumRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrAlbumNotFound
	}
	return nil
}

func (s *AlbumService) ListAlbumsByAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.AlbumResponse, error) {
	exists, err := s.accountRepo.ExistsById(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	if !exists {
		return nil, utils.ErrAccountNotFound
	}

	albums, err := s.albumRepo.ListAlbumsByAccount(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewAlbumResponses(albums), nil
}

func (s *AlbumService) findAlbum(ctx context.Context, id uuid.UUID) (*db_models.Album, error) {
	album, err := s.albumRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if album == nil {
		return nil, utils.ErrAlbumNotFound
	}
	return album, nil
}

// checkTitleFree fails when another album than self already uses title.
func (s *AlbumService) checkTitleFree(ctx context.Context, title string, self uuid.UUID) error {
	existing, err := s.albumRepo.FindByTitle(ctx, title)
	if err != nil {
		return dbError(err)
	}
	if existing != nil && existing.ID != self {
		return utils.NewValidationError("title", msgAlbumTitleTaken)
	}
	return nil
}
