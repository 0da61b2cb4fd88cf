package album_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
)

var Module = fx.Provide(
	provideAlbumRepo, providePhotoRepo, provideAlbumService, providePhotoService)

func provideAlbumRepo(db *gorm.DB) repositories.AlbumRepositoryInterface {
	return repositories.NewAlbumRepository(db)
}

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepositoryInterface {
	return repositories.NewPhotoRepository(db)
}

func provideAlbumService(albumRepo repositories.AlbumRepositoryInterface, accountRepo repositories.AccountRepository) services.AlbumServiceInterface {
	return services.NewAlbumService(albumRepo, accountRepo)
}

func providePhotoService(photoRepo repositories.PhotoRepositoryInterface, albumRepo repositories.AlbumRepositoryInterface) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, albumRepo)
}
