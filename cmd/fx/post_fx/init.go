package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
)

var Module = fx.Provide(
	providePostRepo, provideCommentRepo, providePostService, provideCommentService)

func providePostRepo(db *gorm.DB) repositories.PostRepositoryInterface {
	return repositories.NewPostRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.CommentRepositoryInterface {
	return repositories.NewCommentRepository(db)
}

func providePostService(postRepo repositories.PostRepositoryInterface, accountRepo repositories.AccountRepository) services.PostServiceInterface {
	return services.NewPostService(postRepo, accountRepo)
}

func provideCommentService(commentRepo repositories.CommentRepositoryInterface, postRepo repositories.PostRepositoryInterface) services.CommentServiceInterface {
	return services.NewCommentService(commentRepo, postRepo)
}
