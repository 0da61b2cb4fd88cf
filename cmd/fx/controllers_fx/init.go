package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"placeholder/internal/api"
	"placeholder/internal/api/controllers"
	"placeholder/internal/config"
	"placeholder/pkg/metrics"
	"placeholder/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCredentialController),
	fx.Provide(controllers.NewAlbumController),
	fx.Provide(controllers.NewPhotoController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewCommentController),
	fx.Provide(controllers.NewToDoController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(metrics.New),
	fx.Provide(provideRouter),
)

type routerParams struct {
	fx.In

	Config     *config.Config
	Resolver   middleware.IdentityResolver
	Metrics    *metrics.Metrics
	Account    *controllers.AccountController
	Credential *controllers.CredentialController
	Album      *controllers.AlbumController
	Photo      *controllers.PhotoController
	Post       *controllers.PostController
	Comment    *controllers.CommentController
	ToDo       *controllers.ToDoController
	Health     *controllers.HealthController
}

func provideRouter(p routerParams) *gin.Engine {
	return api.NewRouter(api.Controllers{
		Account:    p.Account,
		Credential: p.Credential,
		Album:      p.Album,
		Photo:      p.Photo,
		Post:       p.Post,
		Comment:    p.Comment,
		ToDo:       p.ToDo,
		Health:     p.Health,
	}, p.Resolver, p.Metrics, api.RouterOptions{
		CORSOrigins:             p.Config.CORSOrigins,
		CredentialRatePerMinute: p.Config.CredentialRatePerMinute,
	})
}
