// Package api wires controllers and middleware into the gin engine.
package api

import (
	"github.com/gin-gonic/gin"
	"placeholder/internal/api/controllers"
	"placeholder/pkg/metrics"
	"placeholder/pkg/middleware"
)

type Controllers struct {
	Account    *controllers.AccountController
	Credential *controllers.CredentialController
	Album      *controllers.AlbumController
	Photo      *controllers.PhotoController
	Post       *controllers.PostController
	Comment    *controllers.CommentController
	ToDo       *controllers.ToDoController
	Health     *controllers.HealthController
}

type RouterOptions struct {
	CORSOrigins             []string
	CredentialRatePerMinute int
}

func NewRouter(ctrl Controllers, resolver middleware.IdentityResolver, m *metrics.Metrics, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	RegisterRoutes(r, ctrl, resolver, m, opts)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, resolver middleware.IdentityResolver, m *metrics.Metrics, opts RouterOptions) {
	r.GET("/healthz", ctrl.Health.Healthz)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	limiter := middleware.NewRateLimiter(opts.CredentialRatePerMinute)
	r.POST("/credentials", limiter.Handler(), ctrl.Credential.Issue)

	auth := middleware.JWTAuthMiddleware(resolver)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("", ctrl.Account.Register)
	accountGroup.Use(auth)
	{
		accountGroup.GET("", ctrl.Account.ListAccounts)
		accountGroup.GET("/:id", ctrl.Account.GetAccount)
		accountGroup.PUT("/:id", ctrl.Account.ReplaceAccount)
		accountGroup.PATCH("/:id", ctrl.Account.PatchAccount)
		accountGroup.DELETE("/:id", ctrl.Account.DeleteAccount)
	}

	albumGroup := r.Group("/albums", auth)
	{
		albumGroup.GET("", ctrl.Album.ListAlbums)
		albumGroup.POST("", ctrl.Album.CreateAlbum)
		albumGroup.GET("/user/:accountId", ctrl.Album.ListAccountAlbums)
		albumGroup.GET("/:id", ctrl.Album.GetAlbum)
		albumGroup.PUT("/:id", ctrl.Album.ReplaceAlbum)
		albumGroup.PATCH("/:id", ctrl.Album.PatchAlbum)
		albumGroup.DELETE("/:id", ctrl.Album.DeleteAlbum)
		albumGroup.GET("/:id/photos", ctrl.Album.ListAlbumPhotos)
		albumGroup.GET("/:id/user_albums", ctrl.Album.ListAccountAlbums)
	}

	photoGroup := r.Group("/photos", auth)
	{
		photoGroup.GET("", ctrl.Photo.ListPhotos)
		photoGroup.POST("", ctrl.Photo.CreatePhoto)
		photoGroup.GET("/:id", ctrl.Photo.GetPhoto)
		photoGroup.PUT("/:id", ctrl.Photo.ReplacePhoto)
		photoGroup.PATCH("/:id", ctrl.Photo.PatchPhoto)
		photoGroup.DELETE("/:id", ctrl.Photo.DeletePhoto)
	}

	postGroup := r.Group("/posts", auth)
	{
		postGroup.GET("", ctrl.Post.ListPosts)
		postGroup.POST("", ctrl.Post.CreatePost)
		postGroup.GET("/user/:accountId", ctrl.Post.ListAccountPosts)
		postGroup.GET("/:id", ctrl.Post.GetPost)
		postGroup.PUT("/:id", ctrl.Post.ReplacePost)
		postGroup.PATCH("/:id", ctrl.Post.PatchPost)
		postGroup.DELETE("/:id", ctrl.Post.DeletePost)
		postGroup.GET("/:id/comments", ctrl.Post.ListPostComments)
		postGroup.GET("/:id/user_posts", ctrl.Post.ListAccountPosts)
	}

	commentGroup := r.Group("/comments", auth)
	{
		commentGroup.GET("", ctrl.Comment.ListComments)
		commentGroup.POST("", ctrl.Comment.CreateComment)
		commentGroup.GET("/post/:postId", ctrl.Comment.FilterByPost)
		commentGroup.GET("/:id", ctrl.Comment.GetComment)
		commentGroup.PUT("/:id", ctrl.Comment.ReplaceComment)
		commentGroup.PATCH("/:id", ctrl.Comment.PatchComment)
		commentGroup.DELETE("/:id", ctrl.Comment.DeleteComment)
		commentGroup.GET("/:id/filter-by-post", ctrl.Comment.FilterByPost)
	}

	todoGroup := r.Group("/todo", auth)
	{
		todoGroup.GET("", ctrl.ToDo.ListToDos)
		todoGroup.POST("", ctrl.ToDo.CreateToDo)
		todoGroup.GET("/user/:accountId", ctrl.ToDo.ListAccountToDos)
		todoGroup.GET("/:id", ctrl.ToDo.GetToDo)
		todoGroup.PUT("/:id", ctrl.ToDo.ReplaceToDo)
		todoGroup.PATCH("/:id", ctrl.ToDo.PatchToDo)
		todoGroup.DELETE("/:id", ctrl.ToDo.DeleteToDo)
		todoGroup.GET("/:id/user_todos", ctrl.ToDo.ListAccountToDos)
	}
}
