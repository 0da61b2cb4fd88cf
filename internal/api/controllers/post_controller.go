package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type PostController struct {
	postService    services.PostServiceInterface
	commentService services.CommentServiceInterface
}

func NewPostController(postService services.PostServiceInterface, commentService services.CommentServiceInterface) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
	}
}

// ListPosts godoc
// @Summary List posts
// @Tags Posts
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [get]
func (pc *PostController) ListPosts(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	posts, err := pc.postService.ListPosts(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// CreatePost godoc
// @Summary Create a post
// @Description The post is owned by the caller
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.PostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	post, err := pc.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

// GetPost godoc
// @Summary Get a post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPostNotFound)
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

func (pc *PostController) ReplacePost(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPostNotFound)
	if !ok {
		return
	}

	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	pc.update(c, id, req.ToPatch())
}

func (pc *PostController) PatchPost(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPostNotFound)
	if !ok {
		return
	}

	var req request_models.PostPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	pc.update(c, id, req)
}

func (pc *PostController) update(c *gin.Context, id uuid.UUID, patch request_models.PostPatchRequest) {
	post, err := pc.postService.UpdatePost(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a post and its comments
// @Tags Posts
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPostNotFound)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// ListPostComments godoc
// @Summary List the comments of a post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{id}/comments [get]
func (pc *PostController) ListPostComments(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPostNotFound)
	if !ok {
		return
	}

	comments, err := pc.commentService.ListCommentsByPost(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

// ListAccountPosts godoc
// @Summary List the posts of an account
// @Tags Posts
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/user/{accountId} [get]
func (pc *PostController) ListAccountPosts(c *gin.Context) {
	accountID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	posts, err := pc.postService.ListPostsByAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}
