package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type CommentController struct {
	commentService services.CommentServiceInterface
}

func NewCommentController(commentService services.CommentServiceInterface) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (cc *CommentController) ListComments(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	comments, err := cc.commentService.ListComments(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

// CreateComment godoc
// @Summary Comment on a post
// @Description The comment is attributed to the caller
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body request_models.CommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	comment, err := cc.commentService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, comment, "Comment created successfully")
}

func (cc *CommentController) GetComment(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrCommentNotFound)
	if !ok {
		return
	}

	comment, err := cc.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment fetched successfully")
}

func (cc *CommentController) ReplaceComment(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrCommentNotFound)
	if !ok {
		return
	}

	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	cc.update(c, id, req.ToPatch())
}

func (cc *CommentController) PatchComment(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrCommentNotFound)
	if !ok {
		return
	}

	var req request_models.CommentPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	cc.update(c, id, req)
}

func (cc *CommentController) update(c *gin.Context, id uuid.UUID, patch request_models.CommentPatchRequest) {
	comment, err := cc.commentService.UpdateComment(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment updated successfully")
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrCommentNotFound)
	if !ok {
		return
	}

	if err := cc.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// FilterByPost godoc
// @Summary List the comments of a post
// @Tags Comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comments/post/{postId} [get]
func (cc *CommentController) FilterByPost(c *gin.Context) {
	param := "postId"
	if c.Param(param) == "" {
		param = "id"
	}
	postID, ok := parseID(c, param, utils.ErrPostNotFound)
	if !ok {
		return
	}

	comments, err := cc.commentService.ListCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}
