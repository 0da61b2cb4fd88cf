package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

// ListPhotos godoc
// @Summary List photos
// @Tags Photos
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /photos [get]
func (pc *PhotoController) ListPhotos(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	photos, err := pc.photoService.ListPhotos(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

// CreatePhoto godoc
// @Summary Add a photo to an album
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body request_models.PhotoRequest true "Photo payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /photos [post]
func (pc *PhotoController) CreatePhoto(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	photo, err := pc.photoService.CreatePhoto(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, photo, "Photo created successfully")
}

func (pc *PhotoController) GetPhoto(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPhotoNotFound)
	if !ok {
		return
	}

	photo, err := pc.photoService.GetPhoto(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photo, "Photo fetched successfully")
}

func (pc *PhotoController) ReplacePhoto(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPhotoNotFound)
	if !ok {
		return
	}

	var req request_models.PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	pc.update(c, id, req.ToPatch())
}

func (pc *PhotoController) PatchPhoto(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPhotoNotFound)
	if !ok {
		return
	}

	var req request_models.PhotoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	pc.update(c, id, req)
}

func (pc *PhotoController) update(c *gin.Context, id uuid.UUID, patch request_models.PhotoPatchRequest) {
	photo, err := pc.photoService.UpdatePhoto(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photo, "Photo updated successfully")
}

func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrPhotoNotFound)
	if !ok {
		return
	}

	if err := pc.photoService.DeletePhoto(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
