package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type AlbumController struct {
	albumService services.AlbumServiceInterface
	photoService services.PhotoServiceInterface
}

func NewAlbumController(albumService services.AlbumServiceInterface, photoService services.PhotoServiceInterface) *AlbumController {
	return &AlbumController{
		albumService: albumService,
		photoService: photoService,
	}
}

// ListAlbums godoc
// @Summary List albums
// @Tags Albums
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums [get]
func (ac *AlbumController) ListAlbums(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	albums, err := ac.albumService.ListAlbums(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, albums, "Albums fetched successfully")
}

// CreateAlbum godoc
// @Summary Create an album
// @Description The album is owned by the caller
// @Tags Albums
// @Accept json
// @Produce json
// @Param request body request_models.AlbumRequest true "Album payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums [post]
func (ac *AlbumController) CreateAlbum(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	album, err := ac.albumService.CreateAlbum(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, album, "Album created successfully")
}

// GetAlbum godoc
// @Summary Get an album
// @Tags Albums
// @Produce json
// @Param id path string true "Album ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/{id} [get]
func (ac *AlbumController) GetAlbum(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAlbumNotFound)
	if !ok {
		return
	}

	album, err := ac.albumService.GetAlbum(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, album, "Album fetched successfully")
}

// ReplaceAlbum godoc
// @Summary Replace an album
// @Tags Albums
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body request_models.AlbumRequest true "Album payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/{id} [put]
func (ac *AlbumController) ReplaceAlbum(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAlbumNotFound)
	if !ok {
		return
	}

	var req request_models.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	ac.update(c, id, req.ToPatch())
}

// PatchAlbum godoc
// @Summary Partially update an album
// @Tags Albums
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body request_models.AlbumPatchRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/{id} [patch]
func (ac *AlbumController) PatchAlbum(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAlbumNotFound)
	if !ok {
		return
	}

	var req request_models.AlbumPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	ac.update(c, id, req)
}

func (ac *AlbumController) update(c *gin.Context, id uuid.UUID, patch request_models.AlbumPatchRequest) {
	album, err := ac.albumService.UpdateAlbum(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, album, "Album updated successfully")
}

// DeleteAlbum godoc
// @Summary Delete an album and its photos
// @Tags Albums
// @Param id path string true "Album ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/{id} [delete]
func (ac *AlbumController) DeleteAlbum(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAlbumNotFound)
	if !ok {
		return
	}

	if err := ac.albumService.DeleteAlbum(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// ListAlbumPhotos godoc
// @Summary List the photos of an album
// @Tags Albums
// @Produce json
// @Param id path string true "Album ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/{id}/photos [get]
func (ac *AlbumController) ListAlbumPhotos(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAlbumNotFound)
	if !ok {
		return
	}

	photos, err := ac.photoService.ListPhotosByAlbum(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

// ListAccountAlbums godoc
// @Summary List the albums of an account
// @Tags Albums
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /albums/user/{accountId} [get]
func (ac *AlbumController) ListAccountAlbums(c *gin.Context) {
	accountID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	albums, err := ac.albumService.ListAlbumsByAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, albums, "Albums fetched successfully")
}
