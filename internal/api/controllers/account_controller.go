package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with optional nested address, geo and company
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// ListAccounts godoc
// @Summary Get all accounts
// @Description Fetch every account, optionally paginated
// @Tags Accounts
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts [get]
func (a *AccountController) ListAccounts(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}

// GetAccount godoc
// @Summary Get an account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (a *AccountController) GetAccount(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAccountNotFound)
	if !ok {
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// ReplaceAccount godoc
// @Summary Replace an account
// @Description Full update; nested address and company are updated in place or created
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.SignUpRequest true "Account payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (a *AccountController) ReplaceAccount(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAccountNotFound)
	if !ok {
		return
	}

	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	a.update(c, id, req.ToPatch())
}

// PatchAccount godoc
// @Summary Partially update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.AccountPatchRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [patch]
func (a *AccountController) PatchAccount(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAccountNotFound)
	if !ok {
		return
	}

	var req request_models.AccountPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	a.update(c, id, req)
}

func (a *AccountController) update(c *gin.Context, id uuid.UUID, patch request_models.AccountPatchRequest) {
	account, err := a.accountService.UpdateAccount(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account updated successfully")
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description Removes the account with its posts, albums and todos
// @Tags Accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (a *AccountController) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrAccountNotFound)
	if !ok {
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
