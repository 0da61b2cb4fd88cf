package controllers

import (
	"github.com/gin-gonic/gin"
	"placeholder/internal/models/request_models"
	"placeholder/internal/models/response_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type CredentialController struct {
	credentialService services.CredentialServiceInterface
}

func NewCredentialController(credentialService services.CredentialServiceInterface) *CredentialController {
	return &CredentialController{
		credentialService: credentialService,
	}
}

// Issue godoc
// @Summary Obtain a token
// @Description Exchange email and password for a bearer token. Older tokens stop working.
// @Tags Credentials
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /credentials [post]
func (cc *CredentialController) Issue(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	token, err := cc.credentialService.Issue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountLoginResponse{Token: token}, "Login successful")
}
