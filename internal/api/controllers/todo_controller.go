package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/services"
	"placeholder/pkg/utils"
)

type ToDoController struct {
	todoService services.ToDoServiceInterface
}

func NewToDoController(todoService services.ToDoServiceInterface) *ToDoController {
	return &ToDoController{
		todoService: todoService,
	}
}

// ListToDos godoc
// @Summary List todos
// @Tags ToDos
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /todo [get]
func (tc *ToDoController) ListToDos(c *gin.Context) {
	list, ok := parseListRequest(c)
	if !ok {
		return
	}

	todos, err := tc.todoService.ListToDos(c.Request.Context(), list)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, todos, "Todos fetched successfully")
}

// CreateToDo godoc
// @Summary Create a todo
// @Tags ToDos
// @Accept json
// @Produce json
// @Param request body request_models.ToDoRequest true "Todo payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /todo [post]
func (tc *ToDoController) CreateToDo(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.ToDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	todo, err := tc.todoService.CreateToDo(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, todo, "Todo created successfully")
}

func (tc *ToDoController) GetToDo(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrToDoNotFound)
	if !ok {
		return
	}

	todo, err := tc.todoService.GetToDo(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, todo, "Todo fetched successfully")
}

func (tc *ToDoController) ReplaceToDo(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrToDoNotFound)
	if !ok {
		return
	}

	var req request_models.ToDoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	tc.update(c, id, req.ToPatch())
}

func (tc *ToDoController) PatchToDo(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrToDoNotFound)
	if !ok {
		return
	}

	var req request_models.ToDoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	tc.update(c, id, req)
}

func (tc *ToDoController) update(c *gin.Context, id uuid.UUID, patch request_models.ToDoPatchRequest) {
	todo, err := tc.todoService.UpdateToDo(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, todo, "Todo updated successfully")
}

func (tc *ToDoController) DeleteToDo(c *gin.Context) {
	id, ok := parseID(c, "id", utils.ErrToDoNotFound)
	if !ok {
		return
	}

	if err := tc.todoService.DeleteToDo(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// ListAccountToDos godoc
// @Summary List the todos of an account
// @Tags ToDos
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /todo/user/{accountId} [get]
func (tc *ToDoController) ListAccountToDos(c *gin.Context) {
	accountID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	todos, err := tc.todoService.ListToDosByAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, todos, "Todos fetched successfully")
}
