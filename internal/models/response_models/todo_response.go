package response_models

import "placeholder/internal/models/db_models"

type ToDoResponse struct {
	UserID    string `json:"userId"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func NewToDoResponse(todo *db_models.ToDo) ToDoResponse {
	return ToDoResponse{
		UserID:    todo.AccountID.String(),
		ID:        todo.ID.String(),
		Title:     todo.Title,
		Completed: todo.Completed,
	}
}

func NewToDoResponses(todos []db_models.ToDo) []ToDoResponse {
	out := make([]ToDoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, NewToDoResponse(&todos[i]))
	}
	return out
}
