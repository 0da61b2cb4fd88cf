package request_models

// Completed is a pointer so that an explicit false passes the required check.
type ToDoRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	Completed *bool  `json:"completed" binding:"required"`
}

type ToDoPatchRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Completed *bool   `json:"completed"`
}

func (r ToDoRequest) ToPatch() ToDoPatchRequest {
	return ToDoPatchRequest{Title: &r.Title, Completed: r.Completed}
}
