package request_models

type PostRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required"`
}

type PostPatchRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=255"`
	Body  *string `json:"body" binding:"omitempty,min=1"`
}

type CommentRequest struct {
	PostID string `json:"postId" binding:"required"`
	Body   string `json:"body" binding:"required"`
}

type CommentPatchRequest struct {
	PostID *string `json:"postId" binding:"omitempty,min=1"`
	Body   *string `json:"body" binding:"omitempty,min=1"`
}

func (r PostRequest) ToPatch() PostPatchRequest {
	return PostPatchRequest{Title: &r.Title, Body: &r.Body}
}

func (r CommentRequest) ToPatch() CommentPatchRequest {
	return CommentPatchRequest{PostID: &r.PostID, Body: &r.Body}
}
