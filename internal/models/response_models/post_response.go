package response_models

import "placeholder/internal/models/db_models"

type PostResponse struct {
	UserID string `json:"userId"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// CommentResponse resolves Name and Email through the author, null once the
// author is gone.
type CommentResponse struct {
	PostID string  `json:"postId"`
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Body   string  `json:"body"`
}

func NewPostResponse(post *db_models.Post) PostResponse {
	return PostResponse{
		UserID: post.AccountID.String(),
		ID:     post.ID.String(),
		Title:  post.Title,
		Body:   post.Body,
	}
}

func NewPostResponses(posts []db_models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}

func NewCommentResponse(comment *db_models.Comment) CommentResponse {
	resp := CommentResponse{
		PostID: comment.PostID.String(),
		ID:     comment.ID.String(),
		Body:   comment.Body,
	}
	if comment.Account != nil {
		name, email := comment.Account.Name, comment.Account.Email
		resp.Name = &name
		resp.Email = &email
	}
	return resp
}

func NewCommentResponses(comments []db_models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
