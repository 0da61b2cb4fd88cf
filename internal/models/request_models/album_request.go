package request_models

type AlbumRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type AlbumPatchRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=255"`
}

type PhotoRequest struct {
	AlbumID      string `json:"albumId" binding:"required"`
	Title        string `json:"title" binding:"required,max=255"`
	URL          string `json:"url" binding:"required,url,max=200"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"required,url,max=200"`
}

type PhotoPatchRequest struct {
	AlbumID      *string `json:"albumId" binding:"omitempty,min=1"`
	Title        *string `json:"title" binding:"omitempty,min=1,max=255"`
	URL          *string `json:"url" binding:"omitempty,url,max=200"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,url,max=200"`
}

func (r AlbumRequest) ToPatch() AlbumPatchRequest {
	return AlbumPatchRequest{Title: &r.Title}
}

func (r PhotoRequest) ToPatch() PhotoPatchRequest {
	return PhotoPatchRequest{
		AlbumID:      &r.AlbumID,
		Title:        &r.Title,
		URL:          &r.URL,
		ThumbnailURL: &r.ThumbnailURL,
	}
}
