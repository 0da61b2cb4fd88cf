package response_models

import "placeholder/internal/models/db_models"

type AlbumResponse struct {
	UserID string `json:"userId"`
	ID     string `json:"id"`
	Title  string `json:"title"`
}

type PhotoResponse struct {
	AlbumID      string `json:"albumId"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func NewAlbumResponse(album *db_models.Album) AlbumResponse {
	return AlbumResponse{
		UserID: album.AccountID.String(),
		ID:     album.ID.String(),
		Title:  album.Title,
	}
}

func NewAlbumResponses(albums []db_models.Album) []AlbumResponse {
	out := make([]AlbumResponse, 0, len(albums))
	for i := range albums {
		out = append(out, NewAlbumResponse(&albums[i]))
	}
	return out
}

func NewPhotoResponse(photo *db_models.Photo) PhotoResponse {
	return PhotoResponse{
		AlbumID:      photo.AlbumID.String(),
		ID:           photo.ID.String(),
		Title:        photo.Title,
		URL:          photo.URL,
		ThumbnailURL: photo.ThumbnailURL,
	}
}

func NewPhotoResponses(photos []db_models.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, NewPhotoResponse(&photos[i]))
	}
	return out
}
