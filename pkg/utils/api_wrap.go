package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid input",
		TraceID: c.GetString("trace_id"),
		Errors:  verr.Fields,
	})
}

// RespondBindingError turns a ShouldBindJSON failure into a 400 response.
func RespondBindingError(c *gin.Context, err error) {
	if verr := TranslateBindingError(err); verr != nil {
		RespondValidationError(c, verr)
		return
	}
	RespondError(c, http.StatusBadRequest, "Invalid request format")
}

var notFoundErrors = []error{
	ErrAccountNotFound,
	ErrAlbumNotFound,
	ErrPhotoNotFound,
	ErrPostNotFound,
	ErrCommentNotFound,
	ErrToDoNotFound,
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		RespondValidationError(c, verr)
		return
	}

	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			RespondError(c, http.StatusNotFound, nf.Error())
			return
		}
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Authentication credentials were not provided or are invalid")
	case errors.Is(err, ErrInvalidCredentials):
		RespondValidationError(c, NewValidationError(NonFieldErrors, "Unable to authenticate with provided credentials."))
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
