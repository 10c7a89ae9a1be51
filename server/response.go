package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/objectid/errors"
	"github.com/kbukum/objectid/logger"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries pagination or other response metadata.
type Meta struct {
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"pageSize,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

// RespondWithError writes the status and body errors.HTTPResponse derives
// from err. Server errors are logged and sent as a bare status.
func RespondWithError(c *gin.Context, err error) {
	status, body := errors.HTTPResponse(err)
	if body == nil {
		logger.Get("server").Error("request failed", logger.Fields(
			"status", status,
			"path", c.Request.URL.Path,
			logger.FieldError, errString(err),
		))
		c.Status(status)
		return
	}
	c.JSON(status, body)
}

// AbortWithError is RespondWithError that also stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	RespondWithError(c, err)
	c.Abort()
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondOKWithMeta sends a 200 response with data and metadata.
func RespondOKWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Meta: meta})
}

// RespondCreated sends a 201 response wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
