package api

import (
	"errors"
	"net/http"

	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
)

// Response envelopes mirror the shape the frontend consumes:
// {success, message?, data?} on success, {success:false, message} on
// failure.

func ok(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failErr maps domain errors onto HTTP statuses: not-found sentinels to
// 404, validation and stock errors to 400, everything else to 500.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrUserNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		var ve *store.ValidationError
		var se *store.InsufficientStockError
		if errors.As(err, &ve) || errors.As(err, &se) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
