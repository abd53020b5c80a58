package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps service errors onto the response taxonomy: validation and
// business-rule failures → 400, authorization → 403, unknown ids → 404.
func fail(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err),
		errors.Is(err, services.ErrAlreadyInCart),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
