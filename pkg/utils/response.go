package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"healthcare-hub-backend/pkg/apperr"
)

// SuccessResponse sends a standard success JSON envelope
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// CreatedResponse sends a success envelope with HTTP 201
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse sends a standard error JSON envelope
func ErrorResponse(c *gin.Context, statusCode int, message string, errs map[string]string) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	c.JSON(statusCode, body)
}

// HandleError maps a service error onto the HTTP error taxonomy:
// validation 422, not found 404, business rule / unavailable / duplicate
// confirmation 400, everything else 500.
func HandleError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		ErrorResponse(c, http.StatusUnprocessableEntity, err.Error(), apperr.FieldsOf(err))
	case apperr.KindNotFound:
		ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case apperr.KindBusinessRule, apperr.KindUnavailable, apperr.KindAlreadyConfirmed:
		ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// BindError converts a gin binding failure into the validation envelope.
// Field-level failures become a field-keyed map with HTTP 422.
func BindError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		ErrorResponse(c, http.StatusUnprocessableEntity, "Validation Error", fields)
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
}
