package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every resource can surface: blank ids,
// lookups on the referenced collections and anything unexpected.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID), errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetItemID), errors.Is(err, usecase.ErrInvalidObraID),
		errors.Is(err, usecase.ErrInvalidVisitaID), errors.Is(err, usecase.ErrInvalidConcursoID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, usecase.ErrInvalidNotificationID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrObraNotFound):
		return pkg.NewDomainErrorSimple("OBRA_NOT_FOUND", "Obra not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
