package handlers

import (
	"net/http"

	"catalogo/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. CRUD errors
// keep their specific kind; export errors arrive already coalesced.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsIDMismatch(err):
		RespondError(c, http.StatusNotAcceptable, err.Error(), nil)
	case domain.IsUnidentifiedUser(err):
		RespondError(c, http.StatusNotAcceptable, err.Error(), nil)
	case domain.IsExport(err):
		RespondError(c, http.StatusInternalServerError, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "erro interno", err)
	}
}
