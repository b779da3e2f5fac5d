package handlers

import (
	"net/http"

	"catalogo/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Message catalogue kept from the legacy API so existing clients keep
// working.
const (
	msgSalvoSucesso      = "Salvo com sucesso."
	msgAtualizadoSucesso = "Atualizado com sucesso."
	msgDesativadoSucesso = "Desativado com sucesso."
	msgIniciadaGeracao   = "Iniciada a geração do PDF."
)

// respond writes the standard {message, data} envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}

// respondList adds the total count for paginated listings.
func respondList(c *gin.Context, data any, count int64) {
	c.JSON(http.StatusOK, gin.H{
		"message": "",
		"data":    data,
		"count":   count,
	})
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "corpo da requisição vazio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload inválido", err)
		return false
	}
	return true
}
