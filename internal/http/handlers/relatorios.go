package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"catalogo/internal/http/middleware"
	"catalogo/internal/query"
	"catalogo/internal/repositories"
	"catalogo/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportDeps holds the long-lived collaborators of the export pipeline.
// They are wired once at startup; the record store comes from the shared
// DB handle like everywhere else.
type ExportDeps struct {
	Pdf      services.ReportRenderer
	Usuarios services.UsuarioResolver
	Mail     services.Notifier
}

var (
	exportMu   sync.RWMutex
	exportDeps ExportDeps
)

func SetExportDeps(d ExportDeps) {
	exportMu.Lock()
	defer exportMu.Unlock()
	exportDeps = d
}

func getExportDeps() (ExportDeps, bool) {
	exportMu.RLock()
	defer exportMu.RUnlock()
	d := exportDeps
	return d, d.Pdf != nil && d.Usuarios != nil && d.Mail != nil
}

// GET /api/relatorios/produtos?idUsuario=1&order={...}&filter={...}
//
// Responds as soon as the pipeline finishes; the e-mail delivery itself is
// fire-and-forget and never awaited.
func ExportProdutosPdf(c *gin.Context) {
	idUsuario, err := strconv.ParseInt(c.Query("idUsuario"), 10, 64)
	if err != nil || idUsuario <= 0 {
		RespondError(c, http.StatusBadRequest, "idUsuario inválido", err)
		return
	}

	order, err := query.ParseOrderParam(c.Query("order"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	filter, err := query.ParseFilterParam(c.Query("filter"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	deps, ok := getExportDeps()
	if !ok {
		RespondError(c, http.StatusServiceUnavailable, "exportação indisponível", nil)
		return
	}

	svc := services.ExportService{
		Source:    repositories.ProdutoRepository{},
		Pdf:       deps.Pdf,
		Usuarios:  deps.Usuarios,
		Mail:      deps.Mail,
		RequestID: middleware.GetRequestID(c),
	}

	done, err := svc.ExportPdf(c.Request.Context(), idUsuario, order, filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, msgIniciadaGeracao, done)
}
