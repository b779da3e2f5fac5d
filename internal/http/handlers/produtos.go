package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"catalogo/internal/domain"
	"catalogo/internal/domain/models"
	"catalogo/internal/query"
	"catalogo/internal/repositories"
	"catalogo/internal/services"

	"github.com/gin-gonic/gin"
)

type produtoPayload struct {
	ID           int64    `json:"id"`
	Descricao    string   `json:"descricao" binding:"required"`
	PrecoCusto   *float64 `json:"precoCusto" binding:"required"`
	PrecoVenda   *float64 `json:"precoVenda" binding:"required"`
	Imagem       string   `json:"imagem"`
	Ativo        *bool    `json:"ativo" binding:"required"`
	CodigoBarras []string `json:"codigoBarras" binding:"required"`
}

func (p produtoPayload) toModel() (models.Produto, error) {
	descricao := strings.TrimSpace(p.Descricao)
	if len([]rune(descricao)) > models.DescricaoMaxLen {
		return models.Produto{}, domain.ValidationError{Field: "descricao", Msg: "possui mais caracteres que o permitido."}
	}

	var imagem []byte
	if raw := strings.TrimSpace(p.Imagem); raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return models.Produto{}, domain.ValidationError{Field: "imagem", Msg: "deve estar em base64.", Err: err}
		}
		imagem = decoded
	}

	return models.Produto{
		ID:           p.ID,
		Descricao:    descricao,
		PrecoCusto:   *p.PrecoCusto,
		PrecoVenda:   *p.PrecoVenda,
		Imagem:       imagem,
		Ativo:        *p.Ativo,
		CodigoBarras: p.CodigoBarras,
	}, nil
}

func produtoService() services.ProdutoService {
	return services.ProdutoService{Repo: repositories.ProdutoRepository{}}
}

// POST /api/produtos
func CreateProduto(c *gin.Context) {
	var payload produtoPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	produto, err := payload.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := produtoService().Create(produto)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, msgSalvoSucesso, created)
}

// GET /api/produtos?page=1&size=10&order={...}&filter={...}
func GetProdutos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

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

	rows, count, err := produtoService().FindAll(page, size, order, filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondList(c, rows, count)
}

// GET /api/produtos/:id
func GetProdutoByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return
	}

	produto, ok, err := produtoService().FindOne(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ok {
		respond(c, http.StatusOK, "", nil)
		return
	}
	respond(c, http.StatusOK, "", produto)
}

// PUT /api/produtos/:id
func UpdateProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return
	}

	var payload produtoPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	produto, err := payload.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := produtoService().Update(id, produto)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, msgAtualizadoSucesso, updated)
}

// DELETE /api/produtos/:id (soft-delete: seta ativo=false)
func UnactivateProduto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id inválido", err)
		return
	}

	ativo, err := produtoService().Unactivate(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, msgDesativadoSucesso, ativo)
}
