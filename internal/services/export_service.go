package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"catalogo/internal/domain"
	"catalogo/internal/domain/models"
	"catalogo/internal/query"
	"catalogo/internal/repositories"
	"catalogo/internal/utils"
)

// reportBatchSize is the fixed page size used to drain the full dataset,
// independent of the API's list page-size parameter.
const reportBatchSize = 100

const (
	reportTitle   = "Listagem de Produtos"
	emailEvent    = "enviar-email"
	emailSubject  = "Exportação de Relatório"
	emailTemplate = "exportacao-relatorio"
)

// ReportSource pages through the reporting projection of the record store.
type ReportSource interface {
	FindReportRows(f query.Filter, o query.Order, offset, limit int) ([]repositories.ProdutoReportRow, error)
}

// ReportRenderer turns a table description into a file and returns its path.
type ReportRenderer interface {
	Export(title string, idUsuario int64, table ReportTable) (string, error)
}

// UsuarioResolver looks an identity up on the usuario service. An id of 0
// in the returned Usuario means "unknown user" and is not an error.
type UsuarioResolver interface {
	FindOne(ctx context.Context, id int64) (models.Usuario, error)
}

// Notifier emits a message without waiting for delivery.
type Notifier interface {
	Emit(event string, payload any)
}

// ReportTable describes the rendered table: headers, pre-formatted cell
// values and per-column alignment hints ("L", "R" or "C").
type ReportTable struct {
	Columns []string
	Rows    [][]string
	Aligns  map[int]string
}

type EnviarEmail struct {
	Subject     string            `json:"subject"`
	To          string            `json:"to"`
	Template    string            `json:"template"`
	Context     EmailContext      `json:"context"`
	Attachments []EmailAttachment `json:"attachments"`
}

type EmailContext struct {
	Name string `json:"name"`
}

type EmailAttachment struct {
	Filename string `json:"filename"`
	Base64   string `json:"base64"`
}

// ExportService runs the report export pipeline: drain pages, render,
// read the file, resolve the requesting user and hand the mail off to the
// notifier. One invocation is strictly sequential and cannot be retried
// or cancelled midway.
type ExportService struct {
	Source    ReportSource
	Pdf       ReportRenderer
	Usuarios  UsuarioResolver
	Mail      Notifier
	RequestID string
}

// ExportPdf returns true once the mail was handed to the notifier. Every
// failure is logged with its real cause and surfaced either as
// UnidentifiedUserError or as the generic ExportError.
func (s ExportService) ExportPdf(ctx context.Context, idUsuario int64, o query.Order, f query.Filter) (bool, error) {
	if err := s.export(ctx, idUsuario, o, f); err != nil {
		utils.LogEvent(s.RequestID, "export", "export_pdf",
			fmt.Sprintf("erro ao gerar relatorio pdf: %v", err))
		if domain.IsUnidentifiedUser(err) {
			return false, err
		}
		return false, domain.ExportError{Err: err}
	}
	return true, nil
}

func (s ExportService) export(ctx context.Context, idUsuario int64, o query.Order, f query.Filter) error {
	rows, err := s.fetchAll(f, o)
	if err != nil {
		return err
	}

	filePath, err := s.Pdf.Export(reportTitle, idUsuario, buildReportTable(rows))
	if err != nil {
		return domain.RenderError{Err: err}
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	attachment := EmailAttachment{
		Filename: filepath.Base(filePath),
		Base64:   base64.StdEncoding.EncodeToString(raw),
	}

	usuario, err := s.Usuarios.FindOne(ctx, idUsuario)
	if err != nil {
		return domain.IdentityCommError{Err: err}
	}
	if usuario.ID == models.UsuarioSentinelID {
		return domain.UnidentifiedUserError{UserID: idUsuario}
	}

	s.Mail.Emit(emailEvent, EnviarEmail{
		Subject:     emailSubject,
		To:          usuario.Email,
		Template:    emailTemplate,
		Context:     EmailContext{Name: usuario.Nome},
		Attachments: []EmailAttachment{attachment},
	})
	return nil
}

// fetchAll drains the store in fixed-size batches. The loop stops on the
// first short page, so a dataset that is an exact multiple of the batch
// size costs one extra empty query.
func (s ExportService) fetchAll(f query.Filter, o query.Order) ([]repositories.ProdutoReportRow, error) {
	all := []repositories.ProdutoReportRow{}
	for page := 0; ; page++ {
		batch, err := s.Source.FindReportRows(f, o, page*reportBatchSize, reportBatchSize)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < reportBatchSize {
			return all, nil
		}
	}
}

var reportColumns = []string{
	"Código",
	"Descrição",
	"Preco de Custo (R$)",
	"Preço de Venda (R$)",
	"Ativo",
}

// buildReportTable projects records into display rows. Cost keeps 3
// decimal places and sale price 2; the asymmetry is a literal contract
// carried over from the legacy report.
func buildReportTable(rows []repositories.ProdutoReportRow) ReportTable {
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		ativo := "Não"
		if r.Ativo {
			ativo = "Sim"
		}
		body = append(body, []string{
			strconv.FormatInt(r.ID, 10),
			r.Descricao,
			utils.FormatPreco(r.PrecoCusto, 3),
			utils.FormatPreco(r.PrecoVenda, 2),
			ativo,
		})
	}

	return ReportTable{
		Columns: reportColumns,
		Rows:    body,
		Aligns:  map[int]string{2: "R", 3: "R", 4: "C"},
	}
}
