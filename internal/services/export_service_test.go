package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"catalogo/internal/domain"
	"catalogo/internal/domain/models"
	"catalogo/internal/query"
	"catalogo/internal/repositories"
)

type fakeSource struct {
	rows  []repositories.ProdutoReportRow
	err   error
	calls int
}

func (f *fakeSource) FindReportRows(_ query.Filter, _ query.Order, offset, limit int) ([]repositories.ProdutoReportRow, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.rows) {
		return []repositories.ProdutoReportRow{}, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], nil
}

type fakeRenderer struct {
	dir     string
	content []byte
	err     error
	calls   int
}

func (r *fakeRenderer) Export(_ string, _ int64, _ ReportTable) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	path := filepath.Join(r.dir, "relatorio.pdf")
	if err := os.WriteFile(path, r.content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type fakeResolver struct {
	usuario models.Usuario
	err     error
	calls   int
}

func (r *fakeResolver) FindOne(_ context.Context, _ int64) (models.Usuario, error) {
	r.calls++
	return r.usuario, r.err
}

type emitted struct {
	event   string
	payload any
}

type fakeNotifier struct {
	events []emitted
}

func (n *fakeNotifier) Emit(event string, payload any) {
	n.events = append(n.events, emitted{event: event, payload: payload})
}

func makeRows(n int) []repositories.ProdutoReportRow {
	rows := make([]repositories.ProdutoReportRow, n)
	for i := range rows {
		rows[i] = repositories.ProdutoReportRow{
			ID:         int64(i + 1),
			Descricao:  fmt.Sprintf("Produto %d", i+1),
			PrecoCusto: 10.5,
			PrecoVenda: 15.5,
			Ativo:      i%2 == 0,
		}
	}
	return rows
}

func defaultOrder() query.Order {
	return query.Order{Column: "id", Sort: "asc"}
}

func TestFetchAllPaginationExhaustion(t *testing.T) {
	cases := []struct {
		n         int
		wantCalls int
	}{
		{0, 1},   // empty dataset still issues one call
		{50, 1},  // single short page
		{100, 2}, // exact multiple: one extra empty call
		{250, 3},
	}
	for _, tc := range cases {
		src := &fakeSource{rows: makeRows(tc.n)}
		svc := ExportService{Source: src}

		rows, err := svc.fetchAll(query.None(), defaultOrder())
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", tc.n, err)
		}
		if len(rows) != tc.n {
			t.Errorf("n=%d: accumulated %d rows", tc.n, len(rows))
		}
		if src.calls != tc.wantCalls {
			t.Errorf("n=%d: %d store calls, want %d", tc.n, src.calls, tc.wantCalls)
		}
	}
}

func TestExportPdfHappyPath(t *testing.T) {
	content := []byte("%PDF-1.4 conteudo do relatorio")
	renderer := &fakeRenderer{dir: t.TempDir(), content: content}
	resolver := &fakeResolver{usuario: models.Usuario{ID: 1, Nome: "A", Email: "a@x.com"}}
	notifier := &fakeNotifier{}

	svc := ExportService{
		Source:   &fakeSource{rows: makeRows(3)},
		Pdf:      renderer,
		Usuarios: resolver,
		Mail:     notifier,
	}

	done, err := svc.ExportPdf(context.Background(), 1, defaultOrder(), query.None())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Fatal("expected true on success")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected exactly one emit, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.event != "enviar-email" {
		t.Fatalf("unexpected event name %q", ev.event)
	}

	mail, ok := ev.payload.(EnviarEmail)
	if !ok {
		t.Fatalf("unexpected payload type %T", ev.payload)
	}
	if mail.Subject != "Exportação de Relatório" || mail.Template != "exportacao-relatorio" {
		t.Fatalf("unexpected envelope: %+v", mail)
	}
	if mail.To != "a@x.com" || mail.Context.Name != "A" {
		t.Fatalf("unexpected recipient/context: %+v", mail)
	}
	if len(mail.Attachments) != 1 {
		t.Fatalf("expected one attachment, got %d", len(mail.Attachments))
	}
	if mail.Attachments[0].Filename != "relatorio.pdf" {
		t.Fatalf("unexpected attachment filename %q", mail.Attachments[0].Filename)
	}
	decoded, err := base64.StdEncoding.DecodeString(mail.Attachments[0].Base64)
	if err != nil {
		t.Fatalf("attachment is not valid base64: %v", err)
	}
	if string(decoded) != string(content) {
		t.Fatal("attachment bytes differ from rendered file bytes")
	}
}

func TestExportPdfUnidentifiedUser(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := ExportService{
		Source:   &fakeSource{rows: makeRows(1)},
		Pdf:      &fakeRenderer{dir: t.TempDir(), content: []byte("x")},
		Usuarios: &fakeResolver{usuario: models.Usuario{ID: 0}},
		Mail:     notifier,
	}

	done, err := svc.ExportPdf(context.Background(), 7, defaultOrder(), query.None())
	if done {
		t.Fatal("expected false")
	}
	if !domain.IsUnidentifiedUser(err) {
		t.Fatalf("expected unidentified user error, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatal("notifier must never be called for an unidentified user")
	}
}

func TestExportPdfRendererFailure(t *testing.T) {
	src := &fakeSource{rows: makeRows(1)}
	notifier := &fakeNotifier{}
	svc := ExportService{
		Source:   src,
		Pdf:      &fakeRenderer{err: errors.New("sem espaço em disco")},
		Usuarios: &fakeResolver{usuario: models.Usuario{ID: 1, Nome: "A", Email: "a@x.com"}},
		Mail:     notifier,
	}

	_, err := svc.ExportPdf(context.Background(), 1, defaultOrder(), query.None())
	if !domain.IsExport(err) {
		t.Fatalf("render failures must surface as the generic export error, got %v", err)
	}
	if src.calls < 1 {
		t.Fatal("page fetch loop must have run before rendering")
	}
	if len(notifier.events) != 0 {
		t.Fatal("notifier must never be called when rendering fails")
	}
}

func TestExportPdfIdentityTransportFailureIsCoalesced(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := ExportService{
		Source:   &fakeSource{rows: makeRows(1)},
		Pdf:      &fakeRenderer{dir: t.TempDir(), content: []byte("x")},
		Usuarios: &fakeResolver{err: errors.New("connection refused")},
		Mail:     notifier,
	}

	_, err := svc.ExportPdf(context.Background(), 1, defaultOrder(), query.None())
	if !domain.IsExport(err) {
		t.Fatalf("transport failures must be coalesced into the export error, got %v", err)
	}
	if domain.IsUnidentifiedUser(err) {
		t.Fatal("transport failure must stay distinct from the sentinel case")
	}
	if !domain.IsIdentityComm(err) {
		t.Fatal("true cause should still be wrapped inside the export error")
	}
	if len(notifier.events) != 0 {
		t.Fatal("notifier must never be called on identity failure")
	}
}

func TestBuildReportTableFormatting(t *testing.T) {
	rows := []repositories.ProdutoReportRow{
		{ID: 1, Descricao: "Caneta", PrecoCusto: 10.5, PrecoVenda: 15.5, Ativo: true},
		{ID: 2, Descricao: "Lápis", PrecoCusto: 0.8, PrecoVenda: 1.2, Ativo: false},
	}

	table := buildReportTable(rows)

	wantCols := []string{"Código", "Descrição", "Preco de Custo (R$)", "Preço de Venda (R$)", "Ativo"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("unexpected columns: %v", table.Columns)
	}
	for i, col := range wantCols {
		if table.Columns[i] != col {
			t.Fatalf("column %d: got %q, want %q", i, table.Columns[i], col)
		}
	}

	// cost keeps 3 decimal places, sale price 2
	if table.Rows[0][2] != "10,500" {
		t.Errorf("cost cell: got %q, want %q", table.Rows[0][2], "10,500")
	}
	if table.Rows[0][3] != "15,50" {
		t.Errorf("sale cell: got %q, want %q", table.Rows[0][3], "15,50")
	}
	if table.Rows[0][4] != "Sim" || table.Rows[1][4] != "Não" {
		t.Errorf("ativo cells: got %q/%q", table.Rows[0][4], table.Rows[1][4])
	}

	if table.Aligns[2] != "R" || table.Aligns[3] != "R" || table.Aligns[4] != "C" {
		t.Errorf("unexpected alignment hints: %v", table.Aligns)
	}
}
