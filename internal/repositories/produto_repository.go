package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "catalogo/internal/config"
	"catalogo/internal/domain/models"
	"catalogo/internal/query"
)

// produtoColumns maps exposed attribute names to SQL columns. The filter
// and order translators only ever see these.
var produtoColumns = map[string]string{
	"id":           "id",
	"descricao":    "descricao",
	"precoCusto":   "preco_custo",
	"precoVenda":   "preco_venda",
	"ativo":        "ativo",
	"codigoBarras": "codigo_barras",
}

// ProdutoTranslator is the filter/order translator bound to the produto
// attribute set.
func ProdutoTranslator() query.Translator {
	return query.Translator{Columns: produtoColumns}
}

type ProdutoRepository struct {
	DB *sql.DB
}

func (r ProdutoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const produtoSelect = `SELECT id, descricao, preco_custo, preco_venda, imagem, ativo, codigo_barras FROM produto`

func (r ProdutoRepository) Create(p models.Produto) (models.Produto, error) {
	barras, err := marshalBarras(p.CodigoBarras)
	if err != nil {
		return models.Produto{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO produto (descricao, preco_custo, preco_venda, imagem, ativo, codigo_barras)
		VALUES (?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(p.Descricao), p.PrecoCusto, p.PrecoVenda, nullableBytes(p.Imagem), p.Ativo, barras)
	if err != nil {
		return models.Produto{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Produto{}, err
	}
	p.ID = id
	return p, nil
}

// FindPage returns one page of full records under the translated
// filter/order. Offset/limit come straight from the caller.
func (r ProdutoRepository) FindPage(f query.Filter, o query.Order, offset, limit int) ([]models.Produto, error) {
	tr := ProdutoTranslator()

	where, args, err := tr.Translate(f)
	if err != nil {
		return nil, err
	}
	orderBy, err := tr.TranslateOrder(o)
	if err != nil {
		return nil, err
	}

	q := produtoSelect
	if where != "" {
		q += " WHERE " + where
	}
	q += " " + orderBy + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Produto{}
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the total number of records matching the filter, for the
// list response envelope.
func (r ProdutoRepository) Count(f query.Filter) (int64, error) {
	where, args, err := ProdutoTranslator().Translate(f)
	if err != nil {
		return 0, err
	}

	q := `SELECT COUNT(*) FROM produto`
	if where != "" {
		q += " WHERE " + where
	}

	var count int64
	if err := r.db().QueryRow(q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// FindOne returns the record and whether it exists.
func (r ProdutoRepository) FindOne(id int64) (models.Produto, bool, error) {
	row := r.db().QueryRow(produtoSelect+` WHERE id = ?`, id)
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Produto{}, false, nil
		}
		return models.Produto{}, false, err
	}
	return p, true, nil
}

// Save replaces the whole record.
func (r ProdutoRepository) Save(p models.Produto) (models.Produto, error) {
	barras, err := marshalBarras(p.CodigoBarras)
	if err != nil {
		return models.Produto{}, err
	}

	_, err = r.db().Exec(`
		UPDATE produto
		SET descricao = ?, preco_custo = ?, preco_venda = ?, imagem = ?, ativo = ?, codigo_barras = ?
		WHERE id = ?
	`, strings.TrimSpace(p.Descricao), p.PrecoCusto, p.PrecoVenda, nullableBytes(p.Imagem), p.Ativo, barras, p.ID)
	if err != nil {
		return models.Produto{}, err
	}
	return p, nil
}

// ProdutoReportRow is the slim projection fetched for report export.
type ProdutoReportRow struct {
	ID         int64
	Descricao  string
	PrecoCusto float64
	PrecoVenda float64
	Ativo      bool
}

// FindReportRows pages through the reporting columns only.
func (r ProdutoRepository) FindReportRows(f query.Filter, o query.Order, offset, limit int) ([]ProdutoReportRow, error) {
	tr := ProdutoTranslator()

	where, args, err := tr.Translate(f)
	if err != nil {
		return nil, err
	}
	orderBy, err := tr.TranslateOrder(o)
	if err != nil {
		return nil, err
	}

	q := `SELECT id, descricao, preco_custo, preco_venda, ativo FROM produto`
	if where != "" {
		q += " WHERE " + where
	}
	q += " " + orderBy + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ProdutoReportRow{}
	for rows.Next() {
		var row ProdutoReportRow
		if err := rows.Scan(&row.ID, &row.Descricao, &row.PrecoCusto, &row.PrecoVenda, &row.Ativo); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduto(row rowScanner) (models.Produto, error) {
	var (
		p      models.Produto
		imagem []byte
		barras sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Descricao, &p.PrecoCusto, &p.PrecoVenda, &imagem, &p.Ativo, &barras); err != nil {
		return models.Produto{}, err
	}
	p.Imagem = imagem
	p.CodigoBarras = unmarshalBarras(barras.String)
	return p, nil
}

func marshalBarras(codes []string) (string, error) {
	if codes == nil {
		codes = []string{}
	}
	raw, err := json.Marshal(codes)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalBarras(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return []string{}
	}
	return codes
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
