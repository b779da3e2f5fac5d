package services

import (
	"testing"

	"catalogo/internal/domain"
	"catalogo/internal/domain/models"
	"catalogo/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func produtoRows(ativo bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "descricao", "preco_custo", "preco_venda", "imagem", "ativo", "codigo_barras"}).
		AddRow(1, "Caneta", 10.5, 15.5, nil, ativo, `["7891000100103"]`)
}

func TestUpdateIDMismatchNeverTouchesStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ProdutoService{Repo: repositories.ProdutoRepository{DB: db}}

	_, err = svc.Update(1, models.Produto{ID: 2, Descricao: "Caneta"})
	if !domain.IsIDMismatch(err) {
		t.Fatalf("expected id mismatch error, got %v", err)
	}

	// no expectations registered: any query would have failed the test
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE produto").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ProdutoService{Repo: repositories.ProdutoRepository{DB: db}}

	updated, err := svc.Update(1, models.Produto{ID: 1, Descricao: "Caneta Azul", PrecoCusto: 1.2, PrecoVenda: 2.5, Ativo: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Descricao != "Caneta Azul" {
		t.Fatalf("unexpected record: %+v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUnactivateIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// first call: record still active
	mock.ExpectQuery("SELECT (.+) FROM produto WHERE id").
		WillReturnRows(produtoRows(true))
	mock.ExpectExec("UPDATE produto").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// second call: already inactive, still saved, still reports false
	mock.ExpectQuery("SELECT (.+) FROM produto WHERE id").
		WillReturnRows(produtoRows(false))
	mock.ExpectExec("UPDATE produto").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ProdutoService{Repo: repositories.ProdutoRepository{DB: db}}

	for i := 0; i < 2; i++ {
		ativo, err := svc.Unactivate(1)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if ativo {
			t.Fatalf("call %d: expected ativo=false", i+1)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUnactivateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM produto WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "preco_custo", "preco_venda", "imagem", "ativo", "codigo_barras"}))

	svc := ProdutoService{Repo: repositories.ProdutoRepository{DB: db}}

	if _, err := svc.Unactivate(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
