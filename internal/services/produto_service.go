package services

import (
	"catalogo/internal/domain"
	"catalogo/internal/domain/models"
	"catalogo/internal/query"
	"catalogo/internal/repositories"
)

type ProdutoService struct {
	Repo repositories.ProdutoRepository
}

func (s ProdutoService) Create(p models.Produto) (models.Produto, error) {
	return s.Repo.Create(p)
}

// FindAll returns one page plus the total count under the same filter.
// Pages are 1-based.
func (s ProdutoService) FindAll(page, size int, o query.Order, f query.Filter) ([]models.Produto, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	rows, err := s.Repo.FindPage(f, o, (page-1)*size, size)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.Repo.Count(f)
	if err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (s ProdutoService) FindOne(id int64) (models.Produto, bool, error) {
	return s.Repo.FindOne(id)
}

// Update replaces the whole record. The only guard is the id match; there
// is no optimistic-concurrency check.
func (s ProdutoService) Update(id int64, p models.Produto) (models.Produto, error) {
	if id != p.ID {
		return models.Produto{}, domain.IDMismatchError{PathID: id, PayloadID: p.ID}
	}
	return s.Repo.Save(p)
}

// Unactivate is the only supported soft-delete. It is idempotent: an
// already-inactive record is saved again and still reports false.
func (s ProdutoService) Unactivate(id int64) (bool, error) {
	p, ok, err := s.Repo.FindOne(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.NotFoundError{Resource: "produto"}
	}

	p.Ativo = false

	saved, err := s.Repo.Save(p)
	if err != nil {
		return false, err
	}
	return saved.Ativo, nil
}
