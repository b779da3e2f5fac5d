package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

const createProdutoTable = `
CREATE TABLE produto (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	descricao VARCHAR(60) NOT NULL,
	preco_custo DECIMAL(10,2) NOT NULL,
	preco_venda DECIMAL(10,2) NOT NULL,
	imagem LONGBLOB NULL,
	ativo TINYINT(1) NOT NULL DEFAULT 1,
	codigo_barras TEXT NOT NULL,
	PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

// EnsureSchema creates the produto table when it is missing so a fresh
// database works without a separate migration step.
func EnsureSchema(conn *sql.DB) error {
	if conn == nil {
		return errors.New("conexão com o banco não disponível")
	}
	if HasTable(conn, "produto") {
		return nil
	}
	_, err := conn.Exec(createProdutoTable)
	return err
}
