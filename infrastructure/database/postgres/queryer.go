package postgres

import "database/sql"

// Queryer é a capacidade de leitura que o engine de métricas recebe.
// Nenhuma operação de escrita é exposta: o ledger é append-only do ponto
// de vista do engine e pertence ao coletor de ingestão.
type Queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
