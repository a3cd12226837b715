package repository

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
)

// ErrInvalidLimit indica violação de contrato na borda da chamada:
// limites negativos não são aceitos em nenhum ranking
var ErrInvalidLimit = errors.New("limite não pode ser negativo")

//go:generate mockgen -source=ranking.go -destination=mocks/ranking.go -package=mocks

// RankingRepository monta as listas ranqueadas por receita. Para
// produtos e categorias o limite é opcional: nil devolve todos os
// grupos, ainda ordenados, para a tabela de detalhe; um limite devolve o
// prefixo para o gráfico. O top de clientes é sempre um leaderboard
// limitado. O desempate em receitas iguais é explícito, pelo rótulo em
// ordem alfabética, para não depender da ordem incidental do storage.
type RankingRepository interface {
	TopProducts(limit *int) ([]domain.DimensionRevenue, error)
	TopCategories(limit *int) ([]domain.DimensionRevenue, error)
	TopCustomers(limit int) ([]domain.DimensionRevenue, error)
}

type rankingRepository struct {
	conn *postgres.Connection
}

func NewRankingRepository(conn *postgres.Connection) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

func (r *rankingRepository) TopProducts(limit *int) ([]domain.DimensionRevenue, error) {
	builder := squirrel.
		Select("p.name", "SUM(s.total_amount) AS total").
		From(salesTable).
		Join("products p ON p.id = s.product_id").
		GroupBy("p.name").
		OrderBy("total DESC", "p.name ASC")

	return r.rankedRevenue(builder, limit)
}

func (r *rankingRepository) TopCategories(limit *int) ([]domain.DimensionRevenue, error) {
	builder := squirrel.
		Select("cat.name", "SUM(s.total_amount) AS total").
		From(salesTable).
		Join("products p ON p.id = s.product_id").
		Join("categories cat ON cat.id = p.category_id").
		GroupBy("cat.name").
		OrderBy("total DESC", "cat.name ASC")

	return r.rankedRevenue(builder, limit)
}

func (r *rankingRepository) TopCustomers(limit int) ([]domain.DimensionRevenue, error) {
	builder := squirrel.
		Select("c.name", "SUM(s.total_amount) AS total").
		From(salesTable).
		Join("customers c ON c.id = s.customer_id").
		GroupBy("c.name").
		OrderBy("total DESC", "c.name ASC")

	return r.rankedRevenue(builder, &limit)
}

func (r *rankingRepository) rankedRevenue(builder squirrel.SelectBuilder, limit *int) ([]domain.DimensionRevenue, error) {
	if limit != nil {
		if *limit < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, *limit)
		}
		builder = builder.Limit(uint64(*limit))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.DimensionRevenue, 0)
	for rows.Next() {
		var row domain.DimensionRevenue
		if err := rows.Scan(&row.Label, &row.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do ranking: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
