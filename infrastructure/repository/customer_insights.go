package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
)

//go:generate mockgen -source=customer_insights.go -destination=mocks/customer_insights.go -package=mocks

// CustomerInsightsRepository calcula as métricas de aquisição e
// recorrência de clientes derivadas da tabela fato
type CustomerInsightsRepository interface {
	NewCustomersByMonth() ([]domain.NewCustomersPoint, error)
	PurchaseFrequencyDistribution() ([]domain.FrequencyBucket, error)
}

type customerInsightsRepository struct {
	conn *postgres.Connection
}

func NewCustomerInsightsRepository(conn *postgres.Connection) CustomerInsightsRepository {
	return &customerInsightsRepository{
		conn: conn,
	}
}

// NewCustomersByMonth conta cada cliente no mês-calendário da sua
// primeira compra, em ordem cronológica. O mês sai como time.Time.
func (r *customerInsightsRepository) NewCustomersByMonth() ([]domain.NewCustomersPoint, error) {
	query, args, err := squirrel.
		Select("date_trunc('month', fp.first_sold_at)::date AS month", "COUNT(fp.customer_id) AS new_customers").
		From("first_purchase fp").
		Prefix(`WITH first_purchase AS (
			SELECT s.customer_id, MIN(s.sold_at) AS first_sold_at
			FROM sales s
			GROUP BY s.customer_id
		)`).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	series := make([]domain.NewCustomersPoint, 0)
	for rows.Next() {
		var point domain.NewCustomersPoint
		if err := rows.Scan(&point.Month, &point.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear novos clientes por mês: %w", err)
		}
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

// PurchaseFrequencyDistribution agrupa os clientes pelo número de
// compras (transações distintas). Os buckets saem na ordem natural de
// frequência, do menos para o mais recorrente.
func (r *customerInsightsRepository) PurchaseFrequencyDistribution() ([]domain.FrequencyBucket, error) {
	query, args, err := squirrel.
		Select(
			`CASE
				WHEN cf.purchases = 1 THEN '1 compra'
				WHEN cf.purchases = 2 THEN '2 compras'
				WHEN cf.purchases BETWEEN 3 AND 5 THEN '3-5 compras'
				ELSE '6+ compras'
			END AS bucket`,
			"COUNT(cf.customer_id) AS customers",
		).
		From("customer_frequency cf").
		Prefix(`WITH customer_frequency AS (
			SELECT s.customer_id, COUNT(DISTINCT s.transaction_id) AS purchases
			FROM sales s
			WHERE s.transaction_id IS NOT NULL
			GROUP BY s.customer_id
		)`).
		GroupBy("bucket").
		OrderBy("MIN(cf.purchases) ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	buckets := make([]domain.FrequencyBucket, 0)
	for rows.Next() {
		var bucket domain.FrequencyBucket
		if err := rows.Scan(&bucket.Bucket, &bucket.Customers); err != nil {
			return nil, fmt.Errorf("erro ao escanear distribuição de frequência: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}
