// Package repository contém as implementações dos repositórios de métricas sobre o ledger de vendas
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
)

const (
	salesTable          = "sales s"
	customersTable      = "customers c"
	productsTable       = "products p"
	categoriesTable     = "categories cat"
	paymentMethodsTable = "payment_methods pm"
)

//go:generate mockgen -source=sales_metrics.go -destination=mocks/sales_metrics.go -package=mocks

// SalesMetricsRepository calcula os KPIs escalares do dashboard.
// Ausência de dados nunca é erro: cada métrica tem um zero definido.
type SalesMetricsRepository interface {
	TotalRevenue() (float64, error)
	TotalQuantitySold() (int64, error)
	AverageTicket() (float64, error)
	CustomerCount() (int64, error)
	AverageRevenuePerCustomer() (float64, error)
}

type salesMetricsRepository struct {
	conn *postgres.Connection
}

func NewSalesMetricsRepository(conn *postgres.Connection) SalesMetricsRepository {
	return &salesMetricsRepository{
		conn: conn,
	}
}

// TotalRevenue soma o valor total de todos os itens vendidos
func (r *salesMetricsRepository) TotalRevenue() (float64, error) {
	return r.scalarFloat(
		squirrel.
			Select("COALESCE(SUM(s.total_amount), 0)").
			From(salesTable),
	)
}

// TotalQuantitySold soma as quantidades de todos os itens vendidos
func (r *salesMetricsRepository) TotalQuantitySold() (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(s.quantity), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var quantity int64
	if err := r.conn.QueryRow(query, args...).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return quantity, nil
}

// AverageTicket calcula receita por transação distinta. Linhas sem
// transaction_id ficam fora do numerador e do denominador; o NULLIF
// evita divisão por zero quando não há transações agrupadas.
func (r *salesMetricsRepository) AverageTicket() (float64, error) {
	return r.scalarFloat(
		squirrel.
			Select("COALESCE(SUM(s.total_amount) / NULLIF(COUNT(DISTINCT s.transaction_id), 0), 0)").
			From(salesTable).
			Where("s.transaction_id IS NOT NULL"),
	)
}

// CustomerCount conta os clientes cadastrados na dimensão, tenham ou não compras
func (r *salesMetricsRepository) CustomerCount() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}

// AverageRevenuePerCustomer divide a receita total pelos clientes
// distintos com ao menos uma venda (derivado da tabela fato, não do
// cadastro completo de clientes)
func (r *salesMetricsRepository) AverageRevenuePerCustomer() (float64, error) {
	return r.scalarFloat(
		squirrel.
			Select("COALESCE(SUM(s.total_amount) / NULLIF(COUNT(DISTINCT s.customer_id), 0), 0)").
			From(salesTable),
	)
}

func (r *salesMetricsRepository) scalarFloat(builder squirrel.SelectBuilder) (float64, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value float64
	if err := r.conn.QueryRow(query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return value, nil
}
