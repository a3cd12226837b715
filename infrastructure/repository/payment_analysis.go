package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
)

//go:generate mockgen -source=payment_analysis.go -destination=mocks/payment_analysis.go -package=mocks

// PaymentAnalysisRepository consolida as métricas por forma de
// pagamento. Só entram formas com ao menos uma venda agrupada em
// transação; o líder por receita e o líder por frequência podem ser
// formas diferentes, por isso as duas visões são operações separadas.
type PaymentAnalysisRepository interface {
	Analysis() ([]domain.PaymentMethodSummary, error)
	Frequency() ([]domain.PaymentMethodUsage, error)
}

type paymentAnalysisRepository struct {
	conn *postgres.Connection
}

func NewPaymentAnalysisRepository(conn *postgres.Connection) PaymentAnalysisRepository {
	return &paymentAnalysisRepository{
		conn: conn,
	}
}

// Analysis calcula receita total, transações distintas e ticket médio
// de cada forma de pagamento em uma única passada, ordenado por receita
func (r *paymentAnalysisRepository) Analysis() ([]domain.PaymentMethodSummary, error) {
	query, args, err := squirrel.
		Select(
			"pm.description",
			"SUM(s.total_amount) AS total",
			"COUNT(DISTINCT s.transaction_id) AS transactions",
			`CASE
				WHEN COUNT(DISTINCT s.transaction_id) > 0
				THEN SUM(s.total_amount) / COUNT(DISTINCT s.transaction_id)
				ELSE 0
			END AS average_ticket`,
		).
		From(salesTable).
		Join("payment_methods pm ON pm.id = s.payment_method_id").
		Where("s.transaction_id IS NOT NULL").
		GroupBy("pm.description").
		OrderBy("total DESC", "pm.description ASC").
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

	result := make([]domain.PaymentMethodSummary, 0)
	for rows.Next() {
		var summary domain.PaymentMethodSummary
		if err := rows.Scan(&summary.Description, &summary.Total, &summary.Transactions, &summary.AverageTicket); err != nil {
			return nil, fmt.Errorf("erro ao escanear análise de pagamento: %w", err)
		}
		result = append(result, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// Frequency devolve apenas a contagem de transações distintas por forma
// de pagamento, ordenada pela contagem
func (r *paymentAnalysisRepository) Frequency() ([]domain.PaymentMethodUsage, error) {
	query, args, err := squirrel.
		Select("pm.description", "COUNT(DISTINCT s.transaction_id) AS transactions").
		From(salesTable).
		Join("payment_methods pm ON pm.id = s.payment_method_id").
		Where("s.transaction_id IS NOT NULL").
		GroupBy("pm.description").
		OrderBy("transactions DESC", "pm.description ASC").
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

	result := make([]domain.PaymentMethodUsage, 0)
	for rows.Next() {
		var usage domain.PaymentMethodUsage
		if err := rows.Scan(&usage.Description, &usage.Transactions); err != nil {
			return nil, fmt.Errorf("erro ao escanear frequência de pagamento: %w", err)
		}
		result = append(result, usage)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
