package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=monthly_revenue.go -destination=mocks/monthly_revenue.go -package=mocks

// MonthlyRevenueRepository soma a receita de um mês-calendário local.
// A comparação mês atual x mês anterior é feita pelo serviço de
// relatórios com duas chamadas independentes.
type MonthlyRevenueRepository interface {
	RevenueByMonth(ref time.Time) (float64, error)
}

type monthlyRevenueRepository struct {
	conn *postgres.Connection
}

func NewMonthlyRevenueRepository(conn *postgres.Connection) MonthlyRevenueRepository {
	return &monthlyRevenueRepository{
		conn: conn,
	}
}

func (r *monthlyRevenueRepository) RevenueByMonth(ref time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(s.total_amount), 0)").
		From(salesTable).
		Where("to_char(s.sold_at, 'YYYY-MM') = ?", ref.Format("2006-01")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return total, nil
}
