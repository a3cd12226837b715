package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
)

//go:generate mockgen -source=revenue_aggregation.go -destination=mocks/revenue_aggregation.go -package=mocks

// RevenueAggregationRepository agrupa a receita por uma dimensão do
// ledger. Cada método devolve uma linha por valor da dimensão com
// vendas; valores sem vendas não aparecem. As agregações de hora e dia
// da semana são ordenadas cronologicamente, as demais por receita
// decrescente com desempate pelo rótulo.
type RevenueAggregationRepository interface {
	RevenueByProduct() ([]domain.DimensionRevenue, error)
	RevenueByCategory() ([]domain.DimensionRevenue, error)
	RevenueByPaymentMethod() ([]domain.DimensionRevenue, error)
	RevenueByHourOfDay() ([]domain.DimensionRevenue, error)
	RevenueByWeekday() ([]domain.DimensionRevenue, error)
	RevenueByDay() ([]domain.DailyRevenue, error)
}

type revenueAggregationRepository struct {
	conn *postgres.Connection
}

func NewRevenueAggregationRepository(conn *postgres.Connection) RevenueAggregationRepository {
	return &revenueAggregationRepository{
		conn: conn,
	}
}

// weekdayNames traduz o índice de EXTRACT(DOW) (0=domingo .. 6=sábado)
// para o nome do dia em português
var weekdayNames = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

func weekdayName(index int) string {
	if index < 0 || index >= len(weekdayNames) {
		return domain.NoDataLabel
	}
	return weekdayNames[index]
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02dh", hour)
}

func (r *revenueAggregationRepository) RevenueByProduct() ([]domain.DimensionRevenue, error) {
	return r.labeledRevenue(
		squirrel.
			Select("p.name", "SUM(s.total_amount) AS total").
			From(salesTable).
			Join("products p ON p.id = s.product_id").
			GroupBy("p.name").
			OrderBy("total DESC", "p.name ASC"),
	)
}

func (r *revenueAggregationRepository) RevenueByCategory() ([]domain.DimensionRevenue, error) {
	return r.labeledRevenue(
		squirrel.
			Select("cat.name", "SUM(s.total_amount) AS total").
			From(salesTable).
			Join("products p ON p.id = s.product_id").
			Join("categories cat ON cat.id = p.category_id").
			GroupBy("cat.name").
			OrderBy("total DESC", "cat.name ASC"),
	)
}

func (r *revenueAggregationRepository) RevenueByPaymentMethod() ([]domain.DimensionRevenue, error) {
	return r.labeledRevenue(
		squirrel.
			Select("pm.description", "SUM(s.total_amount) AS total").
			From(salesTable).
			Join("payment_methods pm ON pm.id = s.payment_method_id").
			GroupBy("pm.description").
			OrderBy("total DESC", "pm.description ASC"),
	)
}

// RevenueByHourOfDay agrupa pela hora local da venda, em ordem
// cronológica (00h..23h). Quem precisa do "horário de pico" deve
// reordenar por receita via domain.TopByRevenue.
func (r *revenueAggregationRepository) RevenueByHourOfDay() ([]domain.DimensionRevenue, error) {
	query, args, err := squirrel.
		Select("EXTRACT(HOUR FROM s.sold_at)::int AS hour", "SUM(s.total_amount) AS total").
		From(salesTable).
		GroupBy("hour").
		OrderBy("hour ASC").
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

	result := make([]domain.DimensionRevenue, 0)
	for rows.Next() {
		var hour int
		var total float64
		if err := rows.Scan(&hour, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita por hora: %w", err)
		}
		result = append(result, domain.DimensionRevenue{Label: hourLabel(hour), Total: total})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// RevenueByWeekday agrupa pelo dia da semana local (0=domingo), em ordem
// cronológica, com o rótulo já traduzido
func (r *revenueAggregationRepository) RevenueByWeekday() ([]domain.DimensionRevenue, error) {
	query, args, err := squirrel.
		Select("EXTRACT(DOW FROM s.sold_at)::int AS weekday", "SUM(s.total_amount) AS total").
		From(salesTable).
		GroupBy("weekday").
		OrderBy("weekday ASC").
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

	result := make([]domain.DimensionRevenue, 0)
	for rows.Next() {
		var weekday int
		var total float64
		if err := rows.Scan(&weekday, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita por dia da semana: %w", err)
		}
		result = append(result, domain.DimensionRevenue{Label: weekdayName(weekday), Total: total})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// RevenueByDay devolve a série diária de receita em ordem cronológica.
// O dia é escaneado como time.Time direto do banco, nunca como string,
// para o gráfico de evolução no consumidor (ver DailyRevenue).
func (r *revenueAggregationRepository) RevenueByDay() ([]domain.DailyRevenue, error) {
	query, args, err := squirrel.
		Select("DATE(s.sold_at) AS day", "SUM(s.total_amount) AS total").
		From(salesTable).
		GroupBy("day").
		OrderBy("day ASC").
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

	series := make([]domain.DailyRevenue, 0)
	for rows.Next() {
		var point domain.DailyRevenue
		if err := rows.Scan(&point.Day, &point.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita diária: %w", err)
		}
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

func (r *revenueAggregationRepository) labeledRevenue(builder squirrel.SelectBuilder) ([]domain.DimensionRevenue, error) {
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
			return nil, fmt.Errorf("erro ao escanear linha de agregação: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
