// Package reporting compõe as chamadas do engine de métricas nas seções
// prontas para renderização do dashboard
package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
	"github.com/vfg2006/sales-metrics-api/pkg/utils"
)

const (
	// ChartLimit é o tamanho das fatias exibidas nos gráficos de barras
	ChartLimit = 3
	// LeaderboardLimit é o tamanho do leaderboard de clientes
	LeaderboardLimit = 5
)

// Reporter é a interface consumida pela camada de apresentação. Cada
// operação é uma leitura independente: a falha de uma seção não impede
// as demais de responder.
type Reporter interface {
	Overview() (*domain.DashboardOverview, error)
	SalesAnalysis() (*domain.SalesAnalysis, error)
	ProductAnalysis() (*domain.ProductAnalysis, error)
	PaymentAnalysis() (*domain.PaymentAnalysis, error)
	CustomerAnalysis() (*domain.CustomerAnalysis, error)
	MonthlyVariation() (*domain.MonthlyRevenueVariation, error)
	TopProducts(limit *int) ([]domain.DimensionRevenue, error)
	TopCategories(limit *int) ([]domain.DimensionRevenue, error)
	TopCustomers(limit int) ([]domain.DimensionRevenue, error)
}

type Service struct {
	metricsRepo     repository.SalesMetricsRepository
	aggregationRepo repository.RevenueAggregationRepository
	rankingRepo     repository.RankingRepository
	paymentRepo     repository.PaymentAnalysisRepository
	monthlyRepo     repository.MonthlyRevenueRepository
	customerRepo    repository.CustomerInsightsRepository

	// now é injetável para os testes de variação mensal
	now func() time.Time
}

func NewService(
	metricsRepo repository.SalesMetricsRepository,
	aggregationRepo repository.RevenueAggregationRepository,
	rankingRepo repository.RankingRepository,
	paymentRepo repository.PaymentAnalysisRepository,
	monthlyRepo repository.MonthlyRevenueRepository,
	customerRepo repository.CustomerInsightsRepository,
) *Service {
	return &Service{
		metricsRepo:     metricsRepo,
		aggregationRepo: aggregationRepo,
		rankingRepo:     rankingRepo,
		paymentRepo:     paymentRepo,
		monthlyRepo:     monthlyRepo,
		customerRepo:    customerRepo,
		now:             time.Now,
	}
}

// Overview monta a seção "Visão Geral": KPIs escalares e os cards de
// destaque derivados das agregações dimensionais. Os destaques passam
// todos pelo mesmo TopByRevenue, que define a política de empate e o
// sentinela de "sem dados" em um único lugar.
func (s *Service) Overview() (*domain.DashboardOverview, error) {
	totalRevenue, err := s.metricsRepo.TotalRevenue()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita total")
	}

	quantitySold, err := s.metricsRepo.TotalQuantitySold()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular quantidade vendida")
	}

	averageTicket, err := s.metricsRepo.AverageTicket()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular ticket médio")
	}

	customerCount, err := s.metricsRepo.CustomerCount()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar clientes")
	}

	byProduct, err := s.aggregationRepo.RevenueByProduct()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por produto")
	}

	byCategory, err := s.aggregationRepo.RevenueByCategory()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por categoria")
	}

	byPayment, err := s.aggregationRepo.RevenueByPaymentMethod()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por forma de pagamento")
	}

	byWeekday, err := s.aggregationRepo.RevenueByWeekday()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por dia da semana")
	}

	byHour, err := s.aggregationRepo.RevenueByHourOfDay()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por hora")
	}

	return &domain.DashboardOverview{
		TotalRevenue:     totalRevenue,
		QuantitySold:     quantitySold,
		AverageTicket:    averageTicket,
		CustomerCount:    customerCount,
		TopProduct:       domain.TopByRevenue(byProduct),
		TopCategory:      domain.TopByRevenue(byCategory),
		PreferredPayment: domain.TopByRevenue(byPayment),
		PeakWeekday:      domain.TopByRevenue(byWeekday),
		PeakHour:         domain.TopByRevenue(byHour),
	}, nil
}

// SalesAnalysis monta a seção "Análise de Vendas" com a periodicidade
// por dia da semana e por hora, mantidas em ordem cronológica, e a
// série diária para o gráfico de evolução
func (s *Service) SalesAnalysis() (*domain.SalesAnalysis, error) {
	totalRevenue, err := s.metricsRepo.TotalRevenue()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita total")
	}

	quantitySold, err := s.metricsRepo.TotalQuantitySold()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular quantidade vendida")
	}

	averageTicket, err := s.metricsRepo.AverageTicket()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular ticket médio")
	}

	byWeekday, err := s.aggregationRepo.RevenueByWeekday()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por dia da semana")
	}

	byHour, err := s.aggregationRepo.RevenueByHourOfDay()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar receita por hora")
	}

	dailySeries, err := s.aggregationRepo.RevenueByDay()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar série diária de receita")
	}

	return &domain.SalesAnalysis{
		TotalRevenue:  totalRevenue,
		QuantitySold:  quantitySold,
		AverageTicket: averageTicket,
		PeakWeekday:   domain.TopByRevenue(byWeekday),
		PeakHour:      domain.TopByRevenue(byHour),
		ByWeekday:     byWeekday,
		ByHour:        byHour,
		DailySeries:   dailySeries,
	}, nil
}

// ProductAnalysis monta a seção "Produtos & Categorias": as listas
// completas alimentam as tabelas de detalhe e as fatias limitadas os
// gráficos, como duas execuções da mesma consulta ordenada
func (s *Service) ProductAnalysis() (*domain.ProductAnalysis, error) {
	products, err := s.rankingRepo.TopProducts(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar produtos por receita")
	}

	categories, err := s.rankingRepo.TopCategories(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar categorias por receita")
	}

	return &domain.ProductAnalysis{
		TopProduct:    domain.TopByRevenue(products),
		TopCategory:   domain.TopByRevenue(categories),
		Products:      products,
		Categories:    categories,
		TopProducts:   prefix(products, ChartLimit),
		TopCategories: prefix(categories, ChartLimit),
	}, nil
}

// PaymentAnalysis monta a seção "Formas de Pagamento", com a
// participação de cada forma na receita total do relatório
func (s *Service) PaymentAnalysis() (*domain.PaymentAnalysis, error) {
	analysis, err := s.paymentRepo.Analysis()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar formas de pagamento")
	}

	frequency, err := s.paymentRepo.Frequency()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular frequência das formas de pagamento")
	}

	mostProfitable := domain.NoDataLabel
	if len(analysis) > 0 {
		mostProfitable = analysis[0].Description
	}

	mostFrequent := domain.NoDataLabel
	if len(frequency) > 0 {
		mostFrequent = frequency[0].Description
	}

	return &domain.PaymentAnalysis{
		MostProfitable: mostProfitable,
		MostFrequent:   mostFrequent,
		Analysis:       participationShare(analysis),
		Frequency:      frequency,
	}, nil
}

// CustomerAnalysis monta a seção "Clientes": KPIs, o leaderboard e as
// séries de aquisição e recorrência
func (s *Service) CustomerAnalysis() (*domain.CustomerAnalysis, error) {
	customerCount, err := s.metricsRepo.CustomerCount()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar clientes")
	}

	revenuePerCustomer, err := s.metricsRepo.AverageRevenuePerCustomer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita média por cliente")
	}

	topCustomers, err := s.rankingRepo.TopCustomers(LeaderboardLimit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar leaderboard de clientes")
	}

	newByMonth, err := s.customerRepo.NewCustomersByMonth()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular novos clientes por mês")
	}

	frequency, err := s.customerRepo.PurchaseFrequencyDistribution()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular distribuição de frequência")
	}

	return &domain.CustomerAnalysis{
		CustomerCount:      customerCount,
		RevenuePerCustomer: revenuePerCustomer,
		TopCustomers:       topCustomers,
		NewByMonth:         newByMonth,
		Frequency:          frequency,
	}, nil
}

// MonthlyVariation compara a receita do mês-calendário corrente com a do
// anterior, cada uma somada de forma independente. Mês anterior sem
// receita produz o sentinela de crescimento indefinido, nunca Inf/NaN.
func (s *Service) MonthlyVariation() (*domain.MonthlyRevenueVariation, error) {
	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	current, err := s.monthlyRepo.RevenueByMonth(firstOfMonth)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita do mês atual")
	}

	previous, err := s.monthlyRepo.RevenueByMonth(firstOfMonth.AddDate(0, -1, 0))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular receita do mês anterior")
	}

	result := &domain.MonthlyRevenueVariation{
		CurrentMonth:  current,
		PreviousMonth: previous,
	}

	if previous == 0 {
		result.UndefinedGrowth = true
		return result, nil
	}

	variation := utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	result.Variation = &variation

	return result, nil
}

func (s *Service) TopProducts(limit *int) ([]domain.DimensionRevenue, error) {
	return s.rankingRepo.TopProducts(limit)
}

func (s *Service) TopCategories(limit *int) ([]domain.DimensionRevenue, error) {
	return s.rankingRepo.TopCategories(limit)
}

func (s *Service) TopCustomers(limit int) ([]domain.DimensionRevenue, error) {
	return s.rankingRepo.TopCustomers(limit)
}

// participationShare deriva a participação percentual de cada forma de
// pagamento sobre a receita total do conjunto. Com receita total zero
// todas as linhas recebem 0%, nunca NaN.
func participationShare(rows []domain.PaymentMethodSummary) []domain.PaymentMethodShare {
	var grandTotal float64
	for _, row := range rows {
		grandTotal += row.Total
	}

	shares := make([]domain.PaymentMethodShare, 0, len(rows))
	for _, row := range rows {
		share := 0.0
		if grandTotal > 0 {
			share = utils.RoundWithTwoDecimalPlace(row.Total / grandTotal * 100)
		}
		shares = append(shares, domain.PaymentMethodShare{
			PaymentMethodSummary: row,
			Share:                share,
		})
	}

	return shares
}

func prefix(rows []domain.DimensionRevenue, limit int) []domain.DimensionRevenue {
	if len(rows) <= limit {
		return rows
	}
	return rows[:limit]
}
