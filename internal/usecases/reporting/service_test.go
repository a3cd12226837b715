package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockSalesMetricsRepository,
	*mocks.MockRevenueAggregationRepository,
	*mocks.MockRankingRepository,
	*mocks.MockPaymentAnalysisRepository,
	*mocks.MockMonthlyRevenueRepository,
	*mocks.MockCustomerInsightsRepository,
) {
	metricsRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	aggregationRepo := mocks.NewMockRevenueAggregationRepository(ctrl)
	rankingRepo := mocks.NewMockRankingRepository(ctrl)
	paymentRepo := mocks.NewMockPaymentAnalysisRepository(ctrl)
	monthlyRepo := mocks.NewMockMonthlyRevenueRepository(ctrl)
	customerRepo := mocks.NewMockCustomerInsightsRepository(ctrl)

	service := NewService(metricsRepo, aggregationRepo, rankingRepo, paymentRepo, monthlyRepo, customerRepo)

	return service, metricsRepo, aggregationRepo, rankingRepo, paymentRepo, monthlyRepo, customerRepo
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, aggregationRepo, _, _, _, _ := newServiceWithMocks(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, overview *domain.DashboardOverview, err error)
	}{
		{
			name: "Ledger com vendas deve montar todos os KPIs e destaques",
			setup: func() {
				metricsRepo.EXPECT().TotalRevenue().Return(1500.0, nil)
				metricsRepo.EXPECT().TotalQuantitySold().Return(int64(320), nil)
				metricsRepo.EXPECT().AverageTicket().Return(25.5, nil)
				metricsRepo.EXPECT().CustomerCount().Return(int64(48), nil)

				aggregationRepo.EXPECT().RevenueByProduct().Return([]domain.DimensionRevenue{
					{Label: "Açaí 500ml", Total: 900.0},
					{Label: "Açaí 300ml", Total: 600.0},
				}, nil)
				aggregationRepo.EXPECT().RevenueByCategory().Return([]domain.DimensionRevenue{
					{Label: "Açaí", Total: 1200.0},
					{Label: "Bebidas", Total: 300.0},
				}, nil)
				aggregationRepo.EXPECT().RevenueByPaymentMethod().Return([]domain.DimensionRevenue{
					{Label: "Pix", Total: 800.0},
					{Label: "Dinheiro", Total: 700.0},
				}, nil)
				aggregationRepo.EXPECT().RevenueByWeekday().Return([]domain.DimensionRevenue{
					{Label: "Domingo", Total: 200.0},
					{Label: "Sexta-feira", Total: 600.0},
					{Label: "Sábado", Total: 700.0},
				}, nil)
				// Série cronológica: o pico não é a primeira linha
				aggregationRepo.EXPECT().RevenueByHourOfDay().Return([]domain.DimensionRevenue{
					{Label: "09h", Total: 150.0},
					{Label: "14h", Total: 950.0},
					{Label: "23h", Total: 400.0},
				}, nil)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1500.0, overview.TotalRevenue)
				assert.Equal(t, int64(320), overview.QuantitySold)
				assert.Equal(t, 25.5, overview.AverageTicket)
				assert.Equal(t, int64(48), overview.CustomerCount)
				assert.Equal(t, "Açaí 500ml", overview.TopProduct)
				assert.Equal(t, "Açaí", overview.TopCategory)
				assert.Equal(t, "Pix", overview.PreferredPayment)
				assert.Equal(t, "Sábado", overview.PeakWeekday)
				assert.Equal(t, "14h", overview.PeakHour)
			},
		},
		{
			name: "Ledger vazio deve responder com zeros e sentinelas, nunca com erro",
			setup: func() {
				metricsRepo.EXPECT().TotalRevenue().Return(0.0, nil)
				metricsRepo.EXPECT().TotalQuantitySold().Return(int64(0), nil)
				metricsRepo.EXPECT().AverageTicket().Return(0.0, nil)
				metricsRepo.EXPECT().CustomerCount().Return(int64(0), nil)

				aggregationRepo.EXPECT().RevenueByProduct().Return([]domain.DimensionRevenue{}, nil)
				aggregationRepo.EXPECT().RevenueByCategory().Return([]domain.DimensionRevenue{}, nil)
				aggregationRepo.EXPECT().RevenueByPaymentMethod().Return([]domain.DimensionRevenue{}, nil)
				aggregationRepo.EXPECT().RevenueByWeekday().Return([]domain.DimensionRevenue{}, nil)
				aggregationRepo.EXPECT().RevenueByHourOfDay().Return([]domain.DimensionRevenue{}, nil)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, overview.TotalRevenue)
				assert.Equal(t, int64(0), overview.QuantitySold)
				assert.Equal(t, domain.NoDataLabel, overview.TopProduct)
				assert.Equal(t, domain.NoDataLabel, overview.TopCategory)
				assert.Equal(t, domain.NoDataLabel, overview.PreferredPayment)
				assert.Equal(t, domain.NoDataLabel, overview.PeakWeekday)
				assert.Equal(t, domain.NoDataLabel, overview.PeakHour)
			},
		},
		{
			name: "Falha do repositório deve propagar o erro",
			setup: func() {
				metricsRepo.EXPECT().TotalRevenue().Return(0.0, assert.AnError)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				assert.Error(t, err)
				assert.Nil(t, overview)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			overview, err := service.Overview()
			tt.validate(t, overview, err)
		})
	}
}

func TestService_SalesAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, aggregationRepo, _, _, _, _ := newServiceWithMocks(ctrl)

	byWeekday := []domain.DimensionRevenue{
		{Label: "Domingo", Total: 120.0},
		{Label: "Segunda-feira", Total: 80.0},
		{Label: "Sexta-feira", Total: 300.0},
	}
	byHour := []domain.DimensionRevenue{
		{Label: "10h", Total: 90.0},
		{Label: "15h", Total: 210.0},
	}
	dailySeries := []domain.DailyRevenue{
		{Day: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Total: 100.0},
		{Day: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Total: 400.0},
	}

	metricsRepo.EXPECT().TotalRevenue().Return(500.0, nil)
	metricsRepo.EXPECT().TotalQuantitySold().Return(int64(60), nil)
	metricsRepo.EXPECT().AverageTicket().Return(15.0, nil)
	aggregationRepo.EXPECT().RevenueByWeekday().Return(byWeekday, nil)
	aggregationRepo.EXPECT().RevenueByHourOfDay().Return(byHour, nil)
	aggregationRepo.EXPECT().RevenueByDay().Return(dailySeries, nil)

	analysis, err := service.SalesAnalysis()

	assert.NoError(t, err)
	assert.Equal(t, 500.0, analysis.TotalRevenue)
	assert.Equal(t, "Sexta-feira", analysis.PeakWeekday)
	assert.Equal(t, "15h", analysis.PeakHour)
	// As séries seguem em ordem cronológica, sem reordenação pelo pico
	assert.Equal(t, byWeekday, analysis.ByWeekday)
	assert.Equal(t, byHour, analysis.ByHour)
	assert.Equal(t, dailySeries, analysis.DailySeries)
}

func TestService_ProductAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, rankingRepo, _, _, _ := newServiceWithMocks(ctrl)

	products := []domain.DimensionRevenue{
		{Label: "Açaí 500ml", Total: 900.0},
		{Label: "Açaí 300ml", Total: 600.0},
		{Label: "Suco de Laranja", Total: 200.0},
		{Label: "Granola Extra", Total: 50.0},
	}
	categories := []domain.DimensionRevenue{
		{Label: "Açaí", Total: 1500.0},
		{Label: "Bebidas", Total: 200.0},
	}

	rankingRepo.EXPECT().TopProducts(nil).Return(products, nil)
	rankingRepo.EXPECT().TopCategories(nil).Return(categories, nil)

	analysis, err := service.ProductAnalysis()

	assert.NoError(t, err)
	assert.Equal(t, "Açaí 500ml", analysis.TopProduct)
	assert.Equal(t, "Açaí", analysis.TopCategory)
	assert.Len(t, analysis.Products, 4)
	// O gráfico recebe só o prefixo da lista completa, já ordenada
	assert.Len(t, analysis.TopProducts, ChartLimit)
	assert.Equal(t, products[:ChartLimit], analysis.TopProducts)
	// Lista menor que o limite vai inteira para o gráfico
	assert.Equal(t, categories, analysis.TopCategories)
}

func TestService_PaymentAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, paymentRepo, _, _ := newServiceWithMocks(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, analysis *domain.PaymentAnalysis, err error)
	}{
		{
			name: "Líder por receita e líder por frequência podem divergir",
			setup: func() {
				paymentRepo.EXPECT().Analysis().Return([]domain.PaymentMethodSummary{
					{Description: "Cartão de Crédito", Total: 600.0, Transactions: 10, AverageTicket: 60.0},
					{Description: "Pix", Total: 400.0, Transactions: 40, AverageTicket: 10.0},
				}, nil)
				paymentRepo.EXPECT().Frequency().Return([]domain.PaymentMethodUsage{
					{Description: "Pix", Transactions: 40},
					{Description: "Cartão de Crédito", Transactions: 10},
				}, nil)
			},
			validate: func(t *testing.T, analysis *domain.PaymentAnalysis, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Cartão de Crédito", analysis.MostProfitable)
				assert.Equal(t, "Pix", analysis.MostFrequent)

				// Participação calculada sobre a receita total (1000)
				assert.Equal(t, 60.0, analysis.Analysis[0].Share)
				assert.Equal(t, 40.0, analysis.Analysis[1].Share)

				var shareSum float64
				for _, row := range analysis.Analysis {
					shareSum += row.Share
				}
				assert.InDelta(t, 100.0, shareSum, 0.01)
			},
		},
		{
			name: "Receita total zero deve produzir participação 0, nunca NaN",
			setup: func() {
				paymentRepo.EXPECT().Analysis().Return([]domain.PaymentMethodSummary{
					{Description: "Dinheiro", Total: 0, Transactions: 0, AverageTicket: 0},
				}, nil)
				paymentRepo.EXPECT().Frequency().Return([]domain.PaymentMethodUsage{
					{Description: "Dinheiro", Transactions: 0},
				}, nil)
			},
			validate: func(t *testing.T, analysis *domain.PaymentAnalysis, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, analysis.Analysis[0].Share)
			},
		},
		{
			name: "Sem formas de pagamento os destaques viram N/D",
			setup: func() {
				paymentRepo.EXPECT().Analysis().Return([]domain.PaymentMethodSummary{}, nil)
				paymentRepo.EXPECT().Frequency().Return([]domain.PaymentMethodUsage{}, nil)
			},
			validate: func(t *testing.T, analysis *domain.PaymentAnalysis, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.NoDataLabel, analysis.MostProfitable)
				assert.Equal(t, domain.NoDataLabel, analysis.MostFrequent)
				assert.Empty(t, analysis.Analysis)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			analysis, err := service.PaymentAnalysis()
			tt.validate(t, analysis, err)
		})
	}
}

func TestService_CustomerAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, metricsRepo, _, rankingRepo, _, _, customerRepo := newServiceWithMocks(ctrl)

	topCustomers := []domain.DimensionRevenue{
		{Label: "Ana Souza", Total: 320.0},
		{Label: "Bruno Lima", Total: 180.0},
	}
	newByMonth := []domain.NewCustomersPoint{
		{Month: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Count: 12},
		{Month: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Count: 7},
	}
	frequency := []domain.FrequencyBucket{
		{Bucket: "1 compra", Customers: 20},
		{Bucket: "2 compras", Customers: 8},
		{Bucket: "3-5 compras", Customers: 5},
		{Bucket: "6+ compras", Customers: 2},
	}

	metricsRepo.EXPECT().CustomerCount().Return(int64(35), nil)
	metricsRepo.EXPECT().AverageRevenuePerCustomer().Return(42.8, nil)
	rankingRepo.EXPECT().TopCustomers(LeaderboardLimit).Return(topCustomers, nil)
	customerRepo.EXPECT().NewCustomersByMonth().Return(newByMonth, nil)
	customerRepo.EXPECT().PurchaseFrequencyDistribution().Return(frequency, nil)

	analysis, err := service.CustomerAnalysis()

	assert.NoError(t, err)
	assert.Equal(t, int64(35), analysis.CustomerCount)
	assert.Equal(t, 42.8, analysis.RevenuePerCustomer)
	assert.Equal(t, topCustomers, analysis.TopCustomers)
	assert.Equal(t, newByMonth, analysis.NewByMonth)
	assert.Equal(t, frequency, analysis.Frequency)
}

func TestService_MonthlyVariation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _, monthlyRepo, _ := newServiceWithMocks(ctrl)

	// Data de referência fixa: 15 de junho de 2024
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	}

	currentMonth := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	previousMonth := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *domain.MonthlyRevenueVariation, err error)
	}{
		{
			name: "Crescimento deve calcular a variação percentual",
			setup: func() {
				monthlyRepo.EXPECT().RevenueByMonth(currentMonth).Return(1500.0, nil)
				monthlyRepo.EXPECT().RevenueByMonth(previousMonth).Return(1000.0, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlyRevenueVariation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1500.0, result.CurrentMonth)
				assert.Equal(t, 1000.0, result.PreviousMonth)
				assert.False(t, result.UndefinedGrowth)
				if assert.NotNil(t, result.Variation) {
					assert.Equal(t, 50.0, *result.Variation)
				}
			},
		},
		{
			name: "Queda deve produzir variação negativa",
			setup: func() {
				monthlyRepo.EXPECT().RevenueByMonth(currentMonth).Return(800.0, nil)
				monthlyRepo.EXPECT().RevenueByMonth(previousMonth).Return(1000.0, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlyRevenueVariation, err error) {
				assert.NoError(t, err)
				if assert.NotNil(t, result.Variation) {
					assert.Equal(t, -20.0, *result.Variation)
				}
			},
		},
		{
			name: "Mês anterior sem receita deve marcar crescimento indefinido, nunca Inf",
			setup: func() {
				monthlyRepo.EXPECT().RevenueByMonth(currentMonth).Return(500.0, nil)
				monthlyRepo.EXPECT().RevenueByMonth(previousMonth).Return(0.0, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlyRevenueVariation, err error) {
				assert.NoError(t, err)
				assert.True(t, result.UndefinedGrowth)
				assert.Nil(t, result.Variation)
				assert.Equal(t, 500.0, result.CurrentMonth)
			},
		},
		{
			name: "Dois meses sem receita também são crescimento indefinido",
			setup: func() {
				monthlyRepo.EXPECT().RevenueByMonth(currentMonth).Return(0.0, nil)
				monthlyRepo.EXPECT().RevenueByMonth(previousMonth).Return(0.0, nil)
			},
			validate: func(t *testing.T, result *domain.MonthlyRevenueVariation, err error) {
				assert.NoError(t, err)
				assert.True(t, result.UndefinedGrowth)
				assert.Nil(t, result.Variation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.MonthlyVariation()
			tt.validate(t, result, err)
		})
	}
}

func TestService_Rankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, rankingRepo, _, _, _ := newServiceWithMocks(ctrl)

	limit := 2
	expected := []domain.DimensionRevenue{
		{Label: "Açaí 500ml", Total: 900.0},
		{Label: "Açaí 300ml", Total: 600.0},
	}

	rankingRepo.EXPECT().TopProducts(&limit).Return(expected, nil)
	rankingRepo.EXPECT().TopCategories(&limit).Return(expected, nil)
	rankingRepo.EXPECT().TopCustomers(5).Return(expected, nil)

	products, err := service.TopProducts(&limit)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)

	categories, err := service.TopCategories(&limit)
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)

	customers, err := service.TopCustomers(5)
	assert.NoError(t, err)
	assert.Equal(t, expected, customers)
}

func TestParticipationShare(t *testing.T) {
	rows := []domain.PaymentMethodSummary{
		{Description: "Pix", Total: 333.33},
		{Description: "Dinheiro", Total: 333.33},
		{Description: "Cartão de Crédito", Total: 333.34},
	}

	shares := participationShare(rows)

	assert.Len(t, shares, 3)
	var sum float64
	for _, s := range shares {
		sum += s.Share
	}
	assert.InDelta(t, 100.0, sum, 0.05)
}
