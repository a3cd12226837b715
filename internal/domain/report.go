package domain

// DashboardOverview é a seção "Visão Geral": os KPIs numéricos e os
// cards de destaque derivados das agregações dimensionais
type DashboardOverview struct {
	TotalRevenue     float64 `json:"total_revenue"`
	QuantitySold     int64   `json:"quantity_sold"`
	AverageTicket    float64 `json:"average_ticket"`
	CustomerCount    int64   `json:"customer_count"`
	TopProduct       string  `json:"top_product"`
	TopCategory      string  `json:"top_category"`
	PreferredPayment string  `json:"preferred_payment"`
	PeakWeekday      string  `json:"peak_weekday"`
	PeakHour         string  `json:"peak_hour"`
}

// SalesAnalysis é a seção "Análise de Vendas": periodicidade por dia da
// semana e por hora, mais a evolução diária da receita
type SalesAnalysis struct {
	TotalRevenue  float64            `json:"total_revenue"`
	QuantitySold  int64              `json:"quantity_sold"`
	AverageTicket float64            `json:"average_ticket"`
	PeakWeekday   string             `json:"peak_weekday"`
	PeakHour      string             `json:"peak_hour"`
	ByWeekday     []DimensionRevenue `json:"by_weekday"`
	ByHour        []DimensionRevenue `json:"by_hour"`
	DailySeries   []DailyRevenue     `json:"daily_series"`
}

// ProductAnalysis é a seção "Produtos & Categorias": listas completas
// para a tabela de detalhe e versões limitadas para os gráficos
type ProductAnalysis struct {
	TopProduct    string             `json:"top_product"`
	TopCategory   string             `json:"top_category"`
	Products      []DimensionRevenue `json:"products"`
	Categories    []DimensionRevenue `json:"categories"`
	TopProducts   []DimensionRevenue `json:"top_products"`
	TopCategories []DimensionRevenue `json:"top_categories"`
}

// PaymentAnalysis é a seção "Formas de Pagamento": análise consolidada
// com participação na receita e a visão por frequência de uso
type PaymentAnalysis struct {
	MostProfitable string               `json:"most_profitable"`
	MostFrequent   string               `json:"most_frequent"`
	Analysis       []PaymentMethodShare `json:"analysis"`
	Frequency      []PaymentMethodUsage `json:"frequency"`
}

// CustomerAnalysis é a seção "Clientes": KPIs, leaderboard e as séries
// de aquisição e recorrência
type CustomerAnalysis struct {
	CustomerCount      int64               `json:"customer_count"`
	RevenuePerCustomer float64             `json:"revenue_per_customer"`
	TopCustomers       []DimensionRevenue  `json:"top_customers"`
	NewByMonth         []NewCustomersPoint `json:"new_by_month"`
	Frequency          []FrequencyBucket   `json:"frequency"`
}
