package domain

import "time"

// NoDataLabel é o valor exibido pelos cards de destaque quando uma
// agregação não retorna nenhuma linha
const NoDataLabel = "N/D"

// DimensionRevenue é uma linha de agregação (rótulo da dimensão, receita somada).
// Toda agregação dimensional do engine devolve uma sequência ordenada
// dessas linhas, sem linhas para valores de dimensão sem vendas.
type DimensionRevenue struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// DailyRevenue é um ponto da série temporal de receita por dia.
// O dia é um time.Time de verdade, nunca uma data em string, para que
// gráficos e preenchimento de lacunas funcionem no consumidor.
type DailyRevenue struct {
	Day   time.Time `json:"day"`
	Total float64   `json:"total"`
}

// PaymentMethodSummary consolida, em uma única passada, receita total,
// transações distintas e ticket médio de uma forma de pagamento
type PaymentMethodSummary struct {
	Description   string  `json:"description"`
	Total         float64 `json:"total"`
	Transactions  int64   `json:"transactions"`
	AverageTicket float64 `json:"average_ticket"`
}

// PaymentMethodShare é uma linha de PaymentMethodSummary acrescida da
// participação percentual na receita total do relatório
type PaymentMethodShare struct {
	PaymentMethodSummary
	Share float64 `json:"share"`
}

// PaymentMethodUsage é a visão por frequência: apenas a contagem de
// transações distintas, ordenada por contagem
type PaymentMethodUsage struct {
	Description  string `json:"description"`
	Transactions int64  `json:"transactions"`
}

// MonthlyRevenueVariation compara a receita do mês corrente com a do mês
// anterior. Quando o mês anterior não teve receita a variação percentual
// não é definida: Variation fica nulo e UndefinedGrowth verdadeiro.
type MonthlyRevenueVariation struct {
	CurrentMonth    float64  `json:"current_month"`
	PreviousMonth   float64  `json:"previous_month"`
	Variation       *float64 `json:"variation,omitempty"`
	UndefinedGrowth bool     `json:"undefined_growth"`
}

// NewCustomersPoint é um ponto da série de novos clientes por mês,
// contando cada cliente no mês da sua primeira compra
type NewCustomersPoint struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

// FrequencyBucket agrupa clientes pelo número de compras realizadas
type FrequencyBucket struct {
	Bucket    string `json:"bucket"`
	Customers int64  `json:"customers"`
}

// TopByRevenue devolve o rótulo da linha de maior receita. A política de
// extremo é definida aqui uma única vez: em caso de empate vence a
// primeira linha na ordem de entrada e, para entrada vazia, o resultado
// é o sentinela NoDataLabel.
func TopByRevenue(rows []DimensionRevenue) string {
	if len(rows) == 0 {
		return NoDataLabel
	}

	top := rows[0]
	for _, row := range rows[1:] {
		if row.Total > top.Total {
			top = row
		}
	}

	return top.Label
}
