package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-metrics-api/infrastructure/repository"
	"github.com/vfg2006/sales-metrics-api/internal/domain"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-metrics-api/pkg/log"
)

// GetMonthlyVariation retorna a variação da receita entre o mês
// corrente e o anterior, com o sentinela de crescimento indefinido
// quando o mês anterior não teve receita
func GetMonthlyVariation(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		variation, err := service.MonthlyVariation()
		if err != nil {
			logger.WithError(err).Error("metrics: erro ao calcular variação mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(variation); err != nil {
			logger.WithError(err).Error("metrics: erro ao enviar resposta da variação mensal")
		}
	})
}

// GetTopProducts retorna o ranking de produtos por receita; sem o
// parâmetro limit devolve todos os grupos, ainda ordenados
func GetTopProducts(service reporting.Reporter) http.Handler {
	return rankingHandler("top-products", func(limit *int) ([]domain.DimensionRevenue, error) {
		return service.TopProducts(limit)
	})
}

// GetTopCategories retorna o ranking de categorias por receita
func GetTopCategories(service reporting.Reporter) http.Handler {
	return rankingHandler("top-categories", func(limit *int) ([]domain.DimensionRevenue, error) {
		return service.TopCategories(limit)
	})
}

// GetTopCustomers retorna o leaderboard de clientes; aqui o limite é
// obrigatório, não existe modo sem ranking
func GetTopCustomers(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawLimit := r.URL.Query().Get("limit")
		if rawLimit == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro limit é obrigatório", nil)
			return
		}

		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro", nil)
			return
		}

		ranking, err := service.TopCustomers(limit)
		if err != nil {
			writeRankingError(w, logger, "top-customers", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranking); err != nil {
			logger.WithError(err).Error("metrics: erro ao enviar resposta do ranking top-customers")
		}
	})
}

func rankingHandler(name string, fetch func(limit *int) ([]domain.DimensionRevenue, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var limit *int
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro", nil)
				return
			}
			limit = &parsed
		}

		ranking, err := fetch(limit)
		if err != nil {
			writeRankingError(w, logger, name, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranking); err != nil {
			logger.WithError(err).Errorf("metrics: erro ao enviar resposta do ranking %s", name)
		}
	})
}

// writeRankingError separa violação de contrato (limite negativo) de
// falha de storage
func writeRankingError(w http.ResponseWriter, logger log.Logger, name string, err error) {
	if errors.Is(err, repository.ErrInvalidLimit) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Limite não pode ser negativo", nil)
		return
	}

	logger.WithError(err).Errorf("metrics: erro ao montar ranking %s", name)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
}
