package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-metrics-api/pkg/log"
)

// GetOverview retorna a seção "Visão Geral" do dashboard
func GetOverview(service reporting.Reporter) http.Handler {
	return sectionHandler("overview", func() (interface{}, error) {
		return service.Overview()
	})
}

// GetSalesAnalysis retorna a seção "Análise de Vendas"
func GetSalesAnalysis(service reporting.Reporter) http.Handler {
	return sectionHandler("sales", func() (interface{}, error) {
		return service.SalesAnalysis()
	})
}

// GetProductAnalysis retorna a seção "Produtos & Categorias"
func GetProductAnalysis(service reporting.Reporter) http.Handler {
	return sectionHandler("products", func() (interface{}, error) {
		return service.ProductAnalysis()
	})
}

// GetPaymentAnalysis retorna a seção "Formas de Pagamento"
func GetPaymentAnalysis(service reporting.Reporter) http.Handler {
	return sectionHandler("payments", func() (interface{}, error) {
		return service.PaymentAnalysis()
	})
}

// GetCustomerAnalysis retorna a seção "Clientes"
func GetCustomerAnalysis(service reporting.Reporter) http.Handler {
	return sectionHandler("customers", func() (interface{}, error) {
		return service.CustomerAnalysis()
	})
}

// sectionHandler isola a falha de cada seção: um erro de storage vira
// SRV_002 apenas para esta resposta, e o cliente degrada o card
// correspondente sem abortar o restante do relatório
func sectionHandler(section string, fetch func() (interface{}, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, err := fetch()
		if err != nil {
			logger.WithError(err).Errorf("dashboard: erro ao montar seção %s", section)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Errorf("dashboard: erro ao enviar resposta da seção %s", section)
		}
	})
}
