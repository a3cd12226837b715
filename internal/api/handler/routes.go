package handler

import (
	"net/http"

	"github.com/vfg2006/sales-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-metrics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Dashboard retorna as rotas das seções do dashboard. Cada seção é uma
// operação independente: a falha de uma não derruba as demais.
func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/dashboard/sales",
			Method:  http.MethodGet,
			Handler: GetSalesAnalysis(service),
		},
		{
			Path:    "/v1/dashboard/products",
			Method:  http.MethodGet,
			Handler: GetProductAnalysis(service),
		},
		{
			Path:    "/v1/dashboard/payments",
			Method:  http.MethodGet,
			Handler: GetPaymentAnalysis(service),
		},
		{
			Path:    "/v1/dashboard/customers",
			Method:  http.MethodGet,
			Handler: GetCustomerAnalysis(service),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/revenue/monthly-variation",
			Method:  http.MethodGet,
			Handler: GetMonthlyVariation(service),
		},
		{
			Path:    "/v1/metrics/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/metrics/top-categories",
			Method:  http.MethodGet,
			Handler: GetTopCategories(service),
		},
		{
			Path:    "/v1/metrics/top-customers",
			Method:  http.MethodGet,
			Handler: GetTopCustomers(service),
		},
	}
}
