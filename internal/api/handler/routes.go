package handler

import (
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/api/handler/router"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/analyzing"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/cataloging"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/selling"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/stocking"
	"github.com/MHDGouse/Inventory-Backend/pkg/middleware"
)

// maxBodyBytes limita o corpo das rotas de escrita
const maxBodyBytes = 1 << 20

var bodyLimit = []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/products",
			Method:      http.MethodPost,
			Handler:     RegisterProduct(service),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/api/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:        "/api/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: bodyLimit,
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/sales",
			Method:      http.MethodPost,
			Handler:     AddSale(service),
			Middlewares: bodyLimit,
		},
		{
			Path:        "/api/v1/sales/batch",
			Method:      http.MethodPost,
			Handler:     AddSaleBatch(service),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/api/v1/sales/date/:date",
			Method:  http.MethodGet,
			Handler: ListSalesByDate(service),
		},
		{
			Path:    "/api/v1/sales/date-range",
			Method:  http.MethodGet,
			Handler: ListSalesByDateRange(service),
		},
		{
			Path:        "/api/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     EditSale(service),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func Inventory(service stocking.Stocker) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/inventory",
			Method:      http.MethodPost,
			Handler:     AddInventory(service),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/inventory",
			Method:  http.MethodGet,
			Handler: ListInventory(service),
		},
		{
			Path:        "/api/v1/inventory/:id",
			Method:      http.MethodPut,
			Handler:     EditInventory(service),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/inventory/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInventory(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/analytics/summary",
			Method:  http.MethodGet,
			Handler: AnalyticsSummary(service),
		},
		{
			Path:    "/api/v1/analytics/products",
			Method:  http.MethodGet,
			Handler: ProductAnalytics(service),
		},
		{
			Path:    "/api/v1/analytics/categories",
			Method:  http.MethodGet,
			Handler: CategoryAnalytics(service),
		},
		{
			Path:    "/api/v1/analytics/timeseries/:period",
			Method:  http.MethodGet,
			Handler: TimeSeriesAnalytics(service),
		},
		{
			Path:    "/api/v1/analytics/top-products",
			Method:  http.MethodGet,
			Handler: TopProducts(service),
		},
		{
			Path:    "/api/v1/analytics/top-products/:limit",
			Method:  http.MethodGet,
			Handler: TopProducts(service),
		},
		{
			Path:    "/api/v1/analytics/profit-trends",
			Method:  http.MethodGet,
			Handler: ProfitTrends(service),
		},
		{
			Path:        "/api/v1/analytics/comparison",
			Method:      http.MethodPost,
			Handler:     CompareAnalytics(service),
			Middlewares: bodyLimit,
		},
	}
}

func Alerts(reporter StockReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/alerts/stock",
			Method:  http.MethodGet,
			Handler: StockAlerts(reporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: bodyLimit,
		},
		{
			Path:    "/api/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
