package handler

import (
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/analyzing"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

// filtersBody recebe os filtros da comparação com datas no formato YYYY-MM-DD
type filtersBody struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	SaleType  string `json:"saleType"`
}

type comparisonBody struct {
	CurrentFilters  *filtersBody `json:"currentFilters"`
	PreviousFilters *filtersBody `json:"previousFilters"`
}

func queryFilters(r *http.Request, service analyzing.Analyzer) (domain.AnalyticsFilters, error) {
	query := r.URL.Query()
	return analyzing.ParseFilters(query.Get("startDate"), query.Get("endDate"), query.Get("saleType"), service.Location())
}

func AnalyticsSummary(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		summary, err := service.Summary(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular resumo de vendas")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func ProductAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		products, err := service.ProductAnalytics(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agrupar vendas por produto")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func CategoryAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		categories, err := service.CategoryAnalytics(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agrupar vendas por categoria")
			return
		}

		writeJSON(w, http.StatusOK, categories)
	})
}

func TimeSeriesAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := analyzing.ParsePeriod(httprouter.ParamsFromContext(r.Context()).ByName("period"))
		if err != nil {
			writeServiceError(w, r, err, "Período inválido")
			return
		}

		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		points, err := service.TimeSeries(r.Context(), period, filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar série temporal")
			return
		}

		writeJSON(w, http.StatusOK, points)
	})
}

// TopProducts atende /top-products e /top-products/:limit
func TopProducts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := analyzing.ParseLimit(httprouter.ParamsFromContext(r.Context()).ByName("limit"), service.DefaultTopLimit())
		if err != nil {
			writeServiceError(w, r, err, "Limite inválido")
			return
		}

		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		products, err := service.TopPerformingProducts(r.Context(), limit, filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular produtos mais vendidos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func ProfitTrends(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := queryFilters(r, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros inválidos")
			return
		}

		trend, err := service.ProfitTrends(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular tendência de lucro")
			return
		}

		writeJSON(w, http.StatusOK, trend)
	})
}

func CompareAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body comparisonBody
		if err := decodeBody(r, &body, true); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request := domain.ComparisonRequest{}

		current, err := parseBodyFilters(body.CurrentFilters, service)
		if err != nil {
			writeServiceError(w, r, err, "Filtros do período atual inválidos")
			return
		}
		request.CurrentFilters = &current

		if body.PreviousFilters != nil {
			previous, err := parseBodyFilters(body.PreviousFilters, service)
			if err != nil {
				writeServiceError(w, r, err, "Filtros do período anterior inválidos")
				return
			}
			request.PreviousFilters = &previous
		}

		result, err := service.Compare(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao comparar períodos")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func parseBodyFilters(body *filtersBody, service analyzing.Analyzer) (domain.AnalyticsFilters, error) {
	if body == nil {
		return domain.AnalyticsFilters{}, nil
	}
	return analyzing.ParseFilters(body.StartDate, body.EndDate, body.SaleType, service.Location())
}
