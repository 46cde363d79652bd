package analyzing

import (
	"strconv"
	"strings"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
)

// ParseFilters converte os parâmetros de query (startDate, endDate, saleType) em filtros validados
func ParseFilters(startDate, endDate, saleType string, loc *time.Location) (domain.AnalyticsFilters, error) {
	filters := domain.AnalyticsFilters{
		SaleType: domain.SaleType(strings.ToLower(strings.TrimSpace(saleType))),
	}

	start, err := utils.ParseDateInLocation(strings.TrimSpace(startDate), loc)
	if err != nil {
		return filters, NewAnalyticsError(ErrInvalidFilters, apiErrors.ErrInvalidFormat, "startDate deve estar no formato YYYY-MM-DD")
	}

	end, err := utils.ParseDateInLocation(strings.TrimSpace(endDate), loc)
	if err != nil {
		return filters, NewAnalyticsError(ErrInvalidFilters, apiErrors.ErrInvalidFormat, "endDate deve estar no formato YYYY-MM-DD")
	}

	filters.StartDate = start
	filters.EndDate = end

	if err := validateFilters(filters); err != nil {
		return filters, err
	}

	return filters, nil
}

func validateFilters(filters domain.AnalyticsFilters) error {
	switch filters.SaleType {
	case "", domain.SaleTypeAll, domain.SaleTypeRetail, domain.SaleTypeWholesale:
	default:
		return NewAnalyticsError(ErrInvalidFilters, apiErrors.ErrInvalidRequest, "saleType deve ser all, retail ou wholesale")
	}

	if filters.HasDateRange() && filters.StartDate.After(*filters.EndDate) {
		return NewAnalyticsError(ErrInvalidFilters, apiErrors.ErrInvalidRequest, "startDate não pode ser posterior a endDate")
	}

	return nil
}

// BuildSalesQuery traduz os filtros no predicado do repositório.
// startDate vira limite inferior inclusivo e endDate limite superior exclusivo no dia seguinte.
func BuildSalesQuery(filters domain.AnalyticsFilters, loc *time.Location) (domain.SalesQuery, error) {
	query := domain.SalesQuery{}

	if err := validateFilters(filters); err != nil {
		return query, err
	}

	if filters.StartDate != nil {
		from := utils.StartOfDay(*filters.StartDate, loc)
		query.From = &from
	}

	if filters.EndDate != nil {
		until := utils.StartOfDay(*filters.EndDate, loc).AddDate(0, 0, 1)
		query.Until = &until
	}

	switch filters.SaleType {
	case domain.SaleTypeRetail:
		customerType := domain.CustomerRetail
		query.CustomerType = &customerType
	case domain.SaleTypeWholesale:
		customerType := domain.CustomerWholesale
		query.CustomerType = &customerType
	}

	return query, nil
}

// ParsePeriod aceita daily, weekly ou monthly
func ParsePeriod(raw string) (domain.Period, error) {
	period := domain.Period(strings.ToLower(strings.TrimSpace(raw)))

	switch period {
	case domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly:
		return period, nil
	default:
		return "", NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "period deve ser daily, weekly ou monthly")
	}
}

// ParseLimit converte o limite do top-N; vazio usa o padrão configurado
func ParseLimit(raw string, defaultLimit int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, NewAnalyticsError(ErrInvalidLimit, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo")
	}

	return limit, nil
}
