package analyzing

import (
	"math"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
)

// ComparisonPeriods deriva o período anterior ao informado.
// Com as duas datas, o anterior termina um dia antes do início atual e tem a mesma duração.
// Sem elas, o atual são os últimos windowDays dias até hoje e o anterior os windowDays dias antes disso.
func ComparisonPeriods(filters domain.AnalyticsFilters, now time.Time, windowDays int, loc *time.Location) domain.ComparisonPeriods {
	var start, end time.Time

	if filters.HasDateRange() {
		start = utils.StartOfDay(*filters.StartDate, loc)
		end = utils.StartOfDay(*filters.EndDate, loc)
	} else {
		end = utils.StartOfDay(now, loc)
		start = end.AddDate(0, 0, -windowDays)
	}

	days := daysBetween(start, end)
	previousEnd := start.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -days)

	return domain.ComparisonPeriods{
		Current: domain.AnalyticsFilters{
			StartDate: &start,
			EndDate:   &end,
			SaleType:  filters.SaleType,
		},
		Previous: domain.AnalyticsFilters{
			StartDate: &previousStart,
			EndDate:   &previousEnd,
			SaleType:  filters.SaleType,
		},
	}
}

// daysBetween conta dias de calendário, tolerando horário de verão
func daysBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}
