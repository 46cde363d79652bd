package analyzing

import (
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonPeriods(t *testing.T) {
	now := time.Date(2024, 6, 30, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		filters      domain.AnalyticsFilters
		wantCurrent  [2]time.Time
		wantPrevious [2]time.Time
		wantSaleType domain.SaleType
	}{
		{
			name: "intervalo explícito gera período anterior de mesma duração",
			filters: domain.AnalyticsFilters{
				StartDate: datePtr(2024, 6, 11),
				EndDate:   datePtr(2024, 6, 20),
				SaleType:  domain.SaleTypeRetail,
			},
			wantCurrent: [2]time.Time{
				time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			},
			wantPrevious: [2]time.Time{
				time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			},
			wantSaleType: domain.SaleTypeRetail,
		},
		{
			name:    "sem datas usa a janela padrão até hoje",
			filters: domain.AnalyticsFilters{},
			wantCurrent: [2]time.Time{
				time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			},
			wantPrevious: [2]time.Time{
				time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "apenas uma data também usa a janela padrão",
			filters: domain.AnalyticsFilters{StartDate: datePtr(2024, 1, 1)},
			wantCurrent: [2]time.Time{
				time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			},
			wantPrevious: [2]time.Time{
				time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "intervalo de um único dia",
			filters: domain.AnalyticsFilters{
				StartDate: datePtr(2024, 3, 1),
				EndDate:   datePtr(2024, 3, 1),
			},
			wantCurrent: [2]time.Time{
				time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			wantPrevious: [2]time.Time{
				time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := ComparisonPeriods(tt.filters, now, 30, time.UTC)

			require.True(t, periods.Current.HasDateRange())
			require.True(t, periods.Previous.HasDateRange())

			assert.Equal(t, tt.wantCurrent[0], *periods.Current.StartDate)
			assert.Equal(t, tt.wantCurrent[1], *periods.Current.EndDate)
			assert.Equal(t, tt.wantPrevious[0], *periods.Previous.StartDate)
			assert.Equal(t, tt.wantPrevious[1], *periods.Previous.EndDate)

			assert.Equal(t, tt.wantSaleType, periods.Current.SaleType)
			assert.Equal(t, tt.wantSaleType, periods.Previous.SaleType)

			// Os períodos nunca se sobrepõem
			assert.True(t, periods.Previous.EndDate.Before(*periods.Current.StartDate))
		})
	}
}
