package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSalesQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.AnalyticsFilters
		wantErr  error
		validate func(t *testing.T, q domain.SalesQuery)
	}{
		{
			name:    "sem filtros não restringe nada",
			filters: domain.AnalyticsFilters{},
			validate: func(t *testing.T, q domain.SalesQuery) {
				assert.Nil(t, q.From)
				assert.Nil(t, q.Until)
				assert.Nil(t, q.CustomerType)
			},
		},
		{
			name: "endDate vira limite exclusivo no dia seguinte",
			filters: domain.AnalyticsFilters{
				StartDate: datePtr(2024, 1, 1),
				EndDate:   datePtr(2024, 1, 31),
			},
			validate: func(t *testing.T, q domain.SalesQuery) {
				require.NotNil(t, q.From)
				require.NotNil(t, q.Until)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *q.From)
				assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *q.Until)
			},
		},
		{
			name:    "apenas startDate",
			filters: domain.AnalyticsFilters{StartDate: datePtr(2024, 1, 15)},
			validate: func(t *testing.T, q domain.SalesQuery) {
				require.NotNil(t, q.From)
				assert.Nil(t, q.Until)
			},
		},
		{
			name:    "saleType all não restringe cliente",
			filters: domain.AnalyticsFilters{SaleType: domain.SaleTypeAll},
			validate: func(t *testing.T, q domain.SalesQuery) {
				assert.Nil(t, q.CustomerType)
			},
		},
		{
			name:    "saleType wholesale restringe a atacado",
			filters: domain.AnalyticsFilters{SaleType: domain.SaleTypeWholesale},
			validate: func(t *testing.T, q domain.SalesQuery) {
				require.NotNil(t, q.CustomerType)
				assert.Equal(t, domain.CustomerWholesale, *q.CustomerType)
			},
		},
		{
			name:    "saleType retail restringe a varejo",
			filters: domain.AnalyticsFilters{SaleType: domain.SaleTypeRetail},
			validate: func(t *testing.T, q domain.SalesQuery) {
				require.NotNil(t, q.CustomerType)
				assert.Equal(t, domain.CustomerRetail, *q.CustomerType)
			},
		},
		{
			name:    "saleType desconhecido é inválido",
			filters: domain.AnalyticsFilters{SaleType: "shopkeeper"},
			wantErr: ErrInvalidFilters,
		},
		{
			name: "intervalo invertido é inválido",
			filters: domain.AnalyticsFilters{
				StartDate: datePtr(2024, 2, 1),
				EndDate:   datePtr(2024, 1, 1),
			},
			wantErr: ErrInvalidFilters,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildSalesQuery(tt.filters, time.UTC)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			tt.validate(t, q)
		})
	}
}

func TestParseFilters(t *testing.T) {
	filters, err := ParseFilters("2024-01-01", "2024-01-31", "Wholesale", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, domain.SaleTypeWholesale, filters.SaleType)
	assert.True(t, filters.HasDateRange())

	_, err = ParseFilters("01/01/2024", "", "", time.UTC)
	var analyticsErr *AnalyticsError
	require.True(t, errors.As(err, &analyticsErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, analyticsErr.Code)

	filters, err = ParseFilters("", "", "", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, filters.StartDate)
	assert.Nil(t, filters.EndDate)
}

func TestParsePeriod(t *testing.T) {
	for _, raw := range []string{"daily", "weekly", "Monthly"} {
		_, err := ParsePeriod(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParsePeriod("yearly")
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 10},
		{raw: "5", want: 5},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "dez", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			limit, err := ParseLimit(tt.raw, 10)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidLimit))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, limit)
		})
	}
}
