package repository

import (
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindSalesQuery(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	wholesale := domain.CustomerWholesale

	tests := []struct {
		name          string
		query         domain.SalesQuery
		wantClauses   []string
		absentClauses []string
		wantArgs      []any
	}{
		{
			name:          "sem filtros não restringe datas nem cliente",
			query:         domain.SalesQuery{},
			absentClauses: []string{"WHERE"},
			wantArgs:      []any{},
		},
		{
			name:          "intervalo com limite superior exclusivo",
			query:         domain.SalesQuery{From: &from, Until: &until},
			wantClauses:   []string{"s.sale_date >= $1", "s.sale_date < $2"},
			absentClauses: []string{"s.customer_type ="},
			wantArgs:      []any{from, until},
		},
		{
			name:          "sem tipo de cliente com datas não filtra cliente",
			query:         domain.SalesQuery{From: &from, Until: &until, CustomerType: nil},
			wantClauses:   []string{"WHERE s.sale_date >= $1 AND s.sale_date < $2 ORDER BY"},
			absentClauses: []string{"s.customer_type =", "$3"},
			wantArgs:      []any{from, until},
		},
		{
			name:          "filtro por tipo de cliente",
			query:         domain.SalesQuery{CustomerType: &wholesale},
			wantClauses:   []string{"WHERE s.customer_type = $1"},
			absentClauses: []string{"s.sale_date >="},
			wantArgs:      []any{wholesale},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildFindSalesQuery(tt.query).ToSql()
			require.NoError(t, err)

			assert.Contains(t, sql, "LEFT JOIN products p ON p.id = s.product_id")
			for _, clause := range tt.wantClauses {
				assert.Contains(t, sql, clause)
			}
			for _, clause := range tt.absentClauses {
				assert.NotContains(t, sql, clause)
			}
			assert.ElementsMatch(t, tt.wantArgs, args)
		})
	}
}

func TestNullableProduct_ToDomain(t *testing.T) {
	empty := &nullableProduct{}
	assert.Nil(t, empty.toDomain())

	n := &nullableProduct{}
	n.id.String, n.id.Valid = "P1", true
	n.name.String, n.name.Valid = "Leite", true
	n.category.String, n.category.Valid = "Milk", true
	n.costPrice.Float64, n.costPrice.Valid = 40, true

	product := n.toDomain()
	require.NotNil(t, product)
	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, domain.CategoryMilk, product.Category)
	assert.Equal(t, 40.0, product.CostPrice)
	assert.Nil(t, product.Barcode)
	assert.Nil(t, product.ExpiryDate)
}
