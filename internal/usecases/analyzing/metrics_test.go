package analyzing

import (
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateMetrics(t *testing.T) {
	day := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sales    []*domain.Sale
		validate func(t *testing.T, m domain.SummaryMetrics)
	}{
		{
			name: "cenário de referência com duas vendas",
			sales: []*domain.Sale{
				newSale(newProduct("P1", "Leite", domain.CategoryMilk, 30), 100, 2, day),
				newSale(newProduct("P2", "Paneer", domain.CategoryPaneer, 50), 200, 1, day),
			},
			validate: func(t *testing.T, m domain.SummaryMetrics) {
				assert.Equal(t, 300.0, m.TotalRevenue)
				assert.Equal(t, 190.0, m.TotalProfit)
				assert.Equal(t, 2, m.TotalTransactions)
				assert.Equal(t, 3.0, m.TotalItemsSold)
				assert.Equal(t, 150.0, m.AverageOrderValue)
				assert.InDelta(t, 63.33, m.ProfitMargin, 0.01)
			},
		},
		{
			name: "receita zero gera margem zero mesmo com prejuízo",
			sales: []*domain.Sale{
				newSale(newProduct("P1", "Brinde", domain.CategoryOther, 10), 0, 3, day),
			},
			validate: func(t *testing.T, m domain.SummaryMetrics) {
				assert.Equal(t, 0.0, m.TotalRevenue)
				assert.Equal(t, -30.0, m.TotalProfit)
				assert.Equal(t, 0.0, m.ProfitMargin)
			},
		},
		{
			name: "venda sem produto usa custo zero",
			sales: []*domain.Sale{
				{Name: "Avulso", TotalPrice: 80, Quantity: 4, SaleDate: day},
			},
			validate: func(t *testing.T, m domain.SummaryMetrics) {
				assert.Equal(t, 80.0, m.TotalProfit)
				assert.Equal(t, 100.0, m.ProfitMargin)
			},
		},
		{
			name:  "conjunto vazio não divide por zero",
			sales: []*domain.Sale{},
			validate: func(t *testing.T, m domain.SummaryMetrics) {
				assert.Equal(t, domain.SummaryMetrics{}, m)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateMetrics(tt.sales))
		})
	}
}

func TestCalculateMetrics_Additivity(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	milk := newProduct("P1", "Leite", domain.CategoryMilk, 20)

	sales := []*domain.Sale{
		newSale(milk, 45.5, 1, day),
		newSale(milk, 91, 2, day.Add(time.Hour)),
		newSale(milk, 12.25, 0.5, day.Add(2*time.Hour)),
	}

	revenue, quantity := 0.0, 0.0
	for _, s := range sales {
		revenue += s.TotalPrice
		quantity += s.Quantity
	}

	m := CalculateMetrics(sales)
	assert.InDelta(t, revenue, m.TotalRevenue, 1e-9)
	assert.InDelta(t, quantity, m.TotalItemsSold, 1e-9)
	assert.LessOrEqual(t, m.ProfitMargin, 100.0)
}

func TestCalculatePercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		want     float64
	}{
		{name: "anterior zero e atual positivo", previous: 0, current: 50, want: 100},
		{name: "anterior e atual zero", previous: 0, current: 0, want: 0},
		{name: "anterior zero e atual negativo", previous: 0, current: -10, want: 0},
		{name: "crescimento", previous: 100, current: 150, want: 50},
		{name: "queda", previous: 200, current: 50, want: -75},
		{name: "receita anterior zero e atual 120", previous: 0, current: 120, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePercentageChange(tt.previous, tt.current))
		})
	}
}
