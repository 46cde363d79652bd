package analyzing

import (
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
)

// CalculateMetrics calcula o resumo financeiro de um conjunto de vendas.
// Um conjunto vazio gera métricas zeradas; quem exige dados deve checar antes.
func CalculateMetrics(sales []*domain.Sale) domain.SummaryMetrics {
	metrics := domain.SummaryMetrics{}

	for _, sale := range sales {
		metrics.TotalRevenue += sale.TotalPrice
		metrics.TotalProfit += sale.Profit()
		metrics.TotalItemsSold += sale.Quantity
	}

	metrics.TotalTransactions = len(sales)
	metrics.AverageOrderValue = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(metrics.TotalRevenue, float64(metrics.TotalTransactions)),
	)
	metrics.ProfitMargin = profitMargin(metrics.TotalProfit, metrics.TotalRevenue)

	return metrics
}

// CalculatePercentageChange retorna a variação percentual de previous para current.
// Com previous zero o resultado é 100 se current > 0, senão 0.
func CalculatePercentageChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

func profitMargin(profit, revenue float64) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.SafeDivide(profit, revenue) * 100)
}

func percentageChanges(previous, current domain.SummaryMetrics) domain.PercentageChanges {
	return domain.PercentageChanges{
		Revenue:      CalculatePercentageChange(previous.TotalRevenue, current.TotalRevenue),
		Profit:       CalculatePercentageChange(previous.TotalProfit, current.TotalProfit),
		Transactions: CalculatePercentageChange(float64(previous.TotalTransactions), float64(current.TotalTransactions)),
		ItemsSold:    CalculatePercentageChange(previous.TotalItemsSold, current.TotalItemsSold),
	}
}
