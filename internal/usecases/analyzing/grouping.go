package analyzing

import (
	"sort"
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
)

type productBucket struct {
	productID    string
	productName  string
	category     string
	quantitySold float64
	revenue      float64
	profit       float64
}

type categoryBucket struct {
	category     string
	products     map[string]struct{}
	quantitySold float64
	revenue      float64
	profit       float64
}

type timeBucket struct {
	key          string
	start        time.Time
	revenue      float64
	profit       float64
	transactions int
	itemsSold    float64
}

// productKey identifica o produto da venda; vendas sem produto são agrupadas pelo nome
func productKey(sale *domain.Sale) string {
	if sale.ProductID != nil && *sale.ProductID != "" {
		return *sale.ProductID
	}
	if sale.Product != nil {
		return sale.Product.ID
	}
	return sale.Name
}

func productName(sale *domain.Sale) string {
	if sale.Name != "" {
		return sale.Name
	}
	if sale.Product != nil {
		return sale.Product.Name
	}
	return ""
}

func categoryOf(sale *domain.Sale) string {
	if sale.Product == nil || sale.Product.Category == "" {
		return domain.UncategorizedLabel
	}
	return string(sale.Product.Category)
}

// GroupByProduct agrupa as vendas por produto na ordem em que aparecem
func GroupByProduct(sales []*domain.Sale) []domain.ProductMetrics {
	buckets := newBucketSet[string, productBucket]()

	for _, sale := range sales {
		bucket := buckets.get(productKey(sale), func() *productBucket {
			return &productBucket{
				productID:   productKey(sale),
				productName: productName(sale),
				category:    categoryOf(sale),
			}
		})

		bucket.quantitySold += sale.Quantity
		bucket.revenue += sale.TotalPrice
		bucket.profit += sale.Profit()
	}

	result := make([]domain.ProductMetrics, 0, buckets.len())
	for _, b := range buckets.values() {
		result = append(result, domain.ProductMetrics{
			ProductID:    b.productID,
			ProductName:  b.productName,
			Category:     b.category,
			QuantitySold: b.quantitySold,
			Revenue:      b.revenue,
			Profit:       b.profit,
			ProfitMargin: profitMargin(b.profit, b.revenue),
			AveragePrice: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(b.revenue, b.quantitySold)),
		})
	}

	return result
}

// GroupByCategory agrupa por categoria e calcula a participação de cada uma na receita total
func GroupByCategory(sales []*domain.Sale) []domain.CategoryMetrics {
	buckets := newBucketSet[string, categoryBucket]()
	totalRevenue := 0.0

	for _, sale := range sales {
		category := categoryOf(sale)
		bucket := buckets.get(category, func() *categoryBucket {
			return &categoryBucket{
				category: category,
				products: make(map[string]struct{}),
			}
		})

		totalRevenue += sale.TotalPrice
		bucket.products[productKey(sale)] = struct{}{}
		bucket.quantitySold += sale.Quantity
		bucket.revenue += sale.TotalPrice
		bucket.profit += sale.Profit()
	}

	result := make([]domain.CategoryMetrics, 0, buckets.len())
	for _, b := range buckets.values() {
		result = append(result, domain.CategoryMetrics{
			Category:      b.category,
			TotalProducts: len(b.products),
			QuantitySold:  b.quantitySold,
			Revenue:       b.revenue,
			Profit:        b.profit,
			ProfitMargin:  profitMargin(b.profit, b.revenue),
			MarketShare:   utils.RoundWithTwoDecimalPlace(utils.SafeDivide(b.revenue, totalRevenue) * 100),
		})
	}

	return result
}

// periodBucket retorna a chave e o início do intervalo que contém t
func periodBucket(t time.Time, period domain.Period, loc *time.Location) (string, time.Time) {
	day := utils.StartOfDay(t, loc)

	switch period {
	case domain.PeriodWeekly:
		sunday := day.AddDate(0, 0, -int(day.Weekday()))
		return sunday.Format(utils.DateLayout), sunday
	case domain.PeriodMonthly:
		firstDay := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return firstDay.Format("2006-01"), firstDay
	default:
		return day.Format(utils.DateLayout), day
	}
}

// GroupByPeriod agrupa as vendas em intervalos de tempo, em ordem crescente de data
func GroupByPeriod(sales []*domain.Sale, period domain.Period, loc *time.Location) []domain.TimeSeriesPoint {
	buckets := newBucketSet[string, timeBucket]()

	for _, sale := range sales {
		key, start := periodBucket(sale.SaleDate, period, loc)
		bucket := buckets.get(key, func() *timeBucket {
			return &timeBucket{key: key, start: start}
		})

		bucket.revenue += sale.TotalPrice
		bucket.profit += sale.Profit()
		bucket.transactions++
		bucket.itemsSold += sale.Quantity
	}

	ordered := buckets.values()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].start.Before(ordered[j].start)
	})

	result := make([]domain.TimeSeriesPoint, 0, len(ordered))
	for _, b := range ordered {
		result = append(result, domain.TimeSeriesPoint{
			Date:         b.key,
			Revenue:      b.revenue,
			Profit:       b.profit,
			Transactions: b.transactions,
			ItemsSold:    b.itemsSold,
		})
	}

	return result
}

// TopProducts ordena por receita decrescente (empates mantêm a ordem de ocorrência) e corta em limit
func TopProducts(sales []*domain.Sale, limit int) []domain.ProductMetrics {
	products := GroupByProduct(sales)

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(products) {
		products = products[:limit]
	}

	return products
}
