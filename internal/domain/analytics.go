package domain

import "time"

type SaleType string

const (
	SaleTypeAll       SaleType = "all"
	SaleTypeRetail    SaleType = "retail"
	SaleTypeWholesale SaleType = "wholesale"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// AnalyticsFilters são os filtros aceitos pelas rotas de análise.
// EndDate é inclusivo; SaleType vazio equivale a "all".
type AnalyticsFilters struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	SaleType  SaleType   `json:"saleType,omitempty"`
}

// HasDateRange indica se as duas datas foram informadas
func (f *AnalyticsFilters) HasDateRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// SalesQuery é o predicado entregue ao repositório de vendas.
// From é inclusivo e Until exclusivo.
type SalesQuery struct {
	From         *time.Time
	Until        *time.Time
	CustomerType *CustomerType
}

type SummaryMetrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalItemsSold    float64 `json:"totalItemsSold"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	ProfitMargin      float64 `json:"profitMargin"`
}

type ProductMetrics struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Category     string  `json:"category"`
	QuantitySold float64 `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	AveragePrice float64 `json:"averagePrice"`
}

type CategoryMetrics struct {
	Category      string  `json:"category"`
	TotalProducts int     `json:"totalProducts"`
	QuantitySold  float64 `json:"quantitySold"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profitMargin"`
	MarketShare   float64 `json:"marketShare"`
}

type TimeSeriesPoint struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Transactions int     `json:"transactions"`
	ItemsSold    float64 `json:"itemsSold"`
}

type ProfitTrend struct {
	CurrentPeriod    float64 `json:"currentPeriod"`
	PreviousPeriod   float64 `json:"previousPeriod"`
	PercentageChange float64 `json:"percentageChange"`
}

// ComparisonPeriods agrupa os filtros do período atual e do anterior
type ComparisonPeriods struct {
	Current  AnalyticsFilters `json:"current"`
	Previous AnalyticsFilters `json:"previous"`
}

type ComparisonRequest struct {
	CurrentFilters  *AnalyticsFilters `json:"currentFilters"`
	PreviousFilters *AnalyticsFilters `json:"previousFilters,omitempty"`
}

type PercentageChanges struct {
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Transactions float64 `json:"transactions"`
	ItemsSold    float64 `json:"itemsSold"`
}

type ComparisonResult struct {
	Current           SummaryMetrics    `json:"current"`
	Previous          SummaryMetrics    `json:"previous"`
	PercentageChanges PercentageChanges `json:"percentageChanges"`
}
