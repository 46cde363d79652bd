package domain

import "time"

type StockAlertReason string

const (
	AlertLowStock StockAlertReason = "low_stock"
	AlertExpiring StockAlertReason = "expiring"
	AlertExpired  StockAlertReason = "expired"
)

type StockAlert struct {
	ProductID  string             `json:"productId"`
	Name       string             `json:"name"`
	Category   ProductCategory    `json:"category"`
	Quantity   float64            `json:"quantity"`
	ExpiryDate *time.Time         `json:"expiryDate,omitempty"`
	Reasons    []StockAlertReason `json:"reasons"`
}

type StockAlertReport struct {
	GeneratedAt       time.Time     `json:"generatedAt"`
	LowStockThreshold float64       `json:"lowStockThreshold"`
	ExpiryWindowDays  int           `json:"expiryWindowDays"`
	Alerts            []*StockAlert `json:"alerts"`
}
