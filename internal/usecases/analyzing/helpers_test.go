package analyzing

import (
	"time"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func newProduct(id, name string, category domain.ProductCategory, costPrice float64) *domain.Product {
	return &domain.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		CostPrice: costPrice,
	}
}

func newSale(product *domain.Product, totalPrice, quantity float64, saleDate time.Time) *domain.Sale {
	sale := &domain.Sale{
		ID:           "S-" + saleDate.Format(time.RFC3339Nano),
		Product:      product,
		Quantity:     quantity,
		TotalPrice:   totalPrice,
		CustomerType: domain.CustomerRetail,
		SaleDate:     saleDate,
	}

	if product != nil {
		sale.ProductID = stringPtr(product.ID)
		sale.Name = product.Name
	}

	return sale
}
