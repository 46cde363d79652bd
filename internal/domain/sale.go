package domain

import "time"

type CustomerType string

const (
	CustomerRetail    CustomerType = "retail"
	CustomerWholesale CustomerType = "wholesale"
)

// Sale é uma linha de venda. Vendas registradas juntas compartilham o TransactionID.
// TotalPrice é fixado na criação e nunca recalculado a partir do preço atual do produto.
type Sale struct {
	ID            string       `json:"id"`
	ProductID     *string      `json:"productId,omitempty"`
	Product       *Product     `json:"product,omitempty"`
	Name          string       `json:"name"`
	UnitPrice     float64      `json:"unitPrice"`
	Quantity      float64      `json:"quantity"`
	TotalPrice    float64      `json:"totalPrice"`
	CustomerType  CustomerType `json:"customerType"`
	SaleDate      time.Time    `json:"saleDate"`
	TransactionID *string      `json:"transactionId,omitempty"`
}

// CostPrice retorna o custo atual do produto vinculado (zero para vendas sem produto)
func (s *Sale) CostPrice() float64 {
	if s.Product == nil {
		return 0
	}
	return s.Product.CostPrice
}

// Profit usa o custo atual do produto, e não um custo registrado na venda
func (s *Sale) Profit() float64 {
	return s.TotalPrice - s.CostPrice()*s.Quantity
}

type AddSaleRequest struct {
	ProductID    string       `json:"productId" validate:"required"`
	Quantity     float64      `json:"quantity" validate:"gt=0"`
	CustomerType CustomerType `json:"customerType" validate:"omitempty,oneof=retail wholesale"`
	SaleDate     *time.Time   `json:"saleDate"`
}

type EditSaleRequest struct {
	ID           string        `json:"-"`
	Quantity     *float64      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	CustomerType *CustomerType `json:"customerType,omitempty" validate:"omitempty,oneof=retail wholesale"`
	TotalPrice   *float64      `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	SaleDate     *time.Time    `json:"saleDate,omitempty"`
}

// SaleTransaction é o resultado de uma venda em lote
type SaleTransaction struct {
	TransactionID string  `json:"transactionId"`
	Sales         []*Sale `json:"sales"`
	TotalPrice    float64 `json:"totalPrice"`
}
