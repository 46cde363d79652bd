package domain

import "time"

type InventoryLocation string

const (
	LocationShop InventoryLocation = "shop"
	LocationVan  InventoryLocation = "van"
)

// InventoryEntry representa uma movimentação de estoque (entrada, devolução ou canal de venda)
type InventoryEntry struct {
	ID             string            `json:"id"`
	ProductID      *string           `json:"productId,omitempty"`
	Product        *Product          `json:"product,omitempty"`
	Name           string            `json:"name"`
	Quantity       float64           `json:"quantity"`
	QuantityPrice  float64           `json:"quantityPrice"`
	ReturnQuantity float64           `json:"returnQuantity"`
	ReturnAmount   float64           `json:"returnAmount"`
	TotalPrice     float64           `json:"totalPrice"`
	Profit         float64           `json:"profit"`
	Location       InventoryLocation `json:"type"`
	AddedDate      time.Time         `json:"addedDate"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type AddInventoryRequest struct {
	ProductID      *string           `json:"productId"`
	Name           string            `json:"name" validate:"required_without=ProductID,max=255"`
	Quantity       float64           `json:"quantity" validate:"required"`
	QuantityPrice  float64           `json:"quantityPrice" validate:"gte=0"`
	ReturnQuantity float64           `json:"returnQuantity" validate:"gte=0"`
	ReturnAmount   float64           `json:"returnAmount" validate:"gte=0"`
	TotalPrice     *float64          `json:"totalPrice" validate:"omitempty,gte=0"`
	Profit         float64           `json:"profit"`
	Location       InventoryLocation `json:"type" validate:"required,oneof=shop van"`
	AddedDate      *time.Time        `json:"addedDate"`
}

type EditInventoryRequest struct {
	ID             string             `json:"-"`
	Name           *string            `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Quantity       *float64           `json:"quantity,omitempty"`
	QuantityPrice  *float64           `json:"quantityPrice,omitempty" validate:"omitempty,gte=0"`
	ReturnQuantity *float64           `json:"returnQuantity,omitempty" validate:"omitempty,gte=0"`
	ReturnAmount   *float64           `json:"returnAmount,omitempty" validate:"omitempty,gte=0"`
	TotalPrice     *float64           `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	Profit         *float64           `json:"profit,omitempty"`
	Location       *InventoryLocation `json:"type,omitempty" validate:"omitempty,oneof=shop van"`
	AddedDate      *time.Time         `json:"addedDate,omitempty"`
}

// Apply copia os campos informados para a entrada de estoque
func (r *EditInventoryRequest) Apply(e *InventoryEntry) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.QuantityPrice != nil {
		e.QuantityPrice = *r.QuantityPrice
	}
	if r.ReturnQuantity != nil {
		e.ReturnQuantity = *r.ReturnQuantity
	}
	if r.ReturnAmount != nil {
		e.ReturnAmount = *r.ReturnAmount
	}
	if r.TotalPrice != nil {
		e.TotalPrice = *r.TotalPrice
	}
	if r.Profit != nil {
		e.Profit = *r.Profit
	}
	if r.Location != nil {
		e.Location = *r.Location
	}
	if r.AddedDate != nil {
		e.AddedDate = *r.AddedDate
	}
}
