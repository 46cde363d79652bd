package domain

import (
	"time"
)

type ProductCategory string

const (
	CategoryMilk     ProductCategory = "Milk"
	CategoryCurd     ProductCategory = "Curd"
	CategoryIceCream ProductCategory = "Ice-Cream"
	CategoryJuice    ProductCategory = "Juice"
	CategoryPaneer   ProductCategory = "Paneer"
	CategoryOther    ProductCategory = "Other"

	// UncategorizedLabel é usado nas análises quando a venda não possui categoria
	UncategorizedLabel = "Uncategorized"
)

// ProductCategories lista as categorias aceitas no cadastro
var ProductCategories = []ProductCategory{
	CategoryMilk,
	CategoryCurd,
	CategoryIceCream,
	CategoryJuice,
	CategoryPaneer,
	CategoryOther,
}

type Unit string

const (
	UnitLiters     Unit = "liters"
	UnitMilliliter Unit = "milliliter"
	UnitGrams      Unit = "grams"
	UnitKilograms  Unit = "kilograms"
	UnitUnits      Unit = "units"
)

// Product representa um produto cadastrado no estoque
type Product struct {
	ID             string          `json:"id"`
	Barcode        *string         `json:"barcode,omitempty"`
	Name           string          `json:"name"`
	Category       ProductCategory `json:"category"`
	Unit           Unit            `json:"unit"`
	Image          *string         `json:"image,omitempty"`
	CostPrice      float64         `json:"costPrice"`      // Preço de compra
	RetailPrice    float64         `json:"retailPrice"`    // Preço para clientes comuns
	WholesalePrice float64         `json:"wholesalePrice"` // Preço com desconto para lojistas
	Quantity       float64         `json:"quantity"`
	AddedDate      time.Time       `json:"addedDate"`
	ExpiryDate     *time.Time      `json:"expiryDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PriceFor retorna o preço unitário cobrado de acordo com o tipo de cliente
func (p *Product) PriceFor(customerType CustomerType) float64 {
	if customerType == CustomerWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

type RegisterProductRequest struct {
	Barcode        *string         `json:"barcode" validate:"omitempty,max=64"`
	Name           string          `json:"name" validate:"required,max=255"`
	Category       ProductCategory `json:"category" validate:"required,category"`
	Unit           Unit            `json:"unit" validate:"omitempty,unit"`
	Image          *string         `json:"image" validate:"omitempty,url"`
	CostPrice      float64         `json:"costPrice" validate:"gte=0"`
	RetailPrice    float64         `json:"retailPrice" validate:"gte=0"`
	WholesalePrice float64         `json:"wholesalePrice" validate:"gte=0"`
	Quantity       float64         `json:"quantity" validate:"gte=0"`
	ExpiryDate     *time.Time      `json:"expiryDate"`
}

// UpdateProductRequest contém apenas os campos que devem ser alterados
type UpdateProductRequest struct {
	ID             string           `json:"-"`
	Barcode        *string          `json:"barcode,omitempty" validate:"omitempty,max=64"`
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Category       *ProductCategory `json:"category,omitempty" validate:"omitempty,category"`
	Unit           *Unit            `json:"unit,omitempty" validate:"omitempty,unit"`
	Image          *string          `json:"image,omitempty" validate:"omitempty,url"`
	CostPrice      *float64         `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	RetailPrice    *float64         `json:"retailPrice,omitempty" validate:"omitempty,gte=0"`
	WholesalePrice *float64         `json:"wholesalePrice,omitempty" validate:"omitempty,gte=0"`
	Quantity       *float64         `json:"quantity,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
}

// Apply copia os campos informados para o produto
func (r *UpdateProductRequest) Apply(p *Product) {
	if r.Barcode != nil {
		p.Barcode = r.Barcode
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.Image != nil {
		p.Image = r.Image
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.RetailPrice != nil {
		p.RetailPrice = *r.RetailPrice
	}
	if r.WholesalePrice != nil {
		p.WholesalePrice = *r.WholesalePrice
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
	if r.ExpiryDate != nil {
		p.ExpiryDate = r.ExpiryDate
	}
}
