package cataloging

import (
	"errors"
	"fmt"

	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
)

// Erros específicos para o catálogo de produtos
var (
	// Erros de validação
	ErrProductIDRequired    = errors.New("product ID is required")
	ErrInvalidProduct       = errors.New("invalid product data")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this barcode already exists")

	// Erros de banco de dados
	ErrFetchProducts = errors.New("error fetching products from database")
	ErrSaveProduct   = errors.New("error saving product")

	ErrGenerateID = errors.New("error generating product ID")
)

// ProductError é um erro com contexto adicional para produtos
type ProductError struct {
	Err       error                        // Erro base
	Code      string                       // Código de erro para API
	ProductID string                       // ID do produto envolvido (quando aplicável)
	Details   string                       // Detalhes adicionais
	Fields    []validation.ValidationError // Campos inválidos (quando aplicável)
}

func (e *ProductError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

func NewProductError(err error, code string, details string) *ProductError {
	return &ProductError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewProductErrorWithID(err error, code string, productID string, details string) *ProductError {
	return &ProductError{
		Err:       err,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}

func newValidationError(err error) *ProductError {
	return &ProductError{
		Err:     ErrInvalidProduct,
		Code:    apiErrors.ErrInvalidRequest,
		Details: "dados do produto inválidos",
		Fields:  validation.GetValidationErrors(err),
	}
}
