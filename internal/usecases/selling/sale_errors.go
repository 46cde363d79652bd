package selling

import (
	"errors"
	"fmt"

	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
)

var (
	// Erros de validação
	ErrSaleIDRequired   = errors.New("sale ID is required")
	ErrInvalidSale      = errors.New("invalid sale data")
	ErrEmptyTransaction = errors.New("transaction must contain at least one sale")
	ErrInvalidDate      = errors.New("invalid date")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrProductNotFound  = errors.New("product not found")

	// Erros de banco de dados
	ErrFetchSales = errors.New("error fetching sales from database")
	ErrSaveSale   = errors.New("error saving sale")
	ErrDeleteSale = errors.New("error deleting sale")

	ErrGenerateID = errors.New("error generating sale ID")
)

// SaleError carrega o código da API junto com o erro base
type SaleError struct {
	Err     error
	Code    string
	SaleID  string
	Details string
	Fields  []validation.ValidationError
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}

func newValidationError(err error) *SaleError {
	return &SaleError{
		Err:     ErrInvalidSale,
		Code:    apiErrors.ErrInvalidRequest,
		Details: "dados da venda inválidos",
		Fields:  validation.GetValidationErrors(err),
	}
}
