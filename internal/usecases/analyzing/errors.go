package analyzing

import (
	"errors"
	"fmt"
)

var (
	// Ausência de dados (404)
	ErrNoSalesData = errors.New("no sales data found for the given filters")

	// Erros de validação (400)
	ErrInvalidFilters = errors.New("invalid analytics filters")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidLimit   = errors.New("invalid limit")

	// Erros de banco de dados (500)
	ErrFetchSales = errors.New("error fetching sales")
)

// AnalyticsError carrega o código de API junto do erro base
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
