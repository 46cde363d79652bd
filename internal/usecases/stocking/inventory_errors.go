package stocking

import (
	"errors"
	"fmt"

	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
)

var (
	ErrEntryIDRequired = errors.New("inventory entry ID is required")
	ErrInvalidEntry    = errors.New("invalid inventory entry data")
	ErrEntryNotFound   = errors.New("inventory entry not found")
	ErrProductNotFound = errors.New("product not found")
	ErrFetchInventory  = errors.New("error fetching inventory from database")
	ErrSaveEntry       = errors.New("error saving inventory entry")
	ErrDeleteEntry     = errors.New("error deleting inventory entry")
	ErrGenerateID      = errors.New("error generating inventory entry ID")
)

type InventoryError struct {
	Err     error
	Code    string
	EntryID string
	Details string
	Fields  []validation.ValidationError
}

func (e *InventoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func NewInventoryError(err error, code string, details string) *InventoryError {
	return &InventoryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewInventoryErrorWithID(err error, code string, entryID string, details string) *InventoryError {
	return &InventoryError{
		Err:     err,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}

func newValidationError(err error) *InventoryError {
	return &InventoryError{
		Err:     ErrInvalidEntry,
		Code:    apiErrors.ErrInvalidRequest,
		Details: "dados da entrada de estoque inválidos",
		Fields:  validation.GetValidationErrors(err),
	}
}
