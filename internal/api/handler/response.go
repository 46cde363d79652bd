package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/usecases/analyzing"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/cataloging"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/selling"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/stocking"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// messageResponse é o envelope usado nas rotas de escrita
type messageResponse struct {
	Message   string `json:"message"`
	Product   any    `json:"product,omitempty"`
	Sale      any    `json:"sale,omitempty"`
	Inventory any    `json:"inventory,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody decodifica o corpo JSON; corpo vazio é aceito quando allowEmpty for verdadeiro
func decodeBody(r *http.Request, dest any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dest)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padrão
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		productErr   *cataloging.ProductError
		saleErr      *selling.SaleError
		inventoryErr *stocking.InventoryError
		analyticsErr *analyzing.AnalyticsError
	)

	var code string
	var details any

	switch {
	case errors.As(err, &productErr):
		code, details = productErr.Code, fieldDetails(productErr.Fields)
	case errors.As(err, &saleErr):
		code, details = saleErr.Code, fieldDetails(saleErr.Fields)
	case errors.As(err, &inventoryErr):
		code, details = inventoryErr.Code, fieldDetails(inventoryErr.Fields)
	case errors.As(err, &analyticsErr):
		code = analyticsErr.Code
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, err.Error())
		return
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(fallback)
	} else {
		logger.Warn(fallback)
	}

	apiErrors.WriteError(w, code, err.Error(), details)
}

func fieldDetails(fields []validation.ValidationError) any {
	if len(fields) == 0 {
		return nil
	}
	return fields
}
