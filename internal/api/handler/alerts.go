package handler

import (
	"context"
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
)

type StockReporter interface {
	BuildReport(ctx context.Context) (*domain.StockAlertReport, error)
}

func StockAlerts(reporter StockReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := reporter.BuildReport(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar relatório de alertas de estoque")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
