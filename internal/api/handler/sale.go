package handler

import (
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/selling"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func AddSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AddSaleRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		sale, err := service.AddSale(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Message: "Venda registrada com sucesso",
			Sale:    sale,
		})
	})
}

// AddSaleBatch espera um array JSON de vendas
func AddSaleBatch(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var requests []*domain.AddSaleRequest
		if err := decodeBody(r, &requests, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O corpo deve ser um array de vendas", nil)
			return
		}

		transaction, err := service.AddBatch(r.Context(), requests)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar transação de vendas")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message":     "Transação registrada com sucesso",
			"transaction": transaction,
		})
	})
}

func ListSales(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func ListSalesByDate(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		sales, err := service.ListByDate(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas do dia")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func ListSalesByDateRange(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		sales, err := service.ListByDateRange(r.Context(), query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas do período")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func EditSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.EditSaleRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.Edit(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar venda")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message: "Venda atualizada com sucesso",
			Sale:    sale,
		})
	})
}

func DeleteSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover venda")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Venda removida com sucesso"})
	})
}
