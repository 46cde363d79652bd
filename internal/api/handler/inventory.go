package handler

import (
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/stocking"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func AddInventory(service stocking.Stocker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AddInventoryRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.Add(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar entrada de estoque")
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Message:   "Entrada de estoque registrada com sucesso",
			Inventory: entry,
		})
	})
}

func ListInventory(service stocking.Stocker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar estoque")
			return
		}

		writeJSON(w, http.StatusOK, entries)
	})
}

func EditInventory(service stocking.Stocker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.EditInventoryRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.Edit(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar entrada de estoque")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message:   "Entrada de estoque atualizada com sucesso",
			Inventory: entry,
		})
	})
}

func DeleteInventory(service stocking.Stocker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover entrada de estoque")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Entrada de estoque removida com sucesso"})
	})
}
