package handler

import (
	"net/http"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/internal/usecases/cataloging"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func RegisterProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.RegisterProductRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		product, err := service.Register(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar produto")
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Message: "Produto cadastrado com sucesso",
			Product: product,
		})
	})
}

func ListProducts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func GetProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func UpdateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateProductRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// O ID da URL prevalece sobre o corpo
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.Update(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar produto")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message: "Produto atualizado com sucesso",
			Product: product,
		})
	})
}
