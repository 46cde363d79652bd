package stocking

import (
	"context"
	"strings"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
)

type Stocker interface {
	Add(ctx context.Context, request *domain.AddInventoryRequest) (*domain.InventoryEntry, error)
	List(ctx context.Context) ([]*domain.InventoryEntry, error)
	Edit(ctx context.Context, request *domain.EditInventoryRequest) (*domain.InventoryEntry, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	inventoryRepository repository.InventoryRepository
	productRepository   repository.ProductRepository
	now                 func() time.Time
}

func NewService(
	inventoryRepository repository.InventoryRepository,
	productRepository repository.ProductRepository,
) Stocker {
	return &Service{
		inventoryRepository: inventoryRepository,
		productRepository:   productRepository,
		now:                 time.Now,
	}
}

// Add registra a entrada sem alterar a quantidade do produto
func (s *Service) Add(ctx context.Context, request *domain.AddInventoryRequest) (*domain.InventoryEntry, error) {
	if err := validation.ValidateStruct(request); err != nil {
		return nil, newValidationError(err)
	}

	entry := &domain.InventoryEntry{
		Name:           strings.TrimSpace(request.Name),
		Quantity:       request.Quantity,
		QuantityPrice:  request.QuantityPrice,
		ReturnQuantity: request.ReturnQuantity,
		ReturnAmount:   request.ReturnAmount,
		TotalPrice:     request.Quantity * request.QuantityPrice,
		Profit:         request.Profit,
		Location:       request.Location,
		AddedDate:      s.now(),
	}

	if request.ProductID != nil && *request.ProductID != "" {
		product, err := s.productRepository.GetByID(ctx, *request.ProductID)
		if err != nil {
			return nil, NewInventoryError(ErrFetchInventory, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if product == nil {
			return nil, NewInventoryError(ErrProductNotFound, apiErrors.ErrResourceNotFound, *request.ProductID)
		}

		entry.ProductID = &product.ID
		entry.Product = product
		entry.Name = product.Name
	}

	if entry.Name == "" {
		return nil, NewInventoryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "informe o produto ou o nome")
	}

	if request.TotalPrice != nil {
		entry.TotalPrice = *request.TotalPrice
	}

	if request.AddedDate != nil {
		entry.AddedDate = *request.AddedDate
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewInventoryError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para entrada de estoque")
	}
	entry.ID = id

	if err := s.inventoryRepository.Create(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar entrada de estoque")
		return nil, NewInventoryError(ErrSaveEntry, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"inventory_entry_id": entry.ID,
		"inventory_location": entry.Location,
	}).Info("Entrada de estoque registrada")

	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.InventoryEntry, error) {
	entries, err := s.inventoryRepository.List(ctx)
	if err != nil {
		return nil, NewInventoryError(ErrFetchInventory, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return entries, nil
}

// Edit recalcula o total quando quantidade ou preço mudam e nenhum total foi informado
func (s *Service) Edit(ctx context.Context, request *domain.EditInventoryRequest) (*domain.InventoryEntry, error) {
	if request.ID == "" {
		return nil, NewInventoryError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := validation.ValidateStruct(request); err != nil {
		return nil, newValidationError(err)
	}

	entry, err := s.inventoryRepository.GetByID(ctx, request.ID)
	if err != nil {
		return nil, NewInventoryErrorWithID(ErrFetchInventory, apiErrors.ErrDatabaseOperation, request.ID, err.Error())
	}

	if entry == nil {
		return nil, NewInventoryErrorWithID(ErrEntryNotFound, apiErrors.ErrResourceNotFound, request.ID, "")
	}

	request.Apply(entry)

	if request.TotalPrice == nil && (request.Quantity != nil || request.QuantityPrice != nil) {
		entry.TotalPrice = entry.Quantity * entry.QuantityPrice
	}

	if err := s.inventoryRepository.Update(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).WithField("inventory_entry_id", entry.ID).Error("Erro ao atualizar entrada de estoque")
		return nil, NewInventoryErrorWithID(ErrSaveEntry, apiErrors.ErrDatabaseOperation, entry.ID, err.Error())
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewInventoryError(ErrEntryIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	deleted, err := s.inventoryRepository.Delete(ctx, id)
	if err != nil {
		return NewInventoryErrorWithID(ErrDeleteEntry, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if !deleted {
		return NewInventoryErrorWithID(ErrEntryNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return nil
}
