package cataloging

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
)

type Cataloger interface {
	Register(ctx context.Context, request *domain.RegisterProductRequest) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, request *domain.UpdateProductRequest) (*domain.Product, error)
}

type Service struct {
	productRepository repository.ProductRepository
	now               func() time.Time
}

func NewService(productRepository repository.ProductRepository) Cataloger {
	return &Service{
		productRepository: productRepository,
		now:               time.Now,
	}
}

func (s *Service) Register(ctx context.Context, request *domain.RegisterProductRequest) (*domain.Product, error) {
	if err := validation.ValidateStruct(request); err != nil {
		return nil, newValidationError(err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewProductError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para produto")
	}

	unit := request.Unit
	if unit == "" {
		unit = domain.UnitUnits
	}

	product := &domain.Product{
		ID:             id,
		Barcode:        normalizeBarcode(request.Barcode),
		Name:           strings.TrimSpace(request.Name),
		Category:       request.Category,
		Unit:           unit,
		Image:          request.Image,
		CostPrice:      request.CostPrice,
		RetailPrice:    request.RetailPrice,
		WholesalePrice: request.WholesalePrice,
		Quantity:       request.Quantity,
		AddedDate:      s.now(),
		ExpiryDate:     request.ExpiryDate,
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewProductError(ErrProductAlreadyExists, apiErrors.ErrResourceAlreadyExists, "")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao salvar produto")
		return nil, NewProductError(ErrSaveProduct, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("product_id", product.ID).Info("Produto cadastrado com sucesso")

	return product, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepository.List(ctx)
	if err != nil {
		return nil, NewProductError(ErrFetchProducts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return products, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, NewProductError(ErrProductIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewProductErrorWithID(ErrFetchProducts, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if product == nil {
		return nil, NewProductErrorWithID(ErrProductNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return product, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateProductRequest) (*domain.Product, error) {
	if err := validation.ValidateStruct(request); err != nil {
		return nil, newValidationError(err)
	}

	product, err := s.GetByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	request.Barcode = normalizeBarcode(request.Barcode)
	request.Apply(product)

	if err := s.productRepository.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewProductErrorWithID(ErrProductAlreadyExists, apiErrors.ErrResourceAlreadyExists, product.ID, "")
		}

		log.ForContext(ctx).WithError(err).WithField("product_id", product.ID).Error("Erro ao atualizar produto")
		return nil, NewProductErrorWithID(ErrSaveProduct, apiErrors.ErrDatabaseOperation, product.ID, err.Error())
	}

	return product, nil
}

// normalizeBarcode trata código de barras em branco como ausente
func normalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*barcode)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
