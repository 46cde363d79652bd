package selling

import (
	"context"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/internal/config"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/MHDGouse/Inventory-Backend/pkg/log"
	"github.com/MHDGouse/Inventory-Backend/pkg/utils"
	"github.com/MHDGouse/Inventory-Backend/pkg/validation"
	"github.com/google/uuid"
)

type Seller interface {
	AddSale(ctx context.Context, request *domain.AddSaleRequest) (*domain.Sale, error)
	AddBatch(ctx context.Context, requests []*domain.AddSaleRequest) (*domain.SaleTransaction, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Sale, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.Sale, error)
	Edit(ctx context.Context, request *domain.EditSaleRequest) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	saleRepository    repository.SaleRepository
	productRepository repository.ProductRepository
	location          *time.Location
	now               func() time.Time
}

func NewService(
	saleRepository repository.SaleRepository,
	productRepository repository.ProductRepository,
	cfg *config.Config,
) Seller {
	location := cfg.Analytics.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		saleRepository:    saleRepository,
		productRepository: productRepository,
		location:          location,
		now:               time.Now,
	}
}

func (s *Service) AddSale(ctx context.Context, request *domain.AddSaleRequest) (*domain.Sale, error) {
	sales, err := s.buildSales(ctx, []*domain.AddSaleRequest{request}, nil)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepository.Create(ctx, sales); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar venda")
		return nil, NewSaleError(ErrSaveSale, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id":    sales[0].ID,
		"product_id": request.ProductID,
	}).Info("Venda registrada com sucesso")

	return sales[0], nil
}

// AddBatch registra várias vendas sob um mesmo identificador de transação
func (s *Service) AddBatch(ctx context.Context, requests []*domain.AddSaleRequest) (*domain.SaleTransaction, error) {
	if len(requests) == 0 {
		return nil, NewSaleError(ErrEmptyTransaction, apiErrors.ErrInvalidRequest, "")
	}

	transactionID := uuid.New().String()

	sales, err := s.buildSales(ctx, requests, &transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepository.Create(ctx, sales); err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_transaction_id", transactionID).
			Error("Erro ao registrar transação de vendas")
		return nil, NewSaleError(ErrSaveSale, apiErrors.ErrDatabaseOperation, err.Error())
	}

	transaction := &domain.SaleTransaction{
		TransactionID: transactionID,
		Sales:         sales,
	}
	for _, sale := range sales {
		transaction.TotalPrice += sale.TotalPrice
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_transaction_id": transactionID,
		"sale_count":          len(sales),
	}).Info("Transação de vendas registrada com sucesso")

	return transaction, nil
}

// buildSales valida os pedidos e fixa o preço unitário de cada venda pelo tipo de cliente
func (s *Service) buildSales(
	ctx context.Context,
	requests []*domain.AddSaleRequest,
	transactionID *string,
) ([]*domain.Sale, error) {
	products := make(map[string]*domain.Product, len(requests))
	remaining := make(map[string]float64, len(requests))
	sales := make([]*domain.Sale, 0, len(requests))

	for _, request := range requests {
		if request == nil {
			return nil, NewSaleError(ErrInvalidSale, apiErrors.ErrInvalidRequest, "venda vazia")
		}

		if err := validation.ValidateStruct(request); err != nil {
			return nil, newValidationError(err)
		}

		product, ok := products[request.ProductID]
		if !ok {
			found, err := s.productRepository.GetByID(ctx, request.ProductID)
			if err != nil {
				return nil, NewSaleError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
			}
			if found == nil {
				return nil, NewSaleError(ErrProductNotFound, apiErrors.ErrResourceNotFound, request.ProductID)
			}

			product = found
			products[product.ID] = product
			remaining[product.ID] = product.Quantity
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewSaleError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para venda")
		}

		customerType := request.CustomerType
		if customerType == "" {
			customerType = domain.CustomerRetail
		}

		saleDate := s.now()
		if request.SaleDate != nil {
			saleDate = *request.SaleDate
		}

		unitPrice := product.PriceFor(customerType)
		productID := product.ID

		sales = append(sales, &domain.Sale{
			ID:            id,
			ProductID:     &productID,
			Product:       product,
			Name:          product.Name,
			UnitPrice:     unitPrice,
			Quantity:      request.Quantity,
			TotalPrice:    unitPrice * request.Quantity,
			CustomerType:  customerType,
			SaleDate:      saleDate,
			TransactionID: transactionID,
		})

		remaining[product.ID] -= request.Quantity
		if remaining[product.ID] < 0 {
			log.ForContext(ctx).WithFields(log.Fields{
				"product_id":        product.ID,
				"product_remaining": remaining[product.ID],
			}).Warn("Venda deixa o estoque do produto negativo")
		}
	}

	return sales, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.findSales(ctx, domain.SalesQuery{})
}

// ListByDate retorna as vendas do dia informado (YYYY-MM-DD) no fuso configurado
func (s *Service) ListByDate(ctx context.Context, date string) ([]*domain.Sale, error) {
	day, err := utils.ParseDateInLocation(date, s.location)
	if err != nil || day == nil {
		return nil, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, date)
	}

	until := day.AddDate(0, 0, 1)

	return s.findSales(ctx, domain.SalesQuery{From: day, Until: &until})
}

// ListByDateRange aceita intervalos abertos; endDate é inclusivo
func (s *Service) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.Sale, error) {
	start, err := utils.ParseDateInLocation(startDate, s.location)
	if err != nil {
		return nil, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, startDate)
	}

	end, err := utils.ParseDateInLocation(endDate, s.location)
	if err != nil {
		return nil, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, endDate)
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidRequest, "startDate posterior a endDate")
	}

	query := domain.SalesQuery{From: start}
	if end != nil {
		until := end.AddDate(0, 0, 1)
		query.Until = &until
	}

	return s.findSales(ctx, query)
}

func (s *Service) findSales(ctx context.Context, query domain.SalesQuery) ([]*domain.Sale, error) {
	sales, err := s.saleRepository.FindSales(ctx, query)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vendas")
		return nil, NewSaleError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return sales, nil
}

// Edit altera a venda sem consultar o preço atual do produto
func (s *Service) Edit(ctx context.Context, request *domain.EditSaleRequest) (*domain.Sale, error) {
	if request.ID == "" {
		return nil, NewSaleError(ErrSaleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := validation.ValidateStruct(request); err != nil {
		return nil, newValidationError(err)
	}

	sale, err := s.saleRepository.GetByID(ctx, request.ID)
	if err != nil {
		return nil, NewSaleErrorWithID(ErrFetchSales, apiErrors.ErrDatabaseOperation, request.ID, err.Error())
	}

	if sale == nil {
		return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrResourceNotFound, request.ID, "")
	}

	if request.Quantity != nil {
		sale.Quantity = *request.Quantity
		sale.TotalPrice = sale.UnitPrice * sale.Quantity
	}

	if request.TotalPrice != nil {
		sale.TotalPrice = *request.TotalPrice
	}

	if request.CustomerType != nil {
		sale.CustomerType = *request.CustomerType
	}

	if request.SaleDate != nil {
		sale.SaleDate = *request.SaleDate
	}

	if err := s.saleRepository.Update(ctx, sale); err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_id", sale.ID).Error("Erro ao atualizar venda")
		return nil, NewSaleErrorWithID(ErrSaveSale, apiErrors.ErrDatabaseOperation, sale.ID, err.Error())
	}

	return sale, nil
}

// Delete remove a venda sem devolver a quantidade ao estoque
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewSaleError(ErrSaleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	deleted, err := s.saleRepository.Delete(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("Erro ao remover venda")
		return NewSaleErrorWithID(ErrDeleteSale, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if !deleted {
		return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	return nil
}
