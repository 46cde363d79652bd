package selling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository/mocks"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSaleRepository, *mocks.MockProductRepository) {
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	return &Service{
		saleRepository:    saleRepo,
		productRepository: productRepo,
		location:          time.UTC,
		now:               func() time.Time { return now },
	}, saleRepo, productRepo
}

func milk() *domain.Product {
	return &domain.Product{
		ID:             "P-MILK",
		Name:           "Leite",
		Category:       domain.CategoryMilk,
		CostPrice:      40,
		RetailPrice:    50,
		WholesalePrice: 45,
		Quantity:       3,
	}
}

func TestService_AddSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, productRepo := newTestService(ctrl)

	tests := []struct {
		name     string
		request  *domain.AddSaleRequest
		setup    func()
		validate func(t *testing.T, sale *domain.Sale, err error)
	}{
		{
			name:    "cliente varejo usa o preço de varejo",
			request: &domain.AddSaleRequest{ProductID: "P-MILK", Quantity: 2},
			setup: func() {
				productRepo.EXPECT().GetByID(gomock.Any(), "P-MILK").Return(milk(), nil)
				saleRepo.EXPECT().Create(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 50.0, sale.UnitPrice)
				assert.Equal(t, 100.0, sale.TotalPrice)
				assert.Equal(t, domain.CustomerRetail, sale.CustomerType)
				assert.Equal(t, "Leite", sale.Name)
				assert.Equal(t, "P-MILK", *sale.ProductID)
				assert.Nil(t, sale.TransactionID)
				assert.Equal(t, service.now(), sale.SaleDate)
			},
		},
		{
			name: "cliente atacado usa o preço de lojista",
			request: &domain.AddSaleRequest{
				ProductID:    "P-MILK",
				Quantity:     10,
				CustomerType: domain.CustomerWholesale,
			},
			setup: func() {
				productRepo.EXPECT().GetByID(gomock.Any(), "P-MILK").Return(milk(), nil)
				saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 45.0, sale.UnitPrice)
				assert.Equal(t, 450.0, sale.TotalPrice)
			},
		},
		{
			name:    "produto inexistente",
			request: &domain.AddSaleRequest{ProductID: "P404", Quantity: 1},
			setup: func() {
				productRepo.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.Nil(t, sale)
				assert.True(t, errors.Is(err, ErrProductNotFound))

				var saleErr *SaleError
				require.True(t, errors.As(err, &saleErr))
				assert.Equal(t, apiErrors.ErrResourceNotFound, saleErr.Code)
			},
		},
		{
			name:    "quantidade zero é rejeitada",
			request: &domain.AddSaleRequest{ProductID: "P-MILK", Quantity: 0},
			setup:   func() {},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.True(t, errors.Is(err, ErrInvalidSale))
			},
		},
		{
			name:    "falha ao gravar",
			request: &domain.AddSaleRequest{ProductID: "P-MILK", Quantity: 1},
			setup: func() {
				productRepo.EXPECT().GetByID(gomock.Any(), "P-MILK").Return(milk(), nil)
				saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.True(t, errors.Is(err, ErrSaveSale))
				assert.Contains(t, err.Error(), "conexão perdida")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			sale, err := service.AddSale(context.Background(), tt.request)
			tt.validate(t, sale, err)
		})
	}
}

func TestService_AddBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, productRepo := newTestService(ctrl)

	t.Run("vendas compartilham a transação", func(t *testing.T) {
		curd := &domain.Product{ID: "P-CURD", Name: "Coalhada", RetailPrice: 20, WholesalePrice: 18}

		productRepo.EXPECT().GetByID(gomock.Any(), "P-MILK").Return(milk(), nil).Times(1)
		productRepo.EXPECT().GetByID(gomock.Any(), "P-CURD").Return(curd, nil).Times(1)
		saleRepo.EXPECT().Create(gomock.Any(), gomock.Len(3)).Return(nil)

		transaction, err := service.AddBatch(context.Background(), []*domain.AddSaleRequest{
			{ProductID: "P-MILK", Quantity: 1},
			{ProductID: "P-CURD", Quantity: 2, CustomerType: domain.CustomerWholesale},
			{ProductID: "P-MILK", Quantity: 4},
		})

		require.NoError(t, err)
		require.Len(t, transaction.Sales, 3)
		assert.NotEmpty(t, transaction.TransactionID)
		assert.Equal(t, 50.0+36.0+200.0, transaction.TotalPrice)

		for _, sale := range transaction.Sales {
			require.NotNil(t, sale.TransactionID)
			assert.Equal(t, transaction.TransactionID, *sale.TransactionID)
		}
	})

	t.Run("lista vazia", func(t *testing.T) {
		_, err := service.AddBatch(context.Background(), nil)
		assert.True(t, errors.Is(err, ErrEmptyTransaction))
	})

	t.Run("um produto inexistente cancela a transação", func(t *testing.T) {
		productRepo.EXPECT().GetByID(gomock.Any(), "P-MILK").Return(milk(), nil)
		productRepo.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, nil)

		_, err := service.AddBatch(context.Background(), []*domain.AddSaleRequest{
			{ProductID: "P-MILK", Quantity: 1},
			{ProductID: "P404", Quantity: 1},
		})

		assert.True(t, errors.Is(err, ErrProductNotFound))
	})
}

func TestService_ListByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	t.Run("busca o dia inteiro", func(t *testing.T) {
		saleRepo.EXPECT().
			FindSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q domain.SalesQuery) ([]*domain.Sale, error) {
				require.NotNil(t, q.From)
				require.NotNil(t, q.Until)
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *q.From)
				assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *q.Until)
				assert.Nil(t, q.CustomerType)
				return []*domain.Sale{{ID: "S1"}}, nil
			})

		sales, err := service.ListByDate(context.Background(), "2024-03-01")
		require.NoError(t, err)
		assert.Len(t, sales, 1)
	})

	t.Run("data inválida", func(t *testing.T) {
		_, err := service.ListByDate(context.Background(), "01/03/2024")

		var saleErr *SaleError
		require.True(t, errors.As(err, &saleErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, saleErr.Code)
	})
}

func TestService_ListByDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	t.Run("data final é inclusiva", func(t *testing.T) {
		saleRepo.EXPECT().
			FindSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q domain.SalesQuery) ([]*domain.Sale, error) {
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *q.From)
				assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), *q.Until)
				return []*domain.Sale{}, nil
			})

		sales, err := service.ListByDateRange(context.Background(), "2024-03-01", "2024-03-07")
		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("apenas data inicial", func(t *testing.T) {
		saleRepo.EXPECT().
			FindSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q domain.SalesQuery) ([]*domain.Sale, error) {
				assert.NotNil(t, q.From)
				assert.Nil(t, q.Until)
				return nil, nil
			})

		_, err := service.ListByDateRange(context.Background(), "2024-03-01", "")
		require.NoError(t, err)
	})

	t.Run("intervalo invertido", func(t *testing.T) {
		_, err := service.ListByDateRange(context.Background(), "2024-03-07", "2024-03-01")
		assert.True(t, errors.Is(err, ErrInvalidDate))
	})
}

func TestService_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	recorded := func() *domain.Sale {
		return &domain.Sale{
			ID:           "S1",
			Product:      &domain.Product{ID: "P-MILK", RetailPrice: 80},
			UnitPrice:    50,
			Quantity:     2,
			TotalPrice:   100,
			CustomerType: domain.CustomerRetail,
		}
	}

	tests := []struct {
		name     string
		request  *domain.EditSaleRequest
		setup    func()
		validate func(t *testing.T, sale *domain.Sale, err error)
	}{
		{
			name:    "nova quantidade usa o preço unitário registrado",
			request: &domain.EditSaleRequest{ID: "S1", Quantity: floatPtr(3)},
			setup: func() {
				saleRepo.EXPECT().GetByID(gomock.Any(), "S1").Return(recorded(), nil)
				saleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 150.0, sale.TotalPrice)
			},
		},
		{
			name:    "total informado prevalece",
			request: &domain.EditSaleRequest{ID: "S1", Quantity: floatPtr(3), TotalPrice: floatPtr(140)},
			setup: func() {
				saleRepo.EXPECT().GetByID(gomock.Any(), "S1").Return(recorded(), nil)
				saleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 140.0, sale.TotalPrice)
				assert.Equal(t, 3.0, sale.Quantity)
			},
		},
		{
			name:    "venda inexistente",
			request: &domain.EditSaleRequest{ID: "S404", Quantity: floatPtr(1)},
			setup: func() {
				saleRepo.EXPECT().GetByID(gomock.Any(), "S404").Return(nil, nil)
			},
			validate: func(t *testing.T, sale *domain.Sale, err error) {
				assert.True(t, errors.Is(err, ErrSaleNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			sale, err := service.Edit(context.Background(), tt.request)
			tt.validate(t, sale, err)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, saleRepo, _ := newTestService(ctrl)

	saleRepo.EXPECT().Delete(gomock.Any(), "S1").Return(true, nil)
	saleRepo.EXPECT().Delete(gomock.Any(), "S404").Return(false, nil)

	assert.NoError(t, service.Delete(context.Background(), "S1"))
	assert.True(t, errors.Is(service.Delete(context.Background(), "S404"), ErrSaleNotFound))
}
