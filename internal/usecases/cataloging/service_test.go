package cataloging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository"
	"github.com/MHDGouse/Inventory-Backend/infrastructure/repository/mocks"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/MHDGouse/Inventory-Backend/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	service := &Service{productRepository: mockProductRepo, now: func() time.Time { return now }}

	tests := []struct {
		name     string
		request  *domain.RegisterProductRequest
		setup    func()
		validate func(t *testing.T, product *domain.Product, err error)
	}{
		{
			name: "cadastro com unidade padrão e código de barras normalizado",
			request: &domain.RegisterProductRequest{
				Barcode:        stringPtr(" 7891000100103 "),
				Name:           " Leite Integral ",
				Category:       domain.CategoryMilk,
				CostPrice:      40,
				RetailPrice:    50,
				WholesalePrice: 45,
				Quantity:       20,
			},
			setup: func() {
				mockProductRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Product) error {
						assert.Len(t, p.ID, 12)
						return nil
					})
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Leite Integral", product.Name)
				assert.Equal(t, domain.UnitUnits, product.Unit)
				assert.Equal(t, "7891000100103", *product.Barcode)
				assert.Equal(t, now, product.AddedDate)
			},
		},
		{
			name: "código de barras duplicado",
			request: &domain.RegisterProductRequest{
				Barcode:  stringPtr("123"),
				Name:     "Coalhada",
				Category: domain.CategoryCurd,
			},
			setup: func() {
				mockProductRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(repository.ErrDuplicateKey)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.Nil(t, product)
				assert.True(t, errors.Is(err, ErrProductAlreadyExists))

				var productErr *ProductError
				require.True(t, errors.As(err, &productErr))
				assert.Equal(t, apiErrors.ErrResourceAlreadyExists, productErr.Code)
			},
		},
		{
			name: "categoria inválida não chega ao repositório",
			request: &domain.RegisterProductRequest{
				Name:     "Queijo",
				Category: "Cheese",
			},
			setup: func() {},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.True(t, errors.Is(err, ErrInvalidProduct))

				var productErr *ProductError
				require.True(t, errors.As(err, &productErr))
				require.Len(t, productErr.Fields, 1)
				assert.Equal(t, "category", productErr.Fields[0].Field)
			},
		},
		{
			name: "falha no banco",
			request: &domain.RegisterProductRequest{
				Name:     "Suco",
				Category: domain.CategoryJuice,
			},
			setup: func() {
				mockProductRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("timeout"))
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.True(t, errors.Is(err, ErrSaveProduct))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			product, err := service.Register(context.Background(), tt.request)
			tt.validate(t, product, err)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().GetByID(gomock.Any(), "P1").Return(&domain.Product{ID: "P1"}, nil)
	mockProductRepo.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, nil)

	product, err := service.GetByID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", product.ID)

	_, err = service.GetByID(context.Background(), "P404")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	_, err = service.GetByID(context.Background(), "")
	assert.True(t, errors.Is(err, ErrProductIDRequired))
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	t.Run("atualiza apenas os campos informados", func(t *testing.T) {
		existing := &domain.Product{
			ID:          "P1",
			Name:        "Leite",
			Category:    domain.CategoryMilk,
			CostPrice:   30,
			RetailPrice: 40,
		}

		mockProductRepo.EXPECT().GetByID(gomock.Any(), "P1").Return(existing, nil)
		mockProductRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		product, err := service.Update(context.Background(), &domain.UpdateProductRequest{
			ID:          "P1",
			RetailPrice: floatPtr(45),
		})

		require.NoError(t, err)
		assert.Equal(t, 45.0, product.RetailPrice)
		assert.Equal(t, 30.0, product.CostPrice)
		assert.Equal(t, "Leite", product.Name)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		mockProductRepo.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, nil)

		_, err := service.Update(context.Background(), &domain.UpdateProductRequest{
			ID:   "P404",
			Name: stringPtr("Novo nome"),
		})

		assert.True(t, errors.Is(err, ErrProductNotFound))
	})

	t.Run("preço negativo é rejeitado", func(t *testing.T) {
		_, err := service.Update(context.Background(), &domain.UpdateProductRequest{
			ID:        "P1",
			CostPrice: floatPtr(-1),
		})

		assert.True(t, errors.Is(err, ErrInvalidProduct))
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	mockProductRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := service.List(context.Background())
	assert.True(t, errors.Is(err, ErrFetchProducts))
}
