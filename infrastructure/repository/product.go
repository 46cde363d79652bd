package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/database/postgres"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=product.go -destination=mocks/product_repository_mock.go -package=mocks

const productsTable = "products p"

const productColumns = "p.id, p.barcode, p.name, p.category, p.unit, p.image, p.cost_price, p.retail_price, " +
	"p.wholesale_price, p.quantity, p.added_date, p.expiry_date, p.created_at, p.updated_at"

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	ListStockAlertCandidates(ctx context.Context, lowStockThreshold float64, expiresBefore time.Time) ([]*domain.Product, error)
}

type productRepository struct {
	conn postgres.Conn
}

func NewProductRepository(conn postgres.Conn) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query, args, err := squirrel.
		Insert("products").
		Columns("id", "barcode", "name", "category", "unit", "image", "cost_price", "retail_price",
			"wholesale_price", "quantity", "added_date", "expiry_date").
		Values(
			product.ID,
			product.Barcode,
			product.Name,
			product.Category,
			product.Unit,
			product.Image,
			product.CostPrice,
			product.RetailPrice,
			product.WholesalePrice,
			product.Quantity,
			product.AddedDate,
			product.ExpiryDate,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return errors.Wrap(err, "erro ao inserir produto")
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear produto")
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.queryProducts(ctx, query, args...)
}

// ListStockAlertCandidates retorna produtos com estoque baixo ou validade até expiresBefore
func (r *productRepository) ListStockAlertCandidates(ctx context.Context, lowStockThreshold float64, expiresBefore time.Time) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Or{
			squirrel.LtOrEq{"p.quantity": lowStockThreshold},
			squirrel.And{
				squirrel.NotEq{"p.expiry_date": nil},
				squirrel.Lt{"p.expiry_date": expiresBefore},
			},
		}).
		OrderBy("p.quantity ASC", "p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query, args, err := squirrel.
		Update("products").
		SetMap(map[string]any{
			"barcode":         product.Barcode,
			"name":            product.Name,
			"category":        product.Category,
			"unit":            product.Unit,
			"image":           product.Image,
			"cost_price":      product.CostPrice,
			"retail_price":    product.RetailPrice,
			"wholesale_price": product.WholesalePrice,
			"quantity":        product.Quantity,
			"expiry_date":     product.ExpiryDate,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": product.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return errors.Wrap(err, "erro ao atualizar produto")
	}

	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	if err := row.Scan(
		&product.ID,
		&product.Barcode,
		&product.Name,
		&product.Category,
		&product.Unit,
		&product.Image,
		&product.CostPrice,
		&product.RetailPrice,
		&product.WholesalePrice,
		&product.Quantity,
		&product.AddedDate,
		&product.ExpiryDate,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return product, nil
}
