package repository

import (
	"context"
	"database/sql"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/database/postgres"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=sale.go -destination=mocks/sale_repository_mock.go -package=mocks

const salesTable = "sales s"

const saleColumns = "s.id, s.product_id, s.name, s.unit_price, s.quantity, s.total_price, s.customer_type, " +
	"s.sale_date, s.transaction_id"

type SaleRepository interface {
	// FindSales retorna as vendas que satisfazem o predicado, com o produto vinculado (LEFT JOIN)
	FindSales(ctx context.Context, query domain.SalesQuery) ([]*domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	// Create grava as vendas e baixa o estoque dos produtos numa única transação
	Create(ctx context.Context, sales []*domain.Sale) error
	Update(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, id string) (bool, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// buildFindSalesQuery monta o SELECT com os limites de data (From inclusivo, Until exclusivo)
func buildFindSalesQuery(q domain.SalesQuery) squirrel.SelectBuilder {
	builder := squirrel.
		Select(saleColumns + ", " + productColumns).
		From(salesTable).
		LeftJoin("products p ON p.id = s.product_id").
		OrderBy("s.sale_date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if q.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.sale_date": *q.From})
	}

	if q.Until != nil {
		builder = builder.Where(squirrel.Lt{"s.sale_date": *q.Until})
	}

	if q.CustomerType != nil {
		builder = builder.Where(squirrel.Eq{"s.customer_type": *q.CustomerType})
	}

	return builder
}

func (r *saleRepository) FindSales(ctx context.Context, q domain.SalesQuery) ([]*domain.Sale, error) {
	query, args, err := buildFindSalesQuery(q).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSaleWithProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns + ", " + productColumns).
		From(salesTable).
		LeftJoin("products p ON p.id = s.product_id").
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	sale, err := scanSaleWithProduct(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear venda")
	}

	return sale, nil
}

func (r *saleRepository) Create(ctx context.Context, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insert := squirrel.
			Insert("sales").
			Columns("id", "product_id", "name", "unit_price", "quantity", "total_price", "customer_type",
				"sale_date", "transaction_id").
			PlaceholderFormat(squirrel.Dollar)

		for _, sale := range sales {
			insert = insert.Values(
				sale.ID,
				sale.ProductID,
				sale.Name,
				sale.UnitPrice,
				sale.Quantity,
				sale.TotalPrice,
				sale.CustomerType,
				sale.SaleDate,
				sale.TransactionID,
			)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "erro ao inserir vendas")
		}

		for _, sale := range sales {
			if sale.ProductID == nil {
				continue
			}

			if err := decrementStock(ctx, tx, *sale.ProductID, sale.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
}

func decrementStock(ctx context.Context, q postgres.Queryer, productID string, quantity float64) error {
	query, args, err := squirrel.
		Update("products").
		Set("quantity", squirrel.Expr("quantity - ?", quantity)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao baixar estoque do produto %s", productID)
	}

	return nil
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		SetMap(map[string]any{
			"quantity":      sale.Quantity,
			"unit_price":    sale.UnitPrice,
			"total_price":   sale.TotalPrice,
			"customer_type": sale.CustomerType,
			"sale_date":     sale.SaleDate,
		}).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao atualizar venda")
	}

	return nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover venda")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	return affected > 0, nil
}

// nullableProduct recebe as colunas do LEFT JOIN, que chegam nulas para vendas sem produto
type nullableProduct struct {
	id             sql.NullString
	barcode        sql.NullString
	name           sql.NullString
	category       sql.NullString
	unit           sql.NullString
	image          sql.NullString
	costPrice      sql.NullFloat64
	retailPrice    sql.NullFloat64
	wholesalePrice sql.NullFloat64
	quantity       sql.NullFloat64
	addedDate      sql.NullTime
	expiryDate     sql.NullTime
	createdAt      sql.NullTime
	updatedAt      sql.NullTime
}

func (n *nullableProduct) dest() []any {
	return []any{
		&n.id, &n.barcode, &n.name, &n.category, &n.unit, &n.image, &n.costPrice, &n.retailPrice,
		&n.wholesalePrice, &n.quantity, &n.addedDate, &n.expiryDate, &n.createdAt, &n.updatedAt,
	}
}

func (n *nullableProduct) toDomain() *domain.Product {
	if !n.id.Valid {
		return nil
	}

	product := &domain.Product{
		ID:             n.id.String,
		Name:           n.name.String,
		Category:       domain.ProductCategory(n.category.String),
		Unit:           domain.Unit(n.unit.String),
		CostPrice:      n.costPrice.Float64,
		RetailPrice:    n.retailPrice.Float64,
		WholesalePrice: n.wholesalePrice.Float64,
		Quantity:       n.quantity.Float64,
		AddedDate:      n.addedDate.Time,
		CreatedAt:      n.createdAt.Time,
		UpdatedAt:      n.updatedAt.Time,
	}

	if n.barcode.Valid {
		product.Barcode = &n.barcode.String
	}
	if n.image.Valid {
		product.Image = &n.image.String
	}
	if n.expiryDate.Valid {
		product.ExpiryDate = &n.expiryDate.Time
	}

	return product
}

func scanSaleWithProduct(row rowScanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	product := &nullableProduct{}

	dest := []any{
		&sale.ID,
		&sale.ProductID,
		&sale.Name,
		&sale.UnitPrice,
		&sale.Quantity,
		&sale.TotalPrice,
		&sale.CustomerType,
		&sale.SaleDate,
		&sale.TransactionID,
	}

	if err := row.Scan(append(dest, product.dest()...)...); err != nil {
		return nil, err
	}

	sale.Product = product.toDomain()

	return sale, nil
}
