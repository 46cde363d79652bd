package repository

import (
	"context"
	"database/sql"

	"github.com/MHDGouse/Inventory-Backend/infrastructure/database/postgres"
	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=inventory.go -destination=mocks/inventory_repository_mock.go -package=mocks

const inventoryTable = "inventory_entries i"

const inventoryColumns = "i.id, i.product_id, i.name, i.quantity, i.quantity_price, i.return_quantity, " +
	"i.return_amount, i.total_price, i.profit, i.location, i.added_date, i.created_at, i.updated_at"

type InventoryRepository interface {
	Create(ctx context.Context, entry *domain.InventoryEntry) error
	GetByID(ctx context.Context, id string) (*domain.InventoryEntry, error)
	List(ctx context.Context) ([]*domain.InventoryEntry, error)
	Update(ctx context.Context, entry *domain.InventoryEntry) error
	Delete(ctx context.Context, id string) (bool, error)
}

type inventoryRepository struct {
	conn postgres.Conn
}

func NewInventoryRepository(conn postgres.Conn) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

func (r *inventoryRepository) Create(ctx context.Context, entry *domain.InventoryEntry) error {
	query, args, err := squirrel.
		Insert("inventory_entries").
		Columns("id", "product_id", "name", "quantity", "quantity_price", "return_quantity", "return_amount",
			"total_price", "profit", "location", "added_date").
		Values(
			entry.ID,
			entry.ProductID,
			entry.Name,
			entry.Quantity,
			entry.QuantityPrice,
			entry.ReturnQuantity,
			entry.ReturnAmount,
			entry.TotalPrice,
			entry.Profit,
			entry.Location,
			entry.AddedDate,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return errors.Wrap(err, "erro ao inserir entrada de estoque")
	}

	return nil
}

func (r *inventoryRepository) selectEntries() squirrel.SelectBuilder {
	return squirrel.
		Select(inventoryColumns + ", " + productColumns).
		From(inventoryTable).
		LeftJoin("products p ON p.id = i.product_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryEntry, error) {
	query, args, err := r.selectEntries().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	entry, err := scanInventoryEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear entrada de estoque")
	}

	return entry, nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]*domain.InventoryEntry, error) {
	query, args, err := r.selectEntries().OrderBy("i.added_date DESC", "i.id ASC").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	entries := make([]*domain.InventoryEntry, 0)
	for rows.Next() {
		entry, err := scanInventoryEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear entrada de estoque")
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return entries, nil
}

func (r *inventoryRepository) Update(ctx context.Context, entry *domain.InventoryEntry) error {
	query, args, err := squirrel.
		Update("inventory_entries").
		SetMap(map[string]any{
			"name":            entry.Name,
			"quantity":        entry.Quantity,
			"quantity_price":  entry.QuantityPrice,
			"return_quantity": entry.ReturnQuantity,
			"return_amount":   entry.ReturnAmount,
			"total_price":     entry.TotalPrice,
			"profit":          entry.Profit,
			"location":        entry.Location,
			"added_date":      entry.AddedDate,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.UpdatedAt); err != nil {
		return errors.Wrap(err, "erro ao atualizar entrada de estoque")
	}

	return nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("inventory_entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover entrada de estoque")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	return affected > 0, nil
}

func scanInventoryEntry(row rowScanner) (*domain.InventoryEntry, error) {
	entry := &domain.InventoryEntry{}
	product := &nullableProduct{}

	dest := []any{
		&entry.ID,
		&entry.ProductID,
		&entry.Name,
		&entry.Quantity,
		&entry.QuantityPrice,
		&entry.ReturnQuantity,
		&entry.ReturnAmount,
		&entry.TotalPrice,
		&entry.Profit,
		&entry.Location,
		&entry.AddedDate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	}

	if err := row.Scan(append(dest, product.dest()...)...); err != nil {
		return nil, err
	}

	entry.Product = product.toDomain()

	return entry, nil
}
