package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/model"
)

type InventoryRepository interface {
	List(ctx context.Context, warehouseID string) ([]model.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*model.InventoryItem, error)
	TotalQuantity(ctx context.Context) (int64, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.InventoryItem, error)
	GetBySKUWarehouseForUpdateTx(ctx context.Context, tx *sqlx.Tx, sku, warehouseID string) (*model.InventoryItem, error)
	CountByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID string) (int64, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.InventoryItem) (*model.InventoryItem, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, item *model.InventoryItem) error
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const selectColumns = "id, sku, name, warehouse_id, location, quantity, description, created_at, updated_at"

func (r *SQL) List(ctx context.Context, warehouseID string) ([]model.InventoryItem, error) {
	items := make([]model.InventoryItem, 0)
	q := "SELECT " + selectColumns + " FROM inventory"
	args := []interface{}{}
	if warehouseID != "" {
		q += " WHERE warehouse_id = ?"
		args = append(args, warehouseID)
	}
	q += " ORDER BY created_at"
	if err := r.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	q := "SELECT " + selectColumns + " FROM inventory WHERE id = ?"
	if err := r.conn.GetContext(ctx, &item, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) TotalQuantity(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity),0) as total FROM inventory"
	if err := r.conn.GetContext(ctx, &total, q); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	q := "SELECT " + selectColumns + " FROM inventory WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &item, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) GetBySKUWarehouseForUpdateTx(ctx context.Context, tx *sqlx.Tx, sku, warehouseID string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	q := "SELECT " + selectColumns + " FROM inventory WHERE sku = ? AND warehouse_id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &item, q, sku, warehouseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) CountByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID string) (int64, error) {
	var count int64
	q := "SELECT COUNT(*) FROM inventory WHERE warehouse_id = ?"
	if err := tx.GetContext(ctx, &count, q, warehouseID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.InventoryItem) (*model.InventoryItem, error) {
	item.ID = uuid.NewString()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	q := "INSERT INTO inventory (id, sku, name, warehouse_id, location, quantity, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, q, item.ID, item.SKU, item.Name, item.WarehouseID, item.Location, item.Quantity, item.Description, item.CreatedAt, item.UpdatedAt); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, item *model.InventoryItem) error {
	item.UpdatedAt = time.Now()
	q := "UPDATE inventory SET sku = ?, name = ?, warehouse_id = ?, location = ?, quantity = ?, description = ?, updated_at = ? WHERE id = ?"
	res, err := tx.ExecContext(ctx, q, item.SKU, item.Name, item.WarehouseID, item.Location, item.Quantity, item.Description, item.UpdatedAt, item.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int64) error {
	q := "UPDATE inventory SET quantity = ?, updated_at = ? WHERE id = ?"
	res, err := tx.ExecContext(ctx, q, quantity, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM inventory WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
