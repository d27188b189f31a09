package warehouse

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/model"
)

type WarehouseRepository interface {
	List(ctx context.Context) ([]model.Warehouse, error)
	GetByID(ctx context.Context, id string) (*model.Warehouse, error)
	Create(ctx context.Context, wh *model.Warehouse) (*model.Warehouse, error)
	Update(ctx context.Context, wh *model.Warehouse) error
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Warehouse, error)
	AdjustStockTx(ctx context.Context, tx *sqlx.Tx, id string, delta int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context) ([]model.Warehouse, error) {
	warehouses := make([]model.Warehouse, 0)
	q := "SELECT id, name, location, capacity, current_stock, created_at, updated_at FROM warehouse ORDER BY created_at"
	if err := r.conn.SelectContext(ctx, &warehouses, q); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.Warehouse, error) {
	var wh model.Warehouse
	q := "SELECT id, name, location, capacity, current_stock, created_at, updated_at FROM warehouse WHERE id = ?"
	if err := r.conn.GetContext(ctx, &wh, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *SQL) Create(ctx context.Context, wh *model.Warehouse) (*model.Warehouse, error) {
	wh.ID = uuid.NewString()
	now := time.Now()
	wh.CreatedAt = now
	wh.UpdatedAt = now
	q := "INSERT INTO warehouse (id, name, location, capacity, current_stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	if _, err := r.conn.ExecContext(ctx, q, wh.ID, wh.Name, wh.Location, wh.Capacity, wh.CurrentStock, wh.CreatedAt, wh.UpdatedAt); err != nil {
		return nil, err
	}
	return wh, nil
}

func (r *SQL) Update(ctx context.Context, wh *model.Warehouse) error {
	wh.UpdatedAt = time.Now()
	q := "UPDATE warehouse SET name = ?, location = ?, capacity = ?, updated_at = ? WHERE id = ?"
	res, err := r.conn.ExecContext(ctx, q, wh.Name, wh.Location, wh.Capacity, wh.UpdatedAt, wh.ID)
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

func (r *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Warehouse, error) {
	var wh model.Warehouse
	q := "SELECT id, name, location, capacity, current_stock, created_at, updated_at FROM warehouse WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &wh, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *SQL) AdjustStockTx(ctx context.Context, tx *sqlx.Tx, id string, delta int64) error {
	q := "UPDATE warehouse SET current_stock = current_stock + ?, updated_at = ? WHERE id = ?"
	res, err := tx.ExecContext(ctx, q, delta, time.Now(), id)
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
	res, err := tx.ExecContext(ctx, "DELETE FROM warehouse WHERE id = ?", id)
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
