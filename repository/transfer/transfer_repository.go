package transfer

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/model"
)

type TransferRepository interface {
	List(ctx context.Context) ([]model.Transfer, error)
	GetByID(ctx context.Context, id string) (*model.Transfer, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) (*model.Transfer, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const selectColumns = "id, item_id, item_name, from_warehouse_id, from_name, to_warehouse_id, to_name, quantity, transfer_date, created_at"

func (r *SQL) List(ctx context.Context) ([]model.Transfer, error) {
	transfers := make([]model.Transfer, 0)
	q := "SELECT " + selectColumns + " FROM transfer ORDER BY transfer_date"
	if err := r.conn.SelectContext(ctx, &transfers, q); err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.Transfer, error) {
	var t model.Transfer
	q := "SELECT " + selectColumns + " FROM transfer WHERE id = ?"
	if err := r.conn.GetContext(ctx, &t, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) (*model.Transfer, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	q := "INSERT INTO transfer (id, item_id, item_name, from_warehouse_id, from_name, to_warehouse_id, to_name, quantity, transfer_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, q, t.ID, t.ItemID, t.ItemName, t.FromWarehouseID, t.From, t.ToWarehouseID, t.To, t.Quantity, t.Date, t.CreatedAt); err != nil {
		return nil, err
	}
	return t, nil
}
