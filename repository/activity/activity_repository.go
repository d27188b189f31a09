package activity

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/model"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]model.Activity, error)
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	Create(ctx context.Context, a *model.Activity) (*model.Activity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewActivityRepository(conn *sqlx.DB) ActivityRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context) ([]model.Activity, error) {
	activities := make([]model.Activity, 0)
	q := "SELECT id, action, details, timestamp FROM activity ORDER BY timestamp DESC"
	if err := r.conn.SelectContext(ctx, &activities, q); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity
	q := "SELECT id, action, details, timestamp FROM activity WHERE id = ?"
	if err := r.conn.GetContext(ctx, &a, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *SQL) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	a.ID = uuid.NewString()
	q := "INSERT INTO activity (id, action, details, timestamp) VALUES (?, ?, ?, ?)"
	if _, err := r.conn.ExecContext(ctx, q, a.ID, a.Action, a.Details, a.Timestamp); err != nil {
		return nil, err
	}
	return a, nil
}
