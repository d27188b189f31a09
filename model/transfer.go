package model

import "time"

// Transfer is an immutable fact. From/To hold the warehouse names as they
// were at execution time; later renames must not rewrite history.
type Transfer struct {
	ID              string    `db:"id" json:"id"`
	ItemID          string    `db:"item_id" json:"itemId"`
	ItemName        string    `db:"item_name" json:"itemName"`
	FromWarehouseID string    `db:"from_warehouse_id" json:"fromWarehouseId"`
	From            string    `db:"from_name" json:"from"`
	ToWarehouseID   string    `db:"to_warehouse_id" json:"toWarehouseId"`
	To              string    `db:"to_name" json:"to"`
	Quantity        int64     `db:"quantity" json:"quantity"`
	Date            time.Time `db:"transfer_date" json:"date"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type TransferRequest struct {
	ItemID        string `json:"itemId" validate:"required"`
	ToWarehouseID string `json:"toWarehouseId" validate:"required"`
	Quantity      int64  `json:"quantity" validate:"required,min=1"`
}
