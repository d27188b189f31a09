package model

import "time"

type InventoryItem struct {
	ID          string    `db:"id" json:"id"`
	SKU         string    `db:"sku" json:"sku"`
	Name        string    `db:"name" json:"name"`
	WarehouseID string    `db:"warehouse_id" json:"warehouseId"`
	Location    string    `db:"location" json:"location"`
	Quantity    int64     `db:"quantity" json:"quantity"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateItemRequest struct {
	SKU         string `json:"sku" validate:"required"`
	Name        string `json:"name" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,min=1"`
	Description string `json:"description"`
}

type UpdateItemRequest struct {
	SKU         string `json:"sku" validate:"required"`
	Name        string `json:"name" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	Description string `json:"description"`
}
