package model

import "time"

type Warehouse struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Location     string    `db:"location" json:"location"`
	Capacity     int64     `db:"capacity" json:"capacity"`
	CurrentStock int64     `db:"current_stock" json:"currentStock"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,min=1"`
}

type UpdateWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,min=1"`
}
