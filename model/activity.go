package model

import (
	"time"

	"github.com/muhammadheryan/warehouse-tracker/constant"
)

type Activity struct {
	ID        string                  `db:"id" json:"id"`
	Action    constant.ActivityAction `db:"action" json:"action"`
	Details   string                  `db:"details" json:"details"`
	Timestamp time.Time               `db:"timestamp" json:"timestamp"`
}

type RecordActivityRequest struct {
	Action  string `json:"action" validate:"required"`
	Details string `json:"details" validate:"required"`
}
