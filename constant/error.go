package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrDuplicateSKU
	ErrWarehouseNotEmpty
	ErrCapacityExceeded
	ErrInsufficientStock
	ErrSameWarehouse
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrDuplicateSKU:      "sku already exists in warehouse",
	ErrWarehouseNotEmpty: "warehouse still holds inventory",
	ErrCapacityExceeded:  "warehouse capacity exceeded",
	ErrInsufficientStock: "insufficient item quantity",
	ErrSameWarehouse:     "source and destination warehouse are the same",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrDuplicateSKU:      http.StatusConflict,
	ErrWarehouseNotEmpty: http.StatusConflict,
	ErrCapacityExceeded:  http.StatusConflict,
	ErrInsufficientStock: http.StatusBadRequest,
	ErrSameWarehouse:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrDuplicateSKU:      "0004",
	ErrWarehouseNotEmpty: "0005",
	ErrCapacityExceeded:  "0006",
	ErrInsufficientStock: "0007",
	ErrSameWarehouse:     "0008",
}
