package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	validatorx "github.com/muhammadheryan/warehouse-tracker/utils/validator"
)

// ListItems handler
// @Summary List inventory items
// @Description List all inventory items, optionally filtered by warehouse
// @Tags Inventory
// @Produce json
// @Param warehouseId query string false "Filter by warehouse id"
// @Success 200 {array} model.InventoryItem
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/inventory [get]
func (s *RestHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	warehouseID := r.URL.Query().Get("warehouseId")

	res, err := s.InventoryApp.ListItems(ctx, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetItem handler
// @Summary Get inventory item
// @Description Get a single inventory item by id
// @Tags Inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} model.InventoryItem
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/inventory/{id} [get]
func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.InventoryApp.GetItem(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateItem handler
// @Summary Create inventory item
// @Description Add a new item to a warehouse, SKU must be unique per warehouse
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.CreateItemRequest true "Create Item Request"
// @Success 200 {object} model.InventoryItem
// @Failure 400 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/inventory [post]
func (s *RestHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateItem(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateItem handler
// @Summary Update inventory item
// @Description Update item fields, warehouse stock counters follow the change
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body model.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} model.InventoryItem
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/inventory/{id} [put]
func (s *RestHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req model.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.UpdateItem(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteItem handler
// @Summary Delete inventory item
// @Description Delete an item and release its units from the warehouse stock
// @Tags Inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/inventory/{id} [delete]
func (s *RestHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.InventoryApp.DeleteItem(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Inventory deleted successfully"})
}
