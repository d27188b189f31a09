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

// ListWarehouses handler
// @Summary List warehouses
// @Description List all warehouses
// @Tags Warehouses
// @Produce json
// @Success 200 {array} model.Warehouse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.WarehouseApp.ListWarehouses(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetWarehouse handler
// @Summary Get warehouse
// @Description Get a single warehouse by id
// @Tags Warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} model.Warehouse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.WarehouseApp.GetWarehouse(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateWarehouse handler
// @Summary Create warehouse
// @Description Register a new warehouse with zero stock
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param request body model.CreateWarehouseRequest true "Create Warehouse Request"
// @Success 200 {object} model.Warehouse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/warehouses [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.CreateWarehouse(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateWarehouse handler
// @Summary Update warehouse
// @Description Update warehouse fields, capacity may not shrink below current stock
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param id path string true "Warehouse ID"
// @Param request body model.UpdateWarehouseRequest true "Update Warehouse Request"
// @Success 200 {object} model.Warehouse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req model.UpdateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.UpdateWarehouse(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteWarehouse handler
// @Summary Delete warehouse
// @Description Delete a warehouse that holds no inventory
// @Tags Warehouses
// @Produce json
// @Param id path string true "Warehouse ID"
// @Success 200 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /api/warehouses/{id} [delete]
func (s *RestHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.WarehouseApp.DeleteWarehouse(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Warehouse deleted successfully"})
}
