package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	activityrepo "github.com/muhammadheryan/warehouse-tracker/repository/activity"
	inventoryrepo "github.com/muhammadheryan/warehouse-tracker/repository/inventory"
	txrepo "github.com/muhammadheryan/warehouse-tracker/repository/tx"
	warehouserepo "github.com/muhammadheryan/warehouse-tracker/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error)
	CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id string, req *model.UpdateWarehouseRequest) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error
}

type warehouseAppImpl struct {
	txRepo        txrepo.TxRepository
	warehouseRepo warehouserepo.WarehouseRepository
	inventoryRepo inventoryrepo.InventoryRepository
	activityRepo  activityrepo.ActivityRepository
}

func NewWarehouseApp(txRepo txrepo.TxRepository, warehouseRepo warehouserepo.WarehouseRepository, inventoryRepo inventoryrepo.InventoryRepository, activityRepo activityrepo.ActivityRepository) WarehouseApp {
	return &warehouseAppImpl{
		txRepo:        txRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		activityRepo:  activityRepo,
	}
}

func (s *warehouseAppImpl) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[ListWarehouses] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return warehouses, nil
}

func (s *warehouseAppImpl) GetWarehouse(ctx context.Context, id string) (*model.Warehouse, error) {
	wh, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetWarehouse] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return wh, nil
}

func (s *warehouseAppImpl) CreateWarehouse(ctx context.Context, req *model.CreateWarehouseRequest) (*model.Warehouse, error) {
	wh, err := s.warehouseRepo.Create(ctx, &model.Warehouse{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		CurrentStock: 0,
	})
	if err != nil {
		logger.Error("[CreateWarehouse] create failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.recordActivity(ctx, constant.ActivityWarehouseAdded, fmt.Sprintf("%s in %s", wh.Name, wh.Location))

	return wh, nil
}

func (s *warehouseAppImpl) UpdateWarehouse(ctx context.Context, id string, req *model.UpdateWarehouseRequest) (*model.Warehouse, error) {
	wh, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateWarehouse] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Shrinking below what is already stored would break the stock invariant.
	if req.Capacity < wh.CurrentStock {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	wh.Name = req.Name
	wh.Location = req.Location
	wh.Capacity = req.Capacity

	if err := s.warehouseRepo.Update(ctx, wh); err != nil {
		logger.Error("[UpdateWarehouse] update failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.recordActivity(ctx, constant.ActivityWarehouseUpdated, fmt.Sprintf("%s details modified", wh.Name))

	return wh, nil
}

func (s *warehouseAppImpl) DeleteWarehouse(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteWarehouse] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	wh, err := s.warehouseRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteWarehouse] get failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	count, err := s.inventoryRepo.CountByWarehouseTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteWarehouse] count items failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return errors.SetCustomError(constant.ErrWarehouseNotEmpty)
	}

	if err := s.warehouseRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteWarehouse] delete failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteWarehouse] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.recordActivity(ctx, constant.ActivityWarehouseDeleted, fmt.Sprintf("%s removed", wh.Name))

	return nil
}

// recordActivity appends to the activity log. Failures are logged and
// swallowed, the log is a non-critical side effect.
func (s *warehouseAppImpl) recordActivity(ctx context.Context, action constant.ActivityAction, details string) {
	_, err := s.activityRepo.Create(ctx, &model.Activity{
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Error("[recordActivity] create failed", zap.String("action", string(action)), zap.String("error", err.Error()))
	}
}
