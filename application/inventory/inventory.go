package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
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

type InventoryApp interface {
	ListItems(ctx context.Context, warehouseID string) ([]model.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*model.InventoryItem, error)
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, req *model.UpdateItemRequest) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	warehouseRepo warehouserepo.WarehouseRepository
	activityRepo  activityrepo.ActivityRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, warehouseRepo warehouserepo.WarehouseRepository, activityRepo activityrepo.ActivityRepository) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
		activityRepo:  activityRepo,
	}
}

func (s *inventoryAppImpl) ListItems(ctx context.Context, warehouseID string) ([]model.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, warehouseID)
	if err != nil {
		logger.Error("[ListItems] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *inventoryAppImpl) GetItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetItem] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}

func (s *inventoryAppImpl) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.InventoryItem, error) {
	sku := normalizeSKU(req.SKU)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateItem] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	wh, err := s.warehouseRepo.GetByIDForUpdateTx(ctx, tx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateItem] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.inventoryRepo.GetBySKUWarehouseForUpdateTx(ctx, tx, sku, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateItem] get by sku failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		// Caller must increase quantity on the existing row instead.
		return nil, errors.SetCustomError(constant.ErrDuplicateSKU)
	}

	if wh.CurrentStock+req.Quantity > wh.Capacity {
		return nil, errors.SetCustomError(constant.ErrCapacityExceeded)
	}

	item, err := s.inventoryRepo.CreateTx(ctx, tx, &model.InventoryItem{
		SKU:         sku,
		Name:        req.Name,
		WarehouseID: req.WarehouseID,
		Location:    req.Location,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		logger.Error("[CreateItem] create failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.warehouseRepo.AdjustStockTx(ctx, tx, wh.ID, req.Quantity); err != nil {
		logger.Error("[CreateItem] adjust stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateItem] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.recordActivity(ctx, constant.ActivityItemAdded, fmt.Sprintf("%s (%s) added to inventory", item.Name, item.SKU))

	return item, nil
}

func (s *inventoryAppImpl) UpdateItem(ctx context.Context, id string, req *model.UpdateItemRequest) (*model.InventoryItem, error) {
	sku := normalizeSKU(req.SKU)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateItem] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cur, err := s.inventoryRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[UpdateItem] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cur == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if sku != cur.SKU || req.WarehouseID != cur.WarehouseID {
		dup, err := s.inventoryRepo.GetBySKUWarehouseForUpdateTx(ctx, tx, sku, req.WarehouseID)
		if err != nil {
			logger.Error("[UpdateItem] get by sku failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if dup != nil && dup.ID != cur.ID {
			return nil, errors.SetCustomError(constant.ErrDuplicateSKU)
		}
	}

	// Keep warehouse stock counters in step with the item move/resize as a
	// single logical unit.
	if req.WarehouseID != cur.WarehouseID {
		src, dst, err := s.lockWarehousePair(ctx, tx, cur.WarehouseID, req.WarehouseID)
		if err != nil {
			return nil, err
		}
		if dst.CurrentStock+req.Quantity > dst.Capacity {
			return nil, errors.SetCustomError(constant.ErrCapacityExceeded)
		}
		if err := s.warehouseRepo.AdjustStockTx(ctx, tx, src.ID, -cur.Quantity); err != nil {
			logger.Error("[UpdateItem] adjust source stock failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.warehouseRepo.AdjustStockTx(ctx, tx, dst.ID, req.Quantity); err != nil {
			logger.Error("[UpdateItem] adjust destination stock failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else if delta := req.Quantity - cur.Quantity; delta != 0 {
		wh, err := s.warehouseRepo.GetByIDForUpdateTx(ctx, tx, cur.WarehouseID)
		if err != nil {
			logger.Error("[UpdateItem] get warehouse failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if wh == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if delta > 0 && wh.CurrentStock+delta > wh.Capacity {
			return nil, errors.SetCustomError(constant.ErrCapacityExceeded)
		}
		if err := s.warehouseRepo.AdjustStockTx(ctx, tx, wh.ID, delta); err != nil {
			logger.Error("[UpdateItem] adjust stock failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	quantityOnly := sku == cur.SKU && req.Name == cur.Name && req.WarehouseID == cur.WarehouseID &&
		req.Location == cur.Location && req.Description == cur.Description
	delta := req.Quantity - cur.Quantity

	updated := *cur
	updated.SKU = sku
	updated.Name = req.Name
	updated.WarehouseID = req.WarehouseID
	updated.Location = req.Location
	updated.Quantity = req.Quantity
	updated.Description = req.Description

	if req.Quantity == 0 {
		// A zero-quantity row is not a valid state.
		if err := s.inventoryRepo.DeleteTx(ctx, tx, cur.ID); err != nil {
			logger.Error("[UpdateItem] delete at zero failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.inventoryRepo.UpdateTx(ctx, tx, &updated); err != nil {
			logger.Error("[UpdateItem] update failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateItem] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if quantityOnly && delta > 0 {
		s.recordActivity(ctx, constant.ActivityInventoryUpdated, fmt.Sprintf("%s quantity increased by %d", updated.SKU, delta))
	} else {
		s.recordActivity(ctx, constant.ActivityItemUpdated, fmt.Sprintf("%s (%s) modified", updated.Name, updated.SKU))
	}

	return &updated, nil
}

func (s *inventoryAppImpl) DeleteItem(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteItem] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cur, err := s.inventoryRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteItem] get failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if cur == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.warehouseRepo.AdjustStockTx(ctx, tx, cur.WarehouseID, -cur.Quantity); err != nil {
		logger.Error("[DeleteItem] adjust stock failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.DeleteTx(ctx, tx, cur.ID); err != nil {
		logger.Error("[DeleteItem] delete failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteItem] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.recordActivity(ctx, constant.ActivityItemDeleted, fmt.Sprintf("%s (%s) removed", cur.Name, cur.SKU))

	return nil
}

// lockWarehousePair locks both warehouse rows in id order so that two
// mutations touching the same pair cannot deadlock, then returns them in
// argument order.
func (s *inventoryAppImpl) lockWarehousePair(ctx context.Context, tx *sqlx.Tx, aID, bID string) (*model.Warehouse, *model.Warehouse, error) {
	first, second := aID, bID
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*model.Warehouse, 2)
	for _, id := range []string{first, second} {
		wh, err := s.warehouseRepo.GetByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			logger.Error("[lockWarehousePair] get warehouse failed", zap.String("error", err.Error()))
			return nil, nil, errors.SetCustomError(constant.ErrInternal)
		}
		if wh == nil {
			return nil, nil, errors.SetCustomError(constant.ErrNotFound)
		}
		locked[id] = wh
	}

	return locked[aID], locked[bID], nil
}

func (s *inventoryAppImpl) recordActivity(ctx context.Context, action constant.ActivityAction, details string) {
	_, err := s.activityRepo.Create(ctx, &model.Activity{
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Error("[recordActivity] create failed", zap.String("action", string(action)), zap.String("error", err.Error()))
	}
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
