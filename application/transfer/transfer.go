package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	activityrepo "github.com/muhammadheryan/warehouse-tracker/repository/activity"
	inventoryrepo "github.com/muhammadheryan/warehouse-tracker/repository/inventory"
	transferrepo "github.com/muhammadheryan/warehouse-tracker/repository/transfer"
	txrepo "github.com/muhammadheryan/warehouse-tracker/repository/tx"
	warehouserepo "github.com/muhammadheryan/warehouse-tracker/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"go.uber.org/zap"
)

type TransferApp interface {
	ListTransfers(ctx context.Context) ([]model.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*model.Transfer, error)
	ExecuteTransfer(ctx context.Context, req *model.TransferRequest) (*model.Transfer, error)
}

type transferAppImpl struct {
	txRepo        txrepo.TxRepository
	transferRepo  transferrepo.TransferRepository
	inventoryRepo inventoryrepo.InventoryRepository
	warehouseRepo warehouserepo.WarehouseRepository
	activityRepo  activityrepo.ActivityRepository
	publisher     *rabbitmq.Publisher
}

func NewTransferApp(txRepo txrepo.TxRepository, transferRepo transferrepo.TransferRepository, inventoryRepo inventoryrepo.InventoryRepository, warehouseRepo warehouserepo.WarehouseRepository, activityRepo activityrepo.ActivityRepository, publisher *rabbitmq.Publisher) TransferApp {
	return &transferAppImpl{
		txRepo:        txRepo,
		transferRepo:  transferRepo,
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
		activityRepo:  activityRepo,
		publisher:     publisher,
	}
}

func (s *transferAppImpl) ListTransfers(ctx context.Context) ([]model.Transfer, error) {
	transfers, err := s.transferRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTransfers] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfers, nil
}

func (s *transferAppImpl) GetTransfer(ctx context.Context, id string) (*model.Transfer, error) {
	t, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTransfer] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return t, nil
}

// ExecuteTransfer moves quantity units of the source item into the
// destination warehouse. Every read takes a row lock and every write happens
// in one transaction, so concurrent transfers against the same item or
// warehouse pair serialize on the locks instead of double-committing past the
// capacity check. Warehouse rows are locked in id order to rule out deadlock
// between opposing transfers.
func (s *transferAppImpl) ExecuteTransfer(ctx context.Context, req *model.TransferRequest) (*model.Transfer, error) {
	if req.Quantity < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExecuteTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	item, err := s.inventoryRepo.GetByIDForUpdateTx(ctx, tx, req.ItemID)
	if err != nil {
		logger.Error("[ExecuteTransfer] get item failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Quantity > item.Quantity {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	if req.ToWarehouseID == item.WarehouseID {
		return nil, errors.SetCustomError(constant.ErrSameWarehouse)
	}

	src, dst, err := s.lockWarehousePair(ctx, tx, item.WarehouseID, req.ToWarehouseID)
	if err != nil {
		return nil, err
	}

	if dst.CurrentStock+req.Quantity > dst.Capacity {
		return nil, errors.SetCustomError(constant.ErrCapacityExceeded)
	}

	// Merge into an existing row for the same SKU, transfers never create
	// duplicate SKU rows in one warehouse.
	dstItem, err := s.inventoryRepo.GetBySKUWarehouseForUpdateTx(ctx, tx, item.SKU, dst.ID)
	if err != nil {
		logger.Error("[ExecuteTransfer] get destination item failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if dstItem != nil {
		if err := s.inventoryRepo.UpdateQuantityTx(ctx, tx, dstItem.ID, dstItem.Quantity+req.Quantity); err != nil {
			logger.Error("[ExecuteTransfer] merge destination item failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if _, err := s.inventoryRepo.CreateTx(ctx, tx, &model.InventoryItem{
			SKU:         item.SKU,
			Name:        item.Name,
			WarehouseID: dst.ID,
			Location:    item.Location,
			Quantity:    req.Quantity,
			Description: item.Description,
		}); err != nil {
			logger.Error("[ExecuteTransfer] create destination item failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	remaining := item.Quantity - req.Quantity
	if remaining == 0 {
		// A zero-quantity row is not a valid state.
		if err := s.inventoryRepo.DeleteTx(ctx, tx, item.ID); err != nil {
			logger.Error("[ExecuteTransfer] delete source item failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.inventoryRepo.UpdateQuantityTx(ctx, tx, item.ID, remaining); err != nil {
			logger.Error("[ExecuteTransfer] update source item failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.warehouseRepo.AdjustStockTx(ctx, tx, src.ID, -req.Quantity); err != nil {
		logger.Error("[ExecuteTransfer] adjust source stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.warehouseRepo.AdjustStockTx(ctx, tx, dst.ID, req.Quantity); err != nil {
		logger.Error("[ExecuteTransfer] adjust destination stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Names are snapshotted on purpose, the history keeps what things were
	// called at transfer time.
	transferFact, err := s.transferRepo.CreateTx(ctx, tx, &model.Transfer{
		ItemID:          item.ID,
		ItemName:        item.Name,
		FromWarehouseID: src.ID,
		From:            src.Name,
		ToWarehouseID:   dst.ID,
		To:              dst.Name,
		Quantity:        req.Quantity,
		Date:            time.Now(),
	})
	if err != nil {
		logger.Error("[ExecuteTransfer] create transfer failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExecuteTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.recordActivity(ctx, fmt.Sprintf("%d units of %s from %s to %s", req.Quantity, item.Name, src.Name, dst.Name))

	if s.publisher != nil {
		msg := rabbitmq.StockMovementMessage{
			TransferID:      transferFact.ID,
			ItemID:          item.ID,
			SKU:             item.SKU,
			FromWarehouseID: src.ID,
			ToWarehouseID:   dst.ID,
			Quantity:        req.Quantity,
			TransferredAt:   transferFact.Date,
		}
		if err := s.publisher.PublishStockMovement(msg); err != nil {
			logger.Error("[ExecuteTransfer] publish stock movement", zap.String("error", err.Error()))
		}
	}

	return transferFact, nil
}

// lockWarehousePair locks both warehouse rows in deterministic id order and
// returns them in argument order.
func (s *transferAppImpl) lockWarehousePair(ctx context.Context, tx *sqlx.Tx, srcID, dstID string) (*model.Warehouse, *model.Warehouse, error) {
	first, second := srcID, dstID
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

	return locked[srcID], locked[dstID], nil
}

func (s *transferAppImpl) recordActivity(ctx context.Context, details string) {
	_, err := s.activityRepo.Create(ctx, &model.Activity{
		Action:    constant.ActivityTransferCompleted,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Error("[recordActivity] create failed", zap.String("error", err.Error()))
	}
}
