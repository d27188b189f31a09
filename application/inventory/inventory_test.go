package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/muhammadheryan/warehouse-tracker/application/inventory"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	activitymocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/activity"
	inventorymocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/inventory"
	txmocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/tx"
	warehousemocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/model"
	cerr "github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo        *txmocks.TxRepository
	inventoryRepo *inventorymocks.InventoryRepository
	warehouseRepo *warehousemocks.WarehouseRepository
	activityRepo  *activitymocks.ActivityRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		warehouseRepo: warehousemocks.NewWarehouseRepository(t),
		activityRepo:  activitymocks.NewActivityRepository(t),
	}
}

func newApp(f fields) appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.txRepo, f.inventoryRepo, f.warehouseRepo, f.activityRepo)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func currentItem() *model.InventoryItem {
	return &model.InventoryItem{
		ID:          "item-1",
		SKU:         "PROD-001",
		Name:        "Office Chair",
		WarehouseID: "wh-1",
		Location:    "A-12",
		Quantity:    10,
		Description: "Ergonomic office chair",
	}
}

func TestInventoryApp_CreateItem(t *testing.T) {
	type args struct {
		req *model.CreateItemRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantSKU  string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: create item normalizes sku to upper case",
			fields: newFields(t),
			args: args{
				req: &model.CreateItemRequest{
					SKU:         " prod-009 ",
					Name:        "Webcam",
					WarehouseID: "wh-1",
					Location:    "H-18",
					Quantity:    20,
					Description: "1080p HD webcam",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     1000,
					CurrentStock: 100,
				}, nil).Once()

				f.inventoryRepo.On("GetBySKUWarehouseForUpdateTx", mock.Anything, tx, "PROD-009", "wh-1").Return(nil, nil).Once()

				f.inventoryRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(it *model.InventoryItem) bool {
					return it.SKU == "PROD-009" && it.WarehouseID == "wh-1" && it.Quantity == 20
				})).Return(&model.InventoryItem{ID: "item-9", SKU: "PROD-009", Name: "Webcam"}, nil).Once()

				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-1", int64(20)).Return(nil).Once()

				f.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityItemAdded && a.Details == "Webcam (PROD-009) added to inventory"
				})).Return(&model.Activity{}, nil).Once()
			},
			wantSKU: "PROD-009",
			wantErr: false,
		},
		{
			name:   "error: duplicate sku in warehouse",
			fields: newFields(t),
			args: args{
				req: &model.CreateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-1",
					Location:    "A-12",
					Quantity:    5,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:       "wh-1",
					Capacity: 1000,
				}, nil).Once()

				f.inventoryRepo.On("GetBySKUWarehouseForUpdateTx", mock.Anything, tx, "PROD-001", "wh-1").Return(currentItem(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateSKU,
		},
		{
			name:   "error: warehouse capacity exceeded",
			fields: newFields(t),
			args: args{
				req: &model.CreateItemRequest{
					SKU:         "PROD-010",
					Name:        "Mouse",
					WarehouseID: "wh-1",
					Location:    "E-15",
					Quantity:    50,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     100,
					CurrentStock: 80,
				}, nil).Once()

				f.inventoryRepo.On("GetBySKUWarehouseForUpdateTx", mock.Anything, tx, "PROD-010", "wh-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCapacityExceeded,
		},
		{
			name:   "error: warehouse not found",
			fields: newFields(t),
			args: args{
				req: &model.CreateItemRequest{
					SKU:         "PROD-010",
					Name:        "Mouse",
					WarehouseID: "missing",
					Location:    "E-15",
					Quantity:    5,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := newApp(tt.fields)

			got, err := app.CreateItem(context.Background(), tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateItem() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.SKU != tt.wantSKU {
				t.Fatalf("CreateItem() SKU = %v, want %v", got.SKU, tt.wantSKU)
			}
		})
	}
}

func TestInventoryApp_UpdateItem(t *testing.T) {
	type args struct {
		id  string
		req *model.UpdateItemRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantQty  int64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: quantity increase adjusts warehouse stock",
			fields: newFields(t),
			args: args{
				id: "item-1",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-1",
					Location:    "A-12",
					Quantity:    15,
					Description: "Ergonomic office chair",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     100,
					CurrentStock: 50,
				}, nil).Once()
				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-1", int64(5)).Return(nil).Once()

				f.inventoryRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(it *model.InventoryItem) bool {
					return it.ID == "item-1" && it.Quantity == 15
				})).Return(nil).Once()

				f.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityInventoryUpdated && a.Details == "PROD-001 quantity increased by 5"
				})).Return(&model.Activity{}, nil).Once()
			},
			wantQty: 15,
			wantErr: false,
		},
		{
			name:   "success: update to zero quantity removes the row",
			fields: newFields(t),
			args: args{
				id: "item-1",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-1",
					Location:    "A-12",
					Quantity:    0,
					Description: "Ergonomic office chair",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     100,
					CurrentStock: 50,
				}, nil).Once()
				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-1", int64(-10)).Return(nil).Once()

				f.inventoryRepo.On("DeleteTx", mock.Anything, tx, "item-1").Return(nil).Once()

				f.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityItemUpdated
				})).Return(&model.Activity{}, nil).Once()
			},
			wantQty: 0,
			wantErr: false,
		},
		{
			name:   "success: move item to another warehouse adjusts both stock counters",
			fields: newFields(t),
			args: args{
				id: "item-1",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-2",
					Location:    "B-05",
					Quantity:    10,
					Description: "Ergonomic office chair",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				f.inventoryRepo.On("GetBySKUWarehouseForUpdateTx", mock.Anything, tx, "PROD-001", "wh-2").Return(nil, nil).Once()

				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     100,
					CurrentStock: 50,
				}, nil).Once()
				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-2").Return(&model.Warehouse{
					ID:           "wh-2",
					Capacity:     100,
					CurrentStock: 20,
				}, nil).Once()

				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-1", int64(-10)).Return(nil).Once()
				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-2", int64(10)).Return(nil).Once()

				f.inventoryRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(it *model.InventoryItem) bool {
					return it.ID == "item-1" && it.WarehouseID == "wh-2" && it.Quantity == 10
				})).Return(nil).Once()

				f.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityItemUpdated && a.Details == "Office Chair (PROD-001) modified"
				})).Return(&model.Activity{}, nil).Once()
			},
			wantQty: 10,
			wantErr: false,
		},
		{
			name:   "error: duplicate sku in destination warehouse",
			fields: newFields(t),
			args: args{
				id: "item-1",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-2",
					Location:    "B-05",
					Quantity:    10,
					Description: "Ergonomic office chair",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				f.inventoryRepo.On("GetBySKUWarehouseForUpdateTx", mock.Anything, tx, "PROD-001", "wh-2").Return(&model.InventoryItem{
					ID:          "item-2",
					SKU:         "PROD-001",
					WarehouseID: "wh-2",
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateSKU,
		},
		{
			name:   "error: quantity increase past warehouse capacity",
			fields: newFields(t),
			args: args{
				id: "item-1",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-1",
					Location:    "A-12",
					Quantity:    20,
					Description: "Ergonomic office chair",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				// 98 + 10 > 100
				f.warehouseRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "wh-1").Return(&model.Warehouse{
					ID:           "wh-1",
					Capacity:     100,
					CurrentStock: 98,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCapacityExceeded,
		},
		{
			name:   "error: item not found",
			fields: newFields(t),
			args: args{
				id: "missing",
				req: &model.UpdateItemRequest{
					SKU:         "PROD-001",
					Name:        "Office Chair",
					WarehouseID: "wh-1",
					Location:    "A-12",
					Quantity:    10,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := newApp(tt.fields)

			got, err := app.UpdateItem(context.Background(), tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateItem() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Quantity != tt.wantQty {
				t.Fatalf("UpdateItem() Quantity = %v, want %v", got.Quantity, tt.wantQty)
			}
		})
	}
}

func TestInventoryApp_DeleteItem(t *testing.T) {
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: delete item releases warehouse stock",
			fields: newFields(t),
			id:     "item-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "item-1").Return(currentItem(), nil).Once()

				f.warehouseRepo.On("AdjustStockTx", mock.Anything, tx, "wh-1", int64(-10)).Return(nil).Once()
				f.inventoryRepo.On("DeleteTx", mock.Anything, tx, "item-1").Return(nil).Once()

				f.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityItemDeleted && a.Details == "Office Chair (PROD-001) removed"
				})).Return(&model.Activity{}, nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "error: item not found",
			fields: newFields(t),
			id:     "missing",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetByIDForUpdateTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := newApp(tt.fields)

			err := app.DeleteItem(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteItem() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
