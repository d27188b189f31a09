package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appdashboard "github.com/muhammadheryan/warehouse-tracker/application/dashboard"
	"github.com/muhammadheryan/warehouse-tracker/cmd/config"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	inventorymocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/inventory"
	redismocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/redis"
	warehousemocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/model"
	cerr "github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestDashboardApp_GetStats(t *testing.T) {
	type fields struct {
		config        *config.Config
		warehouseRepo *warehousemocks.WarehouseRepository
		inventoryRepo *inventorymocks.InventoryRepository
		redisRepo     *redismocks.RedisRepository
	}
	cfg := &config.Config{
		Cache: config.CacheConfig{DashboardTTL: 30 * time.Second},
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.DashboardStats
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cached stats served without touching the database",
			fields: fields{
				config:        cfg,
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, constant.DashboardCacheKey).
					Return(`{"totalWarehouses":2,"totalItems":700,"avgCapacityPct":62.5,"alerts":[]}`, nil).Once()
			},
			want: &model.DashboardStats{
				TotalWarehouses: 2,
				TotalItems:      700,
				AvgCapacityPct:  62.5,
			},
			wantErr: false,
		},
		{
			name: "success: cache miss computes stats and alerts",
			fields: fields{
				config:        cfg,
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, constant.DashboardCacheKey).Return("", nil).Once()

				f.warehouseRepo.On("List", mock.Anything).Return([]model.Warehouse{
					{ID: "wh-1", Name: "Main Warehouse", Capacity: 100, CurrentStock: 95},
					{ID: "wh-2", Name: "West Coast Hub", Capacity: 100, CurrentStock: 80},
					{ID: "wh-3", Name: "East Coast Depot", Capacity: 100, CurrentStock: 50},
				}, nil).Once()

				f.inventoryRepo.On("TotalQuantity", mock.Anything).Return(int64(225), nil).Once()

				f.redisRepo.On("SetWithTTL", mock.Anything, constant.DashboardCacheKey, mock.Anything, 30*time.Second).Return(nil).Once()
			},
			want: &model.DashboardStats{
				TotalWarehouses: 3,
				TotalItems:      225,
				AvgCapacityPct:  75,
				Alerts: []model.CapacityAlert{
					{Level: "critical", Warehouse: "Main Warehouse", UsagePct: 95},
					{Level: "warning", Warehouse: "West Coast Hub", UsagePct: 80},
				},
			},
			wantErr: false,
		},
		{
			name: "success: redis failure falls through to the database",
			fields: fields{
				config:        cfg,
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, constant.DashboardCacheKey).Return("", errors.New("redis down")).Once()

				f.warehouseRepo.On("List", mock.Anything).Return([]model.Warehouse{}, nil).Once()
				f.inventoryRepo.On("TotalQuantity", mock.Anything).Return(int64(0), nil).Once()

				f.redisRepo.On("SetWithTTL", mock.Anything, constant.DashboardCacheKey, mock.Anything, 30*time.Second).Return(errors.New("redis down")).Once()
			},
			want: &model.DashboardStats{
				TotalWarehouses: 0,
				TotalItems:      0,
				AvgCapacityPct:  0,
			},
			wantErr: false,
		},
		{
			name: "error: warehouse list fails",
			fields: fields{
				config:        cfg,
				warehouseRepo: warehousemocks.NewWarehouseRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				redisRepo:     redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, constant.DashboardCacheKey).Return("", nil).Once()
				f.warehouseRepo.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdashboard.NewDashboardApp(tt.fields.config, tt.fields.warehouseRepo, tt.fields.inventoryRepo, tt.fields.redisRepo)

			got, err := app.GetStats(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStats() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TotalWarehouses != tt.want.TotalWarehouses {
				t.Fatalf("GetStats() TotalWarehouses = %v, want %v", got.TotalWarehouses, tt.want.TotalWarehouses)
			}
			if got.TotalItems != tt.want.TotalItems {
				t.Fatalf("GetStats() TotalItems = %v, want %v", got.TotalItems, tt.want.TotalItems)
			}
			if got.AvgCapacityPct != tt.want.AvgCapacityPct {
				t.Fatalf("GetStats() AvgCapacityPct = %v, want %v", got.AvgCapacityPct, tt.want.AvgCapacityPct)
			}
			if len(got.Alerts) != len(tt.want.Alerts) {
				t.Fatalf("GetStats() alerts = %d, want %d", len(got.Alerts), len(tt.want.Alerts))
			}
			for i, alert := range tt.want.Alerts {
				if got.Alerts[i].Level != alert.Level || got.Alerts[i].Warehouse != alert.Warehouse {
					t.Fatalf("GetStats() alert[%d] = %+v, want %+v", i, got.Alerts[i], alert)
				}
			}
		})
	}
}
