package dashboard

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/warehouse-tracker/cmd/config"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	inventoryrepo "github.com/muhammadheryan/warehouse-tracker/repository/inventory"
	redisrepo "github.com/muhammadheryan/warehouse-tracker/repository/redis"
	warehouserepo "github.com/muhammadheryan/warehouse-tracker/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"go.uber.org/zap"
)

type DashboardApp interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardAppImpl struct {
	config        *config.Config
	warehouseRepo warehouserepo.WarehouseRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.RedisRepository
}

func NewDashboardApp(config *config.Config, warehouseRepo warehouserepo.WarehouseRepository, inventoryRepo inventoryrepo.InventoryRepository, redisRepo redisrepo.RedisRepository) DashboardApp {
	return &dashboardAppImpl{
		config:        config,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
	}
}

func (s *dashboardAppImpl) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	// Serve from cache when fresh. A short TTL keeps the dashboard cheap
	// without invalidation hooks in every mutation path.
	if cached, err := s.redisRepo.Get(ctx, constant.DashboardCacheKey); err == nil && cached != "" {
		var stats model.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[GetStats] list warehouses failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalItems, err := s.inventoryRepo.TotalQuantity(ctx)
	if err != nil {
		logger.Error("[GetStats] total quantity failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stats := &model.DashboardStats{
		TotalWarehouses: int64(len(warehouses)),
		TotalItems:      totalItems,
		Alerts:          make([]model.CapacityAlert, 0),
	}

	var usageSum float64
	for _, wh := range warehouses {
		usage := float64(wh.CurrentStock) / float64(wh.Capacity) * 100
		usageSum += usage
		switch {
		case usage >= 90:
			stats.Alerts = append(stats.Alerts, model.CapacityAlert{
				Level:     "critical",
				Warehouse: wh.Name,
				UsagePct:  usage,
			})
		case usage >= 75:
			stats.Alerts = append(stats.Alerts, model.CapacityAlert{
				Level:     "warning",
				Warehouse: wh.Name,
				UsagePct:  usage,
			})
		}
	}
	if len(warehouses) > 0 {
		stats.AvgCapacityPct = usageSum / float64(len(warehouses))
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, constant.DashboardCacheKey, string(encoded), s.config.Cache.DashboardTTL); err != nil {
			logger.Warn("[GetStats] cache write failed", zap.String("error", err.Error()))
		}
	}

	return stats, nil
}
