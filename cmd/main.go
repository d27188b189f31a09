package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	activityapp "github.com/muhammadheryan/warehouse-tracker/application/activity"
	dashboardapp "github.com/muhammadheryan/warehouse-tracker/application/dashboard"
	inventoryapp "github.com/muhammadheryan/warehouse-tracker/application/inventory"
	transferapp "github.com/muhammadheryan/warehouse-tracker/application/transfer"
	warehouseapp "github.com/muhammadheryan/warehouse-tracker/application/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/cmd/config"
	redisclient "github.com/muhammadheryan/warehouse-tracker/cmd/redis"
	_ "github.com/muhammadheryan/warehouse-tracker/docs"
	activityRepo "github.com/muhammadheryan/warehouse-tracker/repository/activity"
	inventoryRepo "github.com/muhammadheryan/warehouse-tracker/repository/inventory"
	redisRepo "github.com/muhammadheryan/warehouse-tracker/repository/redis"
	transferRepo "github.com/muhammadheryan/warehouse-tracker/repository/transfer"
	txRepo "github.com/muhammadheryan/warehouse-tracker/repository/tx"
	warehouseRepo "github.com/muhammadheryan/warehouse-tracker/repository/warehouse"
	"github.com/muhammadheryan/warehouse-tracker/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse-tracker/transport"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func runMigrations(cfg *config.Config) error {
	db, err := goose.OpenDBWithDriver("mysql", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return goose.Up(db, cfg.Database.MigrationsDir)
}

// @title WAREHOUSE TRACKER API
// @version 1.0
// @description Warehouse inventory tracker API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Apply schema migrations
	if err := runMigrations(cfg); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client, the dashboard cache degrades to no-op without it
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("err connect redis, cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	ActivityRepo := activityRepo.NewActivityRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Optional stock movement event publisher
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	WarehouseApp := warehouseapp.NewWarehouseApp(TxRepo, WarehouseRepo, InventoryRepo, ActivityRepo)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, WarehouseRepo, ActivityRepo)
	TransferApp := transferapp.NewTransferApp(TxRepo, TransferRepo, InventoryRepo, WarehouseRepo, ActivityRepo, publisher)
	ActivityApp := activityapp.NewActivityApp(ActivityRepo)
	DashboardApp := dashboardapp.NewDashboardApp(cfg, WarehouseRepo, InventoryRepo, RedisRepo)

	httpTransport := transport.NewTransport(WarehouseApp, InventoryApp, TransferApp, ActivityApp, DashboardApp, cfg.Server.StaticDir)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
