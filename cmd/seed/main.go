// Seed command, loads the sample data set used for demos and manual testing.
package main

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse-tracker/cmd/config"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"go.uber.org/zap"
)

type seedWarehouse struct {
	id           string
	name         string
	location     string
	capacity     int64
	currentStock int64
}

type seedItem struct {
	sku         string
	name        string
	warehouse   int
	location    string
	quantity    int64
	description string
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	warehouses := []seedWarehouse{
		{name: "Main Warehouse", location: "New York, NY", capacity: 10000, currentStock: 7500},
		{name: "West Coast Hub", location: "Los Angeles, CA", capacity: 8000, currentStock: 5200},
		{name: "Distribution Center", location: "Chicago, IL", capacity: 12000, currentStock: 9800},
		{name: "East Coast Depot", location: "Boston, MA", capacity: 6000, currentStock: 3200},
	}

	items := []seedItem{
		{sku: "PROD-001", name: "Office Chair", warehouse: 0, location: "A-12", quantity: 150, description: "Ergonomic office chair with lumbar support"},
		{sku: "PROD-002", name: "Standing Desk", warehouse: 0, location: "B-05", quantity: 85, description: "Adjustable height standing desk"},
		{sku: "PROD-003", name: "Monitor Stand", warehouse: 1, location: "C-08", quantity: 200, description: "Dual monitor stand with cable management"},
		{sku: "PROD-004", name: "Keyboard", warehouse: 1, location: "D-03", quantity: 300, description: "Wireless mechanical keyboard"},
		{sku: "PROD-005", name: "Mouse", warehouse: 2, location: "E-15", quantity: 500, description: "Wireless optical mouse"},
		{sku: "PROD-006", name: "Laptop Stand", warehouse: 2, location: "F-22", quantity: 120, description: "Adjustable laptop stand"},
		{sku: "PROD-007", name: "USB-C Hub", warehouse: 3, location: "G-10", quantity: 250, description: "7-in-1 USB-C hub with HDMI"},
		{sku: "PROD-008", name: "Webcam", warehouse: 3, location: "H-18", quantity: 180, description: "1080p HD webcam with microphone"},
	}

	logger.Info("clearing existing data")
	for _, table := range []string{"activity", "transfer", "inventory", "warehouse"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			logger.Fatal("err clear table", zap.String("table", table), zap.Error(err))
		}
	}

	now := time.Now()

	for i := range warehouses {
		warehouses[i].id = uuid.NewString()
		if _, err := db.Exec(
			"INSERT INTO warehouse (id, name, location, capacity, current_stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			warehouses[i].id, warehouses[i].name, warehouses[i].location, warehouses[i].capacity, warehouses[i].currentStock, now, now,
		); err != nil {
			logger.Fatal("err insert warehouse", zap.Error(err))
		}
	}
	logger.Info("warehouses created", zap.Int("count", len(warehouses)))

	itemIDs := make([]string, len(items))
	for i, item := range items {
		itemIDs[i] = uuid.NewString()
		if _, err := db.Exec(
			"INSERT INTO inventory (id, sku, name, warehouse_id, location, quantity, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			itemIDs[i], item.sku, item.name, warehouses[item.warehouse].id, item.location, item.quantity, item.description, now, now,
		); err != nil {
			logger.Fatal("err insert item", zap.Error(err))
		}
	}
	logger.Info("inventory items created", zap.Int("count", len(items)))

	transfers := []struct {
		item     int
		from, to int
		quantity int64
		date     time.Time
	}{
		{item: 0, from: 0, to: 1, quantity: 25, date: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)},
		{item: 2, from: 1, to: 2, quantity: 50, date: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, t := range transfers {
		if _, err := db.Exec(
			"INSERT INTO transfer (id, item_id, item_name, from_warehouse_id, from_name, to_warehouse_id, to_name, quantity, transfer_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			uuid.NewString(), itemIDs[t.item], items[t.item].name,
			warehouses[t.from].id, warehouses[t.from].name,
			warehouses[t.to].id, warehouses[t.to].name,
			t.quantity, t.date, now,
		); err != nil {
			logger.Fatal("err insert transfer", zap.Error(err))
		}
	}
	logger.Info("transfers created", zap.Int("count", len(transfers)))

	activities := []struct {
		action    string
		details   string
		timestamp time.Time
	}{
		{action: "Warehouse Added", details: "Main Warehouse in New York, NY", timestamp: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
		{action: "Item Added", details: "Office Chair (PROD-001) added to inventory", timestamp: time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)},
		{action: "Transfer Completed", details: "25 units of Office Chair from Main Warehouse to West Coast Hub", timestamp: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)},
		{action: "Inventory Updated", details: "PROD-003 quantity increased by 50", timestamp: time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC)},
		{action: "Warehouse Updated", details: "Distribution Center details modified", timestamp: time.Date(2024, 11, 22, 0, 0, 0, 0, time.UTC)},
	}
	for _, a := range activities {
		if _, err := db.Exec(
			"INSERT INTO activity (id, action, details, timestamp) VALUES (?, ?, ?, ?)",
			uuid.NewString(), a.action, a.details, a.timestamp,
		); err != nil {
			logger.Fatal("err insert activity", zap.Error(err))
		}
	}
	logger.Info("activity entries created", zap.Int("count", len(activities)))

	logger.Info("database seeded successfully")
}
