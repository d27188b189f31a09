package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	activityapp "github.com/muhammadheryan/warehouse-tracker/application/activity"
	dashboardapp "github.com/muhammadheryan/warehouse-tracker/application/dashboard"
	inventoryapp "github.com/muhammadheryan/warehouse-tracker/application/inventory"
	transferapp "github.com/muhammadheryan/warehouse-tracker/application/transfer"
	warehouseapp "github.com/muhammadheryan/warehouse-tracker/application/warehouse"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	WarehouseApp warehouseapp.WarehouseApp
	InventoryApp inventoryapp.InventoryApp
	TransferApp  transferapp.TransferApp
	ActivityApp  activityapp.ActivityApp
	DashboardApp dashboardapp.DashboardApp
}

func NewTransport(WarehouseApp warehouseapp.WarehouseApp, InventoryApp inventoryapp.InventoryApp, TransferApp transferapp.TransferApp, ActivityApp activityapp.ActivityApp, DashboardApp dashboardapp.DashboardApp, staticDir string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		WarehouseApp: WarehouseApp,
		InventoryApp: InventoryApp,
		TransferApp:  TransferApp,
		ActivityApp:  ActivityApp,
		DashboardApp: DashboardApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	api.HandleFunc("/warehouses", rh.CreateWarehouse).Methods(http.MethodPost)
	api.HandleFunc("/warehouses/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	api.HandleFunc("/warehouses/{id}", rh.UpdateWarehouse).Methods(http.MethodPut)
	api.HandleFunc("/warehouses/{id}", rh.DeleteWarehouse).Methods(http.MethodDelete)

	api.HandleFunc("/inventory", rh.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/inventory", rh.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{id}", rh.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id}", rh.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id}", rh.DeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/transfers", rh.ListTransfers).Methods(http.MethodGet)
	api.HandleFunc("/transfers", rh.ExecuteTransfer).Methods(http.MethodPost)
	api.HandleFunc("/transfers/{id}", rh.GetTransfer).Methods(http.MethodGet)

	api.HandleFunc("/activity", rh.ListActivities).Methods(http.MethodGet)
	api.HandleFunc("/activity", rh.RecordActivity).Methods(http.MethodPost)
	api.HandleFunc("/activity/{id}", rh.GetActivity).Methods(http.MethodGet)

	api.HandleFunc("/dashboard", rh.GetDashboard).Methods(http.MethodGet)

	// Browser UI, index fallback for non-API paths
	if staticDir != "" {
		router.PathPrefix("/").Handler(spaHandler{staticDir: staticDir, indexFile: "index.html"})
	}

	// middleware
	router.Use(LoggingMiddleware())

	return router
}
