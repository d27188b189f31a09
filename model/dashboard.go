package model

type CapacityAlert struct {
	Level     string  `json:"level"` // "warning" or "critical"
	Warehouse string  `json:"warehouse"`
	UsagePct  float64 `json:"usagePct"`
}

type DashboardStats struct {
	TotalWarehouses int64           `json:"totalWarehouses"`
	TotalItems      int64           `json:"totalItems"`
	AvgCapacityPct  float64         `json:"avgCapacityPct"`
	Alerts          []CapacityAlert `json:"alerts"`
}
