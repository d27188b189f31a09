package constant

// ActivityAction values match the historical log entries, do not rename.
type ActivityAction string

const (
	ActivityWarehouseAdded    ActivityAction = "Warehouse Added"
	ActivityWarehouseUpdated  ActivityAction = "Warehouse Updated"
	ActivityWarehouseDeleted  ActivityAction = "Warehouse Deleted"
	ActivityItemAdded         ActivityAction = "Item Added"
	ActivityItemUpdated       ActivityAction = "Item Updated"
	ActivityItemDeleted       ActivityAction = "Item Deleted"
	ActivityInventoryUpdated  ActivityAction = "Inventory Updated"
	ActivityTransferCompleted ActivityAction = "Transfer Completed"
)

var ValidActivityActions = map[ActivityAction]struct{}{
	ActivityWarehouseAdded:    {},
	ActivityWarehouseUpdated:  {},
	ActivityWarehouseDeleted:  {},
	ActivityItemAdded:         {},
	ActivityItemUpdated:       {},
	ActivityItemDeleted:       {},
	ActivityInventoryUpdated:  {},
	ActivityTransferCompleted: {},
}
