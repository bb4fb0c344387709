package constants

const (
	ORDER_PENDING   = "pending"
	ORDER_PREPARING = "preparing"
	ORDER_READY     = "ready"
	ORDER_DELIVERED = "delivered"
	ORDER_CANCELLED = "cancelled"
)

// Statuses that keep a table occupied.
var ORDER_ACTIVE_STATUSES = []string{ORDER_PENDING, ORDER_PREPARING, ORDER_READY}

const (
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Parameter is not a number"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_CREATE             = "Create failed"
	ERROR_UPDATE             = "Update failed"
	ERROR_DELETE             = "Delete failed"
)
