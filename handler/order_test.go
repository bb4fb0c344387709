package handler_test

import (
	"fmt"
	"math"
	"net/http"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreateOrder(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)

	resp := createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{
		{MenuItemId: soup.ID, Quantity: 2},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	order := firstOrder(t)
	if order.Status != constants.ORDER_PENDING {
		t.Errorf("status = %q, want %q", order.Status, constants.ORDER_PENDING)
	}
	if !almostEqual(order.TotalAmount, 10.00) {
		t.Errorf("total = %.2f, want 10.00", order.TotalAmount)
	}
	if len(order.Items) != 1 {
		t.Fatalf("lines = %d, want 1", len(order.Items))
	}
	if order.Items[0].Quantity != 2 || !almostEqual(order.Items[0].Price, 5.00) {
		t.Errorf("line = %dx%.2f, want 2x5.00", order.Items[0].Quantity, order.Items[0].Price)
	}
	if !reloadTable(t, table.ID).IsOccupied {
		t.Error("table not marked occupied after order creation")
	}
}

func TestCreateOrderTotalMatchesLines(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)

	tea := model.MenuItem{Name: "Tea", Slug: "tea", Description: "Pot of tea", Price: 2.50, CategoryId: soup.CategoryId, IsAvailable: true}
	if err := database.DB.Create(&tea).Error; err != nil {
		t.Fatalf("seed tea: %v", err)
	}

	resp := createOrder(t, app, table.ID, "Bob", []model.OrderLineInput{
		{MenuItemId: soup.ID, Quantity: 3},
		{MenuItemId: tea.ID, Quantity: 2},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	order := firstOrder(t)
	var sum float64
	for _, line := range order.Items {
		sum += float64(line.Quantity) * line.Price
	}
	if !almostEqual(order.TotalAmount, sum) {
		t.Errorf("total = %.2f, lines sum to %.2f", order.TotalAmount, sum)
	}
	if !almostEqual(order.TotalAmount, 20.00) {
		t.Errorf("total = %.2f, want 20.00", order.TotalAmount)
	}
}

func TestCreateOrderRejections(t *testing.T) {
	tests := []struct {
		name       string
		customer   string
		tableId    uint
		lines      []model.OrderLineInput
		wantStatus int
	}{
		{
			name:       "missing customer name",
			customer:   "",
			lines:      []model.OrderLineInput{{MenuItemId: 1, Quantity: 1}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty item list",
			customer:   "Ann",
			lines:      []model.OrderLineInput{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown table",
			customer:   "Ann",
			tableId:    999,
			lines:      []model.OrderLineInput{{MenuItemId: 1, Quantity: 1}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown menu item",
			customer:   "Ann",
			lines:      []model.OrderLineInput{{MenuItemId: 999, Quantity: 1}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "zero quantity",
			customer:   "Ann",
			lines:      []model.OrderLineInput{{MenuItemId: 1, Quantity: 0}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t)
			table, soup := seedCatalog(t)

			tableId := tt.tableId
			if tableId == 0 {
				tableId = table.ID
			}
			lines := tt.lines
			for i := range lines {
				if lines[i].MenuItemId == 1 {
					lines[i].MenuItemId = soup.ID
				}
			}

			resp := createOrder(t, app, tableId, tt.customer, lines)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if n := countRows(t, &model.Order{}); n != 0 {
				t.Errorf("order rows = %d, want 0", n)
			}
			if n := countRows(t, &model.OrderItem{}); n != 0 {
				t.Errorf("order item rows = %d, want 0", n)
			}
			if reloadTable(t, table.ID).IsOccupied {
				t.Error("table flagged occupied after failed creation")
			}
		})
	}
}

func TestCreateOrderOccupiedTable(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)

	resp := createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first order status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	resp = createOrder(t, app, table.ID, "Ben", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 1}})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second order status = %d, want %d", resp.StatusCode, http.StatusConflict)
	}
	if n := countRows(t, &model.Order{}); n != 1 {
		t.Errorf("order rows = %d, want 1", n)
	}
	if !reloadTable(t, table.ID).IsOccupied {
		t.Error("table should stay occupied")
	}
}

func TestUpdateOrderStatusOccupancy(t *testing.T) {
	tests := []struct {
		status       string
		wantOccupied bool
	}{
		{constants.ORDER_PREPARING, true},
		{constants.ORDER_READY, true},
		{constants.ORDER_PENDING, true},
		{constants.ORDER_DELIVERED, false},
		{constants.ORDER_CANCELLED, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			app := setupApp(t)
			table, soup := seedCatalog(t)
			createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 1}})
			order := firstOrder(t)

			resp := doJSON(t, app, http.MethodPatch,
				fmt.Sprintf("/api/v1/order/%d/status", order.ID),
				model.UpdateOrderStatusInput{Status: tt.status})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}

			if got := reloadOrder(t, order.ID).Status; got != tt.status {
				t.Errorf("order status = %q, want %q", got, tt.status)
			}
			if got := reloadTable(t, table.ID).IsOccupied; got != tt.wantOccupied {
				t.Errorf("occupied = %v, want %v", got, tt.wantOccupied)
			}
		})
	}
}

func TestUpdateOrderStatusUnrecognized(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 1}})
	order := firstOrder(t)

	resp := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/order/%d/status", order.ID),
		map[string]string{"status": "burnt"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if got := reloadOrder(t, order.ID).Status; got != constants.ORDER_PENDING {
		t.Errorf("order status = %q, want unchanged %q", got, constants.ORDER_PENDING)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/order/999/status",
		model.UpdateOrderStatusInput{Status: constants.ORDER_READY})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestAddOrderItemKeepsCapturedPrice(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	order := firstOrder(t)

	// the price change must not leak into the existing line
	if err := database.DB.Model(&model.MenuItem{}).Where("id = ?", soup.ID).Update("price", 6.00).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/order/%d/items", order.ID),
		model.AddOrderItemInput{MenuItemId: soup.ID, Quantity: 1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	order = reloadOrder(t, order.ID)
	if len(order.Items) != 1 {
		t.Fatalf("lines = %d, want 1 (quantity bump, not a new line)", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", order.Items[0].Quantity)
	}
	if !almostEqual(order.Items[0].Price, 5.00) {
		t.Errorf("line price = %.2f, want captured 5.00", order.Items[0].Price)
	}
	if !almostEqual(order.TotalAmount, 15.00) {
		t.Errorf("total = %.2f, want 15.00", order.TotalAmount)
	}
}

func TestAddOrderItemNewLineUsesCurrentPrice(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	order := firstOrder(t)

	tea := model.MenuItem{Name: "Tea", Slug: "tea", Description: "Pot of tea", Price: 2.50, CategoryId: soup.CategoryId, IsAvailable: true}
	if err := database.DB.Create(&tea).Error; err != nil {
		t.Fatalf("seed tea: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/order/%d/items", order.ID),
		model.AddOrderItemInput{MenuItemId: tea.ID, Quantity: 2})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	order = reloadOrder(t, order.ID)
	if len(order.Items) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Items))
	}
	if !almostEqual(order.TotalAmount, 15.00) {
		t.Errorf("total = %.2f, want 15.00", order.TotalAmount)
	}
}

func TestAddOrderItemRejections(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	order := firstOrder(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/order/999/items",
		model.AddOrderItemInput{MenuItemId: soup.ID, Quantity: 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown order: status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	resp = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/order/%d/items", order.ID),
		model.AddOrderItemInput{MenuItemId: 999, Quantity: 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown menu item: status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	if got := reloadOrder(t, order.ID).TotalAmount; !almostEqual(got, 10.00) {
		t.Errorf("total = %.2f, want unchanged 10.00", got)
	}
}

func TestAddOrderItemLookupFailure(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	order := firstOrder(t)

	// break the line lookup outright; the handler must report a storage
	// failure instead of treating it as "no line yet"
	if err := database.DB.Migrator().DropTable(&model.OrderItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/order/%d/items", order.ID),
		model.AddOrderItemInput{MenuItemId: soup.ID, Quantity: 1})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var reloaded model.Order
	if err := database.DB.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if !almostEqual(reloaded.TotalAmount, 10.00) {
		t.Errorf("total = %.2f, want unchanged 10.00", reloaded.TotalAmount)
	}
}

func TestDeleteOrderCascadesAndFreesTable(t *testing.T) {
	app := setupApp(t)
	table, soup := seedCatalog(t)
	createOrder(t, app, table.ID, "Ann", []model.OrderLineInput{{MenuItemId: soup.ID, Quantity: 2}})
	order := firstOrder(t)

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/order/%d", order.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if n := countRows(t, &model.Order{}); n != 0 {
		t.Errorf("order rows = %d, want 0", n)
	}
	if n := countRows(t, &model.OrderItem{}); n != 0 {
		t.Errorf("order item rows = %d, want 0", n)
	}
	if reloadTable(t, table.ID).IsOccupied {
		t.Error("table still occupied after deleting its active order")
	}
}
