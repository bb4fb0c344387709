package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/router"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	database.DB = db
	database.Migrate(db)

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

// seedCatalog creates Table #1 (capacity 4), category "Mains" and menu item
// "Soup" at 5.00.
func seedCatalog(t *testing.T) (model.Table, model.MenuItem) {
	t.Helper()

	table := model.Table{Number: 1, Capacity: 4}
	if err := database.DB.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	category := model.Category{Name: "Mains", Slug: "mains"}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	soup := model.MenuItem{
		Name:        "Soup",
		Slug:        "soup",
		Description: "Soup of the day",
		Price:       5.00,
		CategoryId:  category.ID,
		IsAvailable: true,
	}
	if err := database.DB.Create(&soup).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}

	return table, soup
}

func createOrder(t *testing.T, app *fiber.App, tableId uint, customer string, lines []model.OrderLineInput) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, "/api/v1/order/", model.CreateOrderInput{
		TableId:      tableId,
		CustomerName: customer,
		Items:        lines,
	})
}

func reloadTable(t *testing.T, id uint) model.Table {
	t.Helper()
	var table model.Table
	if err := database.DB.First(&table, id).Error; err != nil {
		t.Fatalf("reload table %d: %v", id, err)
	}
	return table
}

func reloadOrder(t *testing.T, id uint) model.Order {
	t.Helper()
	var order model.Order
	if err := database.DB.Preload("Items").First(&order, id).Error; err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return order
}

func countRows(t *testing.T, m any) int64 {
	t.Helper()
	var count int64
	if err := database.DB.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func firstOrder(t *testing.T) model.Order {
	t.Helper()
	var order model.Order
	if err := database.DB.Preload("Items").First(&order).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	return order
}
