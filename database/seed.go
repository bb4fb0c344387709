package database

import (
	"log"

	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeedData loads the sample catalog and tables. Every row is guarded by
// FirstOrCreate so repeated startups never duplicate data.
func SeedData(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Appetizers", Description: "Start your meal with these delicious appetizers"},
		{Name: "Main Course", Description: "Our signature main dishes"},
		{Name: "Desserts", Description: "Sweet endings to your meal"},
		{Name: "Beverages", Description: "Refreshing drinks and beverages"},
	}

	for i := range categories {
		categories[i].Slug = slug.Make(categories[i].Name)
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	categoryId := func(name string) uint {
		var category model.Category
		db.Where("name = ?", name).First(&category)
		return category.ID
	}

	menuItems := []model.MenuItem{
		{Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken pieces and traditional spices", Price: 15.99, CategoryId: categoryId("Main Course"), IsAvailable: true},
		{Name: "Beef Karahi", Description: "Spicy beef curry cooked in traditional Pakistani style", Price: 18.99, CategoryId: categoryId("Main Course"), IsAvailable: true},
		{Name: "Chicken Tikka", Description: "Grilled chicken marinated in yogurt and spices", Price: 12.99, CategoryId: categoryId("Appetizers"), IsAvailable: true},
		{Name: "Samosas (4 pieces)", Description: "Crispy pastries filled with spiced potatoes and peas", Price: 6.99, CategoryId: categoryId("Appetizers"), IsAvailable: true},
		{Name: "Gulab Jamun", Description: "Sweet milk dumplings in sugar syrup", Price: 5.99, CategoryId: categoryId("Desserts"), IsAvailable: true},
		{Name: "Mango Lassi", Description: "Traditional yogurt drink with mango", Price: 4.99, CategoryId: categoryId("Beverages"), IsAvailable: true},
	}

	for i := range menuItems {
		if menuItems[i].CategoryId == 0 {
			continue
		}
		menuItems[i].Slug = slug.Make(menuItems[i].Name)
		if err := db.Where(model.MenuItem{Name: menuItems[i].Name}).FirstOrCreate(&menuItems[i]).Error; err != nil {
			log.Println("failed to seed menu item:", menuItems[i].Name, "error:", err)
		}
	}

	tables := []model.Table{
		{Number: 0, Capacity: 1}, // takeaway
		{Number: 1, Capacity: 4},
		{Number: 2, Capacity: 2},
		{Number: 3, Capacity: 6},
		{Number: 4, Capacity: 4},
		{Number: 5, Capacity: 8},
	}

	for i := range tables {
		// struct conditions drop zero values, which would swallow table 0
		if err := db.Where("number = ?", tables[i].Number).FirstOrCreate(&tables[i]).Error; err != nil {
			log.Println("failed to seed table:", tables[i].Number, "error:", err)
		}
	}

	log.Println("Sample data seeded")
}
