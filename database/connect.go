package database

import (
	"fmt"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Terminal orders keep their lines after the referenced menu item
		// is removed, so FK constraints stay application-level.
		DisableForeignKeyConstraintWhenMigrating: true,
	})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Category{},
		&model.MenuItem{},
		&model.Table{},
		&model.Order{},
		&model.OrderItem{},
	)
}
