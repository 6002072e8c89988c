package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"resolution-desk.backend/internal/domain/entities"
	"resolution-desk.backend/internal/infrastructure/models"
)

// Migrate creates or updates every table owned by the store. When reset is
// set, existing tables are dropped first so each start begins from the seed.
func Migrate(db *gorm.DB, reset bool) error {
	all := models.All()
	if reset {
		if err := db.Migrator().DropTable(all...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed migrates the schema and inserts the reference customer, merchant and driver.
// Existing rows with the same ids are left untouched.
func Seed(ctx context.Context, db *gorm.DB, reset bool) error {
	if err := Migrate(db, reset); err != nil {
		return err
	}

	customer, err := NewCustomerRepository(db).toModel(SeedCustomer())
	if err != nil {
		return err
	}
	merchant, err := NewMerchantRepository(db).toModel(SeedMerchant())
	if err != nil {
		return err
	}
	driver, err := NewDriverRepository(db).toModel(SeedDriver())
	if err != nil {
		return err
	}

	return NewUnitOfWork(db).Do(ctx, func(ctx context.Context) error {
		tx := GetDB(ctx, db).Clauses(clause.OnConflict{DoNothing: true})
		for _, row := range []interface{}{customer, merchant, driver} {
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("seed %T: %w", row, err)
			}
		}
		return nil
	})
}

// SeedCustomer is the reference customer every fresh store starts with
func SeedCustomer() *entities.Customer {
	return &entities.Customer{
		ID:               "C001",
		Name:             "John Smith",
		Phone:            "+91-9876543210",
		Email:            "john.smith@gmail.com",
		Address:          "Block A, Sector 15, Noida",
		Rating:           4.5,
		TotalOrders:      25,
		ComplaintHistory: []string{},
		AccountStatus:    entities.AccountStatusActive,
		WalletBalance:    500,
		PreferredPayment: "wallet",
		JoinedDate:       time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

// SeedMerchant is the reference restaurant
func SeedMerchant() *entities.Merchant {
	return &entities.Merchant{
		ID:                    "M001",
		Name:                  "Food Corner",
		Category:              "multi_cuisine",
		Rating:                4.2,
		Address:               "Main Market, Local Area",
		Phone:                 "+91-1147823456",
		TotalOrders:           500,
		ComplaintRate:         0.05,
		AvgPreparationMinutes: 15,
		Status:                entities.MerchantStatusActive,
		Menu: map[string]entities.MenuItem{
			"item_1": {Price: 150, Available: true, Category: "main"},
			"item_2": {Price: 250, Available: true, Category: "main"},
			"item_3": {Price: 100, Available: true, Category: "side"},
			"item_4": {Price: 80, Available: true, Category: "beverage"},
			"item_5": {Price: 200, Available: true, Category: "dessert"},
		},
		QualityIssues:  []string{},
		FeedbackLog:    []string{},
		LastInspection: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SeedDriver is the reference delivery partner
func SeedDriver() *entities.Driver {
	return &entities.Driver{
		ID:                 "D001",
		Name:               "Mike Wilson",
		Phone:              "+91-9123456789",
		VehicleType:        "bike",
		Rating:             4.6,
		TotalDeliveries:    200,
		Status:             entities.DriverStatusAvailable,
		Location:           "Local Area",
		Incidents:          []string{},
		AvgDeliveryMinutes: 20,
		CancellationRate:   0.03,
		ExonerationLog:     []string{},
	}
}
