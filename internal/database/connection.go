// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sooqhub/sooq-backend/internal/config"
	"github.com/sooqhub/sooq-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	switch cfg.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "info":
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close database connection")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations")

	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.Category{},
		&models.Brand{},
		&models.BaseItem{},
		&models.Product{},
		&models.Service{},
		&models.Media{},
		&models.Feature{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderActivity{},
		&models.BaseContent{},
		&models.Attachment{},
		&models.Comment{},
		&models.Review{},
		&models.Conversation{},
		&models.Message{},
		&models.PaymentMethod{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_base_items_category_available ON base_items(category_id, is_available)",
		"CREATE INDEX IF NOT EXISTS idx_base_items_owner ON base_items(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_base_items_price ON base_items(price)",
		"CREATE INDEX IF NOT EXISTS idx_base_items_created_at ON base_items(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_carts_user_status ON carts(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_cart_items_cart_item ON cart_items(cart_id, base_item_id)",

		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_activities_order_created ON order_activities(order_id, created_at)",

		"CREATE INDEX IF NOT EXISTS idx_payments_order_created ON payments(order_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_payments_provider_ref ON payments(provider_ref)",

		"CREATE INDEX IF NOT EXISTS idx_messages_conversation_created ON messages(conversation_id, created_at)",

		"CREATE INDEX IF NOT EXISTS idx_base_items_search ON base_items USING GIN(to_tsvector('english', name || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}

	return nil
}

// SeedInitialData inserts the rows the platform expects at first boot:
// payment methods and the starter category set.
func SeedInitialData(db *gorm.DB) error {
	logrus.Info("Seeding initial data")

	paymentMethods := []models.PaymentMethod{
		{Code: "card", DisplayName: "Credit / Debit Card", Enabled: true},
		{Code: "cash_on_delivery", DisplayName: "Cash on Delivery", Enabled: true},
		{Code: "wallet", DisplayName: "Wallet", Enabled: false},
	}
	for _, method := range paymentMethods {
		var count int64
		db.Model(&models.PaymentMethod{}).Where("code = ?", method.Code).Count(&count)
		if count == 0 {
			if err := db.Create(&method).Error; err != nil {
				return fmt.Errorf("failed to seed payment method %s: %w", method.Code, err)
			}
		}
	}

	categories := []models.Category{
		{Name: "Electronics", Description: "Phones, computers and accessories"},
		{Name: "Home", Description: "Furniture and household goods"},
		{Name: "Services", Description: "Professional and personal services"},
	}
	for _, category := range categories {
		var count int64
		db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", category.Name, err)
			}
		}
	}

	logrus.Info("Initial data seeding completed")
	return nil
}
