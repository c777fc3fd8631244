package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'agromart_test'; tests skip when
// it is not available.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/agromart_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Notifications", "Product", "Shops", "Users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the tables the tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS Users (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		mobile VARCHAR(30) NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL,
		village VARCHAR(100) NOT NULL DEFAULT '',
		district VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_role (role)
	)`

	createShopsTable := `
	CREATE TABLE IF NOT EXISTS Shops (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		ownerId VARCHAR(36) NOT NULL,
		name VARCHAR(150) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_owner (ownerId)
	)`

	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		shopId VARCHAR(36) NOT NULL,
		dealerId VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		description TEXT,
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		quantity INT NOT NULL DEFAULT 0,
		warehouseQuantity INT,
		unit VARCHAR(20) NOT NULL DEFAULT 'kg',
		imageUrl VARCHAR(500) NOT NULL DEFAULT '',
		isPublished TINYINT(1) NOT NULL DEFAULT 0,
		isAvailable TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_shop (shopId),
		INDEX idx_dealer (dealerId)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		farmerId VARCHAR(36) NOT NULL,
		dealerId VARCHAR(36) NOT NULL,
		shopId VARCHAR(36) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'placed',
		paymentMode VARCHAR(20) NOT NULL DEFAULT 'cod',
		deliveryAddress VARCHAR(500) NOT NULL DEFAULT '',
		totalAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_farmer (farmerId),
		INDEX idx_dealer (dealerId),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		orderId VARCHAR(36) NOT NULL,
		productId VARCHAR(36) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId),
		INDEX idx_product (productId)
	)`

	createNotificationsTable := `
	CREATE TABLE IF NOT EXISTS Notifications (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		userId VARCHAR(36) NOT NULL,
		type VARCHAR(20) NOT NULL DEFAULT 'system',
		message VARCHAR(500) NOT NULL,
		isRead TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_user (userId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Users", createUsersTable},
		{"Shops", createShopsTable},
		{"Product", createProductTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
		{"Notifications", createNotificationsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
