package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements mirrors the supply-chain ontology: master data (customer,
// product, warehouse, carrier), orders, inventory positions and shipments.
// Enumerated columns are enforced with CHECK constraints.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
		customer_id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		registration_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		product_id TEXT PRIMARY KEY,
		product_name TEXT NOT NULL,
		product_category TEXT NOT NULL,
		unit_price DECIMAL(10,2) NOT NULL CHECK (unit_price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS warehouse (
		warehouse_id TEXT PRIMARY KEY,
		warehouse_name TEXT NOT NULL,
		location TEXT NOT NULL,
		capacity INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS carrier (
		carrier_id TEXT NOT NULL,
		service_level TEXT NOT NULL CHECK (service_level IN ('Standard', 'Express', 'Overnight')),
		avg_delivery_time INTEGER NOT NULL,
		PRIMARY KEY (carrier_id, service_level)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customer(customer_id),
		product_id TEXT NOT NULL REFERENCES product(product_id),
		order_date DATE NOT NULL,
		order_status TEXT NOT NULL CHECK (order_status IN ('Pending', 'Shipped', 'Delivered', 'Canceled')),
		quantity INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		product_id TEXT NOT NULL REFERENCES product(product_id),
		warehouse_id TEXT NOT NULL REFERENCES warehouse(warehouse_id),
		stock_quantity INTEGER NOT NULL,
		reserved_quantity INTEGER NOT NULL,
		last_updated TIMESTAMP NOT NULL,
		PRIMARY KEY (product_id, warehouse_id)
	)`,
	`CREATE TABLE IF NOT EXISTS shipment (
		shipment_id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(order_id),
		warehouse_id TEXT NOT NULL REFERENCES warehouse(warehouse_id),
		carrier_id TEXT NOT NULL,
		service_level TEXT NOT NULL CHECK (service_level IN ('Standard', 'Express', 'Overnight')),
		shipment_status TEXT NOT NULL CHECK (shipment_status IN ('In Transit', 'Delivered', 'Delayed')),
		ship_date DATE NOT NULL,
		estimated_delivery DATE NOT NULL,
		actual_delivery DATE,
		tracking_number TEXT UNIQUE NOT NULL,
		FOREIGN KEY (carrier_id, service_level) REFERENCES carrier(carrier_id, service_level)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_date_status ON orders(order_date, order_status)`,
	`CREATE INDEX IF NOT EXISTS idx_shipment_warehouse ON shipment(warehouse_id)`,
}

// CreateSchema creates all tables if they do not exist yet.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
