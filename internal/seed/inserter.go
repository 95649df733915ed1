package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertAll writes the dataset inside a single transaction. Existing rows
// with matching keys are replaced so reseeding is idempotent.
func InsertAll(ctx context.Context, db *sql.DB, ds *Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertDataset(ctx, tx, ds); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertDataset(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	if err := insertCustomers(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	if err := insertProducts(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := insertWarehouses(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed warehouses: %w", err)
	}
	if err := insertCarriers(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed carriers: %w", err)
	}
	if err := insertOrders(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}
	if err := insertInventory(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}
	if err := insertShipments(ctx, tx, ds); err != nil {
		return fmt.Errorf("failed to seed shipments: %w", err)
	}
	return nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO customer (customer_id, customer_name, email, registration_date)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (customer_id) DO UPDATE SET
            customer_name = EXCLUDED.customer_name,
            email = EXCLUDED.email,
            registration_date = EXCLUDED.registration_date
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range ds.Customers {
		if _, err := stmt.ExecContext(ctx, c.CustomerID, c.CustomerName, c.Email, c.RegistrationDate); err != nil {
			return fmt.Errorf("customer %s: %w", c.CustomerID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO product (product_id, product_name, product_category, unit_price)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (product_id) DO UPDATE SET
            product_name = EXCLUDED.product_name,
            product_category = EXCLUDED.product_category,
            unit_price = EXCLUDED.unit_price
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range ds.Products {
		if _, err := stmt.ExecContext(ctx, p.ProductID, p.ProductName, p.ProductCategory, p.UnitPrice); err != nil {
			return fmt.Errorf("product %s: %w", p.ProductID, err)
		}
	}
	return nil
}

func insertWarehouses(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO warehouse (warehouse_id, warehouse_name, location, capacity)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (warehouse_id) DO UPDATE SET
            warehouse_name = EXCLUDED.warehouse_name,
            location = EXCLUDED.location,
            capacity = EXCLUDED.capacity
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range ds.Warehouses {
		if _, err := stmt.ExecContext(ctx, w.WarehouseID, w.WarehouseName, w.Location, w.Capacity); err != nil {
			return fmt.Errorf("warehouse %s: %w", w.WarehouseID, err)
		}
	}
	return nil
}

func insertCarriers(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO carrier (carrier_id, service_level, avg_delivery_time)
        VALUES ($1, $2, $3)
        ON CONFLICT (carrier_id, service_level) DO UPDATE SET
            avg_delivery_time = EXCLUDED.avg_delivery_time
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range ds.Carriers {
		if _, err := stmt.ExecContext(ctx, c.CarrierID, c.ServiceLevel, c.AvgDeliveryTime); err != nil {
			return fmt.Errorf("carrier %s/%s: %w", c.CarrierID, c.ServiceLevel, err)
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO orders (order_id, customer_id, product_id, order_date, order_status, quantity)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (order_id) DO UPDATE SET
            customer_id = EXCLUDED.customer_id,
            product_id = EXCLUDED.product_id,
            order_date = EXCLUDED.order_date,
            order_status = EXCLUDED.order_status,
            quantity = EXCLUDED.quantity
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range ds.Orders {
		if _, err := stmt.ExecContext(ctx, o.OrderID, o.CustomerID, o.ProductID, o.OrderDate, o.OrderStatus, o.Quantity); err != nil {
			return fmt.Errorf("order %s: %w", o.OrderID, err)
		}
	}
	return nil
}

func insertInventory(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO inventory (product_id, warehouse_id, stock_quantity, reserved_quantity, last_updated)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (product_id, warehouse_id) DO UPDATE SET
            stock_quantity = EXCLUDED.stock_quantity,
            reserved_quantity = EXCLUDED.reserved_quantity,
            last_updated = EXCLUDED.last_updated
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, inv := range ds.Inventory {
		if _, err := stmt.ExecContext(ctx, inv.ProductID, inv.WarehouseID, inv.StockQuantity, inv.ReservedQuantity, inv.LastUpdated); err != nil {
			return fmt.Errorf("inventory %s/%s: %w", inv.ProductID, inv.WarehouseID, err)
		}
	}
	return nil
}

func insertShipments(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	const query = `
        INSERT INTO shipment (
            shipment_id, order_id, warehouse_id, carrier_id, service_level,
            shipment_status, ship_date, estimated_delivery, actual_delivery, tracking_number
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (shipment_id) DO UPDATE SET
            order_id = EXCLUDED.order_id,
            warehouse_id = EXCLUDED.warehouse_id,
            carrier_id = EXCLUDED.carrier_id,
            service_level = EXCLUDED.service_level,
            shipment_status = EXCLUDED.shipment_status,
            ship_date = EXCLUDED.ship_date,
            estimated_delivery = EXCLUDED.estimated_delivery,
            actual_delivery = EXCLUDED.actual_delivery,
            tracking_number = EXCLUDED.tracking_number
    `
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range ds.Shipments {
		var actual sql.NullTime
		if s.ActualDelivery != nil {
			actual = sql.NullTime{Time: *s.ActualDelivery, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			s.ShipmentID, s.OrderID, s.WarehouseID, s.CarrierID, s.ServiceLevel,
			s.ShipmentStatus, s.ShipDate, s.EstimatedDelivery, actual, s.TrackingNumber,
		); err != nil {
			return fmt.Errorf("shipment %s: %w", s.ShipmentID, err)
		}
	}
	return nil
}
