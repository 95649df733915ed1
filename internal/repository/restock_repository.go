// internal/repository/restock_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/restockd/internal/domain"
)

// RestockRepository provides read access to the rows the recommendation
// engine consumes. Implementations must tolerate partial data: rows with
// missing dates are skipped and rows with negative quantities are rejected,
// neither aborts the run.
type RestockRepository interface {
	SalesRecords(ctx context.Context, since time.Time) ([]domain.SalesRecord, error)
	ShipmentRecords(ctx context.Context) ([]domain.ShipmentRecord, error)
	InventoryRecords(ctx context.Context) ([]domain.InventoryRecord, error)
}

type restockRepository struct {
	db *sqlx.DB
}

func NewRestockRepository(db *sqlx.DB) RestockRepository {
	return &restockRepository{db: db}
}

// SalesRecords returns historical sales attributed to product-warehouse
// pairs: shipped or delivered orders joined to the shipment that fulfilled
// them, restricted to order dates at or after the cutoff.
func (r *restockRepository) SalesRecords(ctx context.Context, since time.Time) ([]domain.SalesRecord, error) {
	query := `
        SELECT
            o.product_id,
            s.warehouse_id,
            o.order_date,
            o.quantity
        FROM orders o
        JOIN shipment s ON o.order_id = s.order_id
        WHERE o.order_date >= $1
          AND o.order_status IN ('Shipped', 'Delivered')
    `

	rows, err := r.db.QueryxContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("error querying sales records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var (
			productID   string
			warehouseID string
			orderDate   sql.NullTime
			quantity    int
		)
		if err := rows.Scan(&productID, &warehouseID, &orderDate, &quantity); err != nil {
			return nil, fmt.Errorf("error scanning sales record: %w", err)
		}

		if !orderDate.Valid {
			log.Warn().Str("product_id", productID).Str("warehouse_id", warehouseID).
				Msg("sales record missing order date, skipping")
			continue
		}
		if quantity < 0 {
			log.Warn().Str("product_id", productID).Str("warehouse_id", warehouseID).
				Int("quantity", quantity).Msg("sales record with negative quantity, rejecting")
			continue
		}

		records = append(records, domain.SalesRecord{
			ProductID:   productID,
			WarehouseID: warehouseID,
			OrderDate:   orderDate.Time,
			Quantity:    quantity,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales records: %w", err)
	}

	return records, nil
}

// ShipmentRecords returns every shipment with its delivery date when one
// exists. In-transit shipments come back with a nil delivery date; filtering
// them is the logistics aggregator's job so the tolerance rules live in one
// place.
func (r *restockRepository) ShipmentRecords(ctx context.Context) ([]domain.ShipmentRecord, error) {
	query := `
        SELECT warehouse_id, ship_date, actual_delivery
        FROM shipment
    `

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying shipment records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ShipmentRecord, 0)
	for rows.Next() {
		var (
			warehouseID string
			shipDate    sql.NullTime
			delivered   sql.NullTime
		)
		if err := rows.Scan(&warehouseID, &shipDate, &delivered); err != nil {
			return nil, fmt.Errorf("error scanning shipment record: %w", err)
		}

		if !shipDate.Valid {
			log.Warn().Str("warehouse_id", warehouseID).Msg("shipment missing ship date, skipping")
			continue
		}

		rec := domain.ShipmentRecord{
			WarehouseID: warehouseID,
			ShipDate:    shipDate.Time,
		}
		if delivered.Valid {
			t := delivered.Time
			rec.DeliveryDate = &t
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment records: %w", err)
	}

	return records, nil
}

// InventoryRecords returns the current stock position for every
// product-warehouse pair.
func (r *restockRepository) InventoryRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	query := `
        SELECT product_id, warehouse_id, stock_quantity, reserved_quantity, last_updated
        FROM inventory
    `

	var records []domain.InventoryRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("error querying inventory records: %w", err)
	}

	return records, nil
}
