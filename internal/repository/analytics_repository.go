// internal/repository/analytics_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andresuchdata/restockd/internal/domain"
)

// AnalyticsRepository runs the read-heavy reporting queries. These push the
// aggregation into Postgres and return finished rows.
type AnalyticsRepository interface {
	CarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, error)
	TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	Shortages(ctx context.Context) ([]domain.ShortageRow, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CarrierPerformance aggregates delivered shipments per carrier and service
// level. Date columns subtract to integer days, the ::float casts keep the
// averages fractional.
func (r *analyticsRepository) CarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, error) {
	query := `
        SELECT
            s.carrier_id,
            s.service_level,
            COUNT(*) AS total_shipments,
            AVG((s.actual_delivery - s.ship_date)::float) AS avg_delivery_days,
            MIN((s.actual_delivery - s.ship_date)::float) AS min_delivery_days,
            MAX((s.actual_delivery - s.ship_date)::float) AS max_delivery_days,
            AVG((s.actual_delivery - s.estimated_delivery)::float) AS avg_delay_days,
            COUNT(*) FILTER (WHERE s.actual_delivery <= s.estimated_delivery) * 100.0 / COUNT(*) AS on_time_percentage
        FROM shipment s
        WHERE s.shipment_status = 'Delivered'
          AND s.actual_delivery IS NOT NULL
        GROUP BY s.carrier_id, s.service_level
        ORDER BY avg_delivery_days ASC
    `

	var rows []domain.CarrierPerformance
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error querying carrier performance: %w", err)
	}

	return rows, nil
}

// TopProducts ranks products by units sold over the trailing 90 days,
// counting every non-canceled order.
func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	query := `
        SELECT
            p.product_id,
            p.product_name,
            p.product_category,
            p.unit_price,
            SUM(o.quantity) AS total_units_sold,
            COUNT(o.order_id) AS total_orders,
            SUM(o.quantity * p.unit_price) AS total_revenue,
            AVG(o.quantity) AS avg_order_quantity,
            COUNT(DISTINCT o.customer_id) AS unique_customers
        FROM orders o
        JOIN product p ON o.product_id = p.product_id
        WHERE o.order_date >= CURRENT_DATE - INTERVAL '90 days'
          AND o.order_status != 'Canceled'
        GROUP BY p.product_id, p.product_name, p.product_category, p.unit_price
        ORDER BY total_units_sold DESC
        LIMIT $1
    `

	var rows []domain.TopProduct
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("error querying top products: %w", err)
	}

	return rows, nil
}

// Shortages classifies every product-warehouse pair by days of remaining
// stock against demand over the trailing 30 days. The 0.1 floor on the demand
// rate keeps slow movers from reporting infinite runway.
func (r *analyticsRepository) Shortages(ctx context.Context) ([]domain.ShortageRow, error) {
	query := `
        WITH demand AS (
            SELECT
                o.product_id,
                s.warehouse_id,
                SUM(o.quantity) AS units_30d
            FROM orders o
            JOIN shipment s ON o.order_id = s.order_id
            WHERE o.order_date >= CURRENT_DATE - INTERVAL '30 days'
              AND o.order_status IN ('Shipped', 'Delivered')
            GROUP BY o.product_id, s.warehouse_id
        ),
        position AS (
            SELECT
                i.product_id,
                i.warehouse_id,
                GREATEST(i.stock_quantity - i.reserved_quantity, 0) AS available_stock,
                GREATEST(COALESCE(d.units_30d, 0) / 30.0, 0.1) AS daily_demand_rate,
                COALESCE(d.units_30d, 0) AS demand_last_30_days
            FROM inventory i
            LEFT JOIN demand d
                ON d.product_id = i.product_id AND d.warehouse_id = i.warehouse_id
        )
        SELECT
            w.warehouse_id,
            w.warehouse_name,
            w.location,
            p.product_id,
            p.product_name,
            p.product_category,
            pos.available_stock,
            pos.daily_demand_rate,
            pos.demand_last_30_days,
            ROUND((pos.available_stock / pos.daily_demand_rate)::numeric, 1) AS days_of_stock,
            CASE
                WHEN pos.available_stock = 0 THEN 'OUT_OF_STOCK'
                WHEN pos.available_stock / pos.daily_demand_rate < 7 THEN 'CRITICAL'
                WHEN pos.available_stock / pos.daily_demand_rate < 14 THEN 'LOW'
                ELSE 'ADEQUATE'
            END AS stock_status
        FROM position pos
        JOIN warehouse w ON w.warehouse_id = pos.warehouse_id
        JOIN product p ON p.product_id = pos.product_id
        ORDER BY
            CASE
                WHEN pos.available_stock = 0 THEN 1
                WHEN pos.available_stock / pos.daily_demand_rate < 7 THEN 2
                WHEN pos.available_stock / pos.daily_demand_rate < 14 THEN 3
                ELSE 4
            END,
            days_of_stock ASC
    `

	var rows []domain.ShortageRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error querying shortages: %w", err)
	}

	return rows, nil
}
