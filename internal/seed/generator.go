// Package seed generates a self-consistent dummy dataset for local
// development and demos. Generation is deterministic for a given seed so
// repeated runs produce the same database.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andresuchdata/restockd/internal/domain"
)

const (
	NumCustomers  = 50
	NumProducts   = 30
	NumWarehouses = 10
	NumOrders     = 200
	OrderSpanDays = 60
)

var (
	productCategories = []string{"Electronics", "Apparel", "Home & Garden", "Toys", "Sports", "Beauty"}

	warehouseCities = []string{
		"Jakarta", "Surabaya", "Bandung", "Medan", "Semarang",
		"Makassar", "Palembang", "Denpasar", "Balikpapan", "Yogyakarta",
	}

	carrierNames = []string{"SwiftHaul", "BlueCrate", "NusaExpress"}

	// Base delivery days per service level. Each carrier row gets a small
	// deterministic offset so the performance report has spread.
	serviceBaseDays = map[string]int{
		domain.ServiceOvernight: 1,
		domain.ServiceExpress:   2,
		domain.ServiceStandard:  5,
	}
)

// Dataset holds one generated batch of rows, ready for insertion.
type Dataset struct {
	Customers  []domain.Customer
	Products   []domain.Product
	Warehouses []domain.Warehouse
	Carriers   []domain.Carrier
	Orders     []domain.Order
	Inventory  []domain.InventoryRecord
	Shipments  []domain.Shipment
}

// Generate builds the full dataset anchored at now. The same seed and anchor
// always produce the same rows.
func Generate(seedValue int64, now time.Time) *Dataset {
	rng := rand.New(rand.NewSource(seedValue))
	today := now.Truncate(24 * time.Hour)

	ds := &Dataset{}
	ds.Customers = generateCustomers(rng, today)
	ds.Products = generateProducts(rng)
	ds.Warehouses = generateWarehouses(rng)
	ds.Carriers = generateCarriers()
	ds.Orders = generateOrders(rng, ds.Customers, ds.Products, today)
	ds.Inventory = generateInventory(rng, ds.Products, ds.Warehouses, now)
	ds.Shipments = generateShipments(rng, ds.Orders, ds.Warehouses, ds.Carriers, today)

	return ds
}

func generateCustomers(rng *rand.Rand, today time.Time) []domain.Customer {
	customers := make([]domain.Customer, 0, NumCustomers)
	for i := 1; i <= NumCustomers; i++ {
		id := fmt.Sprintf("C%03d", i)
		customers = append(customers, domain.Customer{
			CustomerID:       id,
			CustomerName:     fmt.Sprintf("Customer %03d", i),
			Email:            fmt.Sprintf("customer%03d@example.com", i),
			RegistrationDate: today.AddDate(0, 0, -rng.Intn(730)),
		})
	}
	return customers
}

func generateProducts(rng *rand.Rand) []domain.Product {
	products := make([]domain.Product, 0, NumProducts)
	for i := 1; i <= NumProducts; i++ {
		category := productCategories[rng.Intn(len(productCategories))]
		// 5.00 to 500.00, two decimal places
		price := decimal.NewFromInt(int64(500 + rng.Intn(49501))).Div(decimal.NewFromInt(100))
		products = append(products, domain.Product{
			ProductID:       fmt.Sprintf("P%03d", i),
			ProductName:     fmt.Sprintf("%s Item %03d", category, i),
			ProductCategory: category,
			UnitPrice:       price,
		})
	}
	return products
}

func generateWarehouses(rng *rand.Rand) []domain.Warehouse {
	warehouses := make([]domain.Warehouse, 0, NumWarehouses)
	for i := 1; i <= NumWarehouses; i++ {
		city := warehouseCities[(i-1)%len(warehouseCities)]
		warehouses = append(warehouses, domain.Warehouse{
			WarehouseID:   fmt.Sprintf("W%02d", i),
			WarehouseName: fmt.Sprintf("%s Hub", city),
			Location:      city,
			Capacity:      (5 + rng.Intn(16)) * 1000,
		})
	}
	return warehouses
}

// generateCarriers produces every carrier and service level combination.
func generateCarriers() []domain.Carrier {
	carriers := make([]domain.Carrier, 0, len(carrierNames)*len(serviceBaseDays))
	for i, name := range carrierNames {
		for _, level := range []string{domain.ServiceOvernight, domain.ServiceExpress, domain.ServiceStandard} {
			carriers = append(carriers, domain.Carrier{
				CarrierID:       name,
				ServiceLevel:    level,
				AvgDeliveryTime: serviceBaseDays[level] + i%2,
			})
		}
	}
	return carriers
}

func generateOrders(rng *rand.Rand, customers []domain.Customer, products []domain.Product, today time.Time) []domain.Order {
	orders := make([]domain.Order, 0, NumOrders)
	for i := 1; i <= NumOrders; i++ {
		status := pickOrderStatus(rng)
		orders = append(orders, domain.Order{
			OrderID:     fmt.Sprintf("O%05d", i),
			CustomerID:  customers[rng.Intn(len(customers))].CustomerID,
			ProductID:   products[rng.Intn(len(products))].ProductID,
			OrderDate:   today.AddDate(0, 0, -rng.Intn(OrderSpanDays)),
			OrderStatus: status,
			Quantity:    1 + rng.Intn(20),
		})
	}
	return orders
}

// pickOrderStatus is weighted toward fulfilled orders: 50% Delivered,
// 30% Shipped, 10% Pending, 10% Canceled.
func pickOrderStatus(rng *rand.Rand) string {
	switch roll := rng.Intn(100); {
	case roll < 50:
		return domain.OrderDelivered
	case roll < 80:
		return domain.OrderShipped
	case roll < 90:
		return domain.OrderPending
	default:
		return domain.OrderCanceled
	}
}

func generateInventory(rng *rand.Rand, products []domain.Product, warehouses []domain.Warehouse, now time.Time) []domain.InventoryRecord {
	inventory := make([]domain.InventoryRecord, 0, len(products)*len(warehouses))
	for _, p := range products {
		for _, w := range warehouses {
			stock := rng.Intn(501)
			// Reserved occasionally exceeds stock on purpose, matching the
			// messy positions the engine has to clamp.
			reserved := rng.Intn(stock/2 + 10)
			inventory = append(inventory, domain.InventoryRecord{
				ProductID:        p.ProductID,
				WarehouseID:      w.WarehouseID,
				StockQuantity:    stock,
				ReservedQuantity: reserved,
				LastUpdated:      now,
			})
		}
	}
	return inventory
}

// generateShipments creates one shipment per shipped or delivered order.
// Service levels are weighted 50% Standard, 30% Express, 20% Overnight.
func generateShipments(rng *rand.Rand, orders []domain.Order, warehouses []domain.Warehouse, carriers []domain.Carrier, today time.Time) []domain.Shipment {
	byService := make(map[string][]domain.Carrier)
	for _, c := range carriers {
		byService[c.ServiceLevel] = append(byService[c.ServiceLevel], c)
	}

	shipments := make([]domain.Shipment, 0, len(orders))
	seq := 0
	for _, o := range orders {
		if o.OrderStatus != domain.OrderShipped && o.OrderStatus != domain.OrderDelivered {
			continue
		}
		seq++

		level := pickServiceLevel(rng)
		candidates := byService[level]
		carrier := candidates[rng.Intn(len(candidates))]

		shipDate := o.OrderDate.AddDate(0, 0, rng.Intn(3))
		estimated := shipDate.AddDate(0, 0, carrier.AvgDeliveryTime+rng.Intn(3))

		shipmentID := fmt.Sprintf("S%05d", seq)
		s := domain.Shipment{
			ShipmentID:        shipmentID,
			OrderID:           o.OrderID,
			WarehouseID:       warehouses[rng.Intn(len(warehouses))].WarehouseID,
			CarrierID:         carrier.CarrierID,
			ServiceLevel:      level,
			ShipDate:          shipDate,
			EstimatedDelivery: estimated,
			TrackingNumber:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(shipmentID)).String(),
		}

		if o.OrderStatus == domain.OrderDelivered {
			actual := estimated.AddDate(0, 0, rng.Intn(4)-1)
			if !actual.After(shipDate) {
				actual = shipDate.AddDate(0, 0, 1)
			}
			s.ActualDelivery = &actual
			s.ShipmentStatus = domain.ShipmentDelivered
		} else if today.After(estimated) {
			s.ShipmentStatus = domain.ShipmentDelayed
		} else {
			s.ShipmentStatus = domain.ShipmentInTransit
		}

		shipments = append(shipments, s)
	}
	return shipments
}

func pickServiceLevel(rng *rand.Rand) string {
	switch roll := rng.Intn(100); {
	case roll < 50:
		return domain.ServiceStandard
	case roll < 80:
		return domain.ServiceExpress
	default:
		return domain.ServiceOvernight
	}
}
