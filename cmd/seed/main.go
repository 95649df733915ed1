package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/restockd/internal/repository/postgres"
	"github.com/andresuchdata/restockd/internal/seed"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newSeedFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed for the data generator",
		Value: 42,
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Create the schema and load dummy supply-chain data",
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Create all tables if they do not exist",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runSchema,
			},
			{
				Name:   "data",
				Usage:  "Generate and insert dummy data",
				Flags:  []cli.Flag{newDBURLFlag(), newSeedFlag()},
				Action: runData,
			},
			{
				Name:  "all",
				Usage: "Create the schema, then load dummy data",
				Flags: []cli.Flag{newDBURLFlag(), newSeedFlag()},
				Action: func(c *cli.Context) error {
					if err := runSchema(c); err != nil {
						return err
					}
					return runData(c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func runSchema(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Creating schema...")
	if err := postgres.CreateSchema(c.Context, db); err != nil {
		return err
	}
	log.Println("Schema ready")
	return nil
}

func runData(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	seedValue := c.Int64("seed")
	log.Printf("Generating dummy data (seed=%d)...", seedValue)
	ds := seed.Generate(seedValue, time.Now())

	log.Printf("Inserting %d customers, %d products, %d warehouses, %d carriers, %d orders, %d inventory rows, %d shipments...",
		len(ds.Customers), len(ds.Products), len(ds.Warehouses), len(ds.Carriers),
		len(ds.Orders), len(ds.Inventory), len(ds.Shipments))

	if err := seed.InsertAll(c.Context, db, ds); err != nil {
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}
