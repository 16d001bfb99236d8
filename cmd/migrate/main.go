// Command migrate applies the database schema. It is safe to run repeatedly.
package main

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS category (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS supplier (
    id            SERIAL PRIMARY KEY,
    name          TEXT NOT NULL,
    contact_name  TEXT NOT NULL,
    contact_email TEXT NOT NULL,
    contact_phone TEXT NOT NULL,
    address       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS product (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL,
    price       DECIMAL(10,2) NOT NULL,
    quantity    INTEGER NOT NULL,
    sku         TEXT,
    unit        TEXT,
    active      BOOLEAN NOT NULL DEFAULT FALSE,
    category_id INTEGER NOT NULL REFERENCES category (id),
    supplier_id INTEGER NOT NULL REFERENCES supplier (id)
);
`

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading configuration from the environment")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}
	slog.Info("schema applied")
}
