package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data.
// It inserts a handful of sample products if the table is empty, so a fresh
// checkout serves something useful right away.
func Seed(db *sql.DB) error {
	// Check if any products exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("seed check products: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	samples := []struct {
		name, description, price, category string
		available                          bool
	}{
		{"Fedora", "A red hat", "12.50", "CLOTHS", true},
		{"Hat", "A classic fedora", "59.95", "CLOTHS", true},
		{"Shoes", "Blue shoes", "120.50", "CLOTHS", false},
		{"Big Mac", "1/4 lb burger", "5.99", "FOOD", true},
		{"Sheets", "Full bed sheets", "87.00", "HOUSEWARES", true},
		{"Hammer", "16 oz claw hammer", "34.95", "TOOLS", true},
	}

	for _, s := range samples {
		_, err := db.Exec(`
			INSERT INTO products (name, description, price, available, category)
			VALUES ($1, $2, $3, $4, $5)
		`, s.name, s.description, s.price, s.available, s.category)
		if err != nil {
			return fmt.Errorf("seed insert product %q: %w", s.name, err)
		}
	}

	slog.Info("database seeded with sample products", "count", len(samples))
	return nil
}
