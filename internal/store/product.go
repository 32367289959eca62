// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements persistence for products over database/sql.
// Each operation runs as a single statement against the pool; there are no
// cross-call transactions.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"productstore/internal/models"
)

// ErrNotFound is returned by Update when the product's id does not exist.
// Lookup absence is not an error: FindByID returns (nil, nil) and callers
// decide whether that is a client fault.
var ErrNotFound = errors.New("product not found")

// ProductStore manages products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, description, price, available, category`

// scanProduct scans a row into a Product struct.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Available, &p.Category,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a transient product and assigns its id. The product must
// not carry an id yet; on storage failure it stays transient.
func (s *ProductStore) Create(p *models.Product) error {
	if p.ID != nil {
		return fmt.Errorf("create product: id already assigned (%d)", *p.ID)
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO products (name, description, price, available, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Name, p.Description, p.Price, p.Available, p.Category).Scan(&id)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	p.ID = &id
	return nil
}

// Update overwrites every field except id with the product's current
// in-memory values. Returns ErrNotFound when the id does not exist.
func (s *ProductStore) Update(p *models.Product) error {
	if p.ID == nil {
		return fmt.Errorf("update product: %w", ErrNotFound)
	}

	res, err := s.db.Exec(`
		UPDATE products SET
			name = $1, description = $2, price = $3, available = $4,
			category = $5, updated_at = NOW()
		WHERE id = $6
	`, p.Name, p.Description, p.Price, p.Available, p.Category, *p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update product %d: %w", *p.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the row with the given id. Deleting an absent id is a
// no-op, never an error.
func (s *ProductStore) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by id. Returns nil if not found.
func (s *ProductStore) FindByID(id int64) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// All returns every product, ordered by id so repeated queries are
// deterministic.
func (s *ProductStore) All() ([]models.Product, error) {
	return s.query(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
}

// FindByName returns every product whose name matches exactly.
func (s *ProductStore) FindByName(name string) ([]models.Product, error) {
	return s.query(`SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY id`, name)
}

// FindByCategory returns every product in the given category.
func (s *ProductStore) FindByCategory(category models.Category) ([]models.Product, error) {
	return s.query(`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, category)
}

// FindByAvailability returns every product with the given availability.
func (s *ProductStore) FindByAvailability(available bool) ([]models.Product, error) {
	return s.query(`SELECT `+productColumns+` FROM products WHERE available = $1 ORDER BY id`, available)
}

func (s *ProductStore) query(q string, args ...any) ([]models.Product, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
