// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the Product entity, its Category enumeration, and
// the payload validation rules that guard the wire boundary.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidBoolean is returned when a value meant to be a boolean cannot be
// coerced from the accepted set {true, false, 1, 0, yes, no}.
var ErrInvalidBoolean = errors.New("invalid boolean")

// ValidationError reports a missing or malformed payload field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: field %q %s", e.Field, e.Reason)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func typeMismatch(field, expected string) error {
	return &ValidationError{Field: field, Reason: "must be " + expected}
}

// Product represents one catalog item. A Product with a nil ID is transient:
// it has not been persisted yet. Once persisted, the ID never changes.
type Product struct {
	ID          *int64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category"`
}

// String renders the diagnostic representation, e.g.
// "<Product Fedora id=[None]>" for a transient product.
func (p *Product) String() string {
	id := "None"
	if p.ID != nil {
		id = strconv.FormatInt(*p.ID, 10)
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}

// ProductFromPayload validates a decoded JSON mapping and produces a
// transient Product. Required keys are name, description, price and
// available; category is optional and defaults to UNKNOWN. A client-supplied
// id is ignored: ids are assigned by the store on create.
func ProductFromPayload(data map[string]any) (*Product, error) {
	p := &Product{}
	for _, field := range []string{"name", "description", "price", "available"} {
		if _, ok := data[field]; !ok {
			return nil, missingField(field)
		}
	}
	if err := p.ApplyPayload(data); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyPayload merges the present keys of a decoded JSON mapping onto the
// product. Absent keys keep their previous values, which is what gives PUT
// its partial-update semantics. All values are validated before any field is
// mutated, so a bad payload leaves the product untouched.
func (p *Product) ApplyPayload(data map[string]any) error {
	next := *p

	if v, ok := data["name"]; ok {
		name, err := coerceString("name", v)
		if err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		next.Name = name
	}
	if v, ok := data["description"]; ok {
		desc, err := coerceString("description", v)
		if err != nil {
			return err
		}
		next.Description = desc
	}
	if v, ok := data["price"]; ok {
		price, err := coercePrice(v)
		if err != nil {
			return err
		}
		next.Price = price
	}
	if v, ok := data["available"]; ok {
		avail, err := coerceAvailable(v)
		if err != nil {
			return err
		}
		next.Available = avail
	}
	if v, ok := data["category"]; ok {
		label, err := coerceString("category", v)
		if err != nil {
			return err
		}
		cat, err := ParseCategory(label)
		if err != nil {
			return err
		}
		next.Category = cat
	}

	next.ID = p.ID
	*p = next
	return nil
}

func coerceString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(field, "a string")
	}
	return s, nil
}

// coercePrice accepts a JSON number or a numeric string and requires the
// result to be a non-negative decimal.
func coercePrice(v any) (decimal.Decimal, error) {
	var raw string
	switch n := v.(type) {
	case json.Number:
		raw = n.String()
	case string:
		raw = strings.TrimSpace(n)
	case float64:
		return checkPrice(decimal.NewFromFloat(n))
	default:
		return decimal.Decimal{}, typeMismatch("price", "a non-negative decimal")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, typeMismatch("price", "a non-negative decimal")
	}
	return checkPrice(price)
}

func checkPrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return price, nil
}

// coerceAvailable accepts a JSON boolean, the numbers 0 and 1, or one of the
// strings {true, false, 1, 0, yes, no} case-insensitively.
func coerceAvailable(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return parseFlag(b)
	case json.Number:
		return parseFlag(b.String())
	case float64:
		return parseFlag(strconv.FormatFloat(b, 'f', -1, 64))
	default:
		return false, typeMismatch("available", "a boolean")
	}
}

// parseFlag coerces query-parameter style boolean text. The accepted set
// matches what the REST surface has always taken for the available field.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, s)
	}
}

// ParseAvailability exposes the boolean coercion rule for query parameters,
// so the list filter and the entity share one contract.
func ParseAvailability(s string) (bool, error) {
	return parseFlag(s)
}
