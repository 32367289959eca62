// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory is returned when a label does not match any category
// member. Callers surface it as a client error, not a server fault.
var ErrInvalidCategory = errors.New("invalid category")

// Category is the closed set of product category labels. The zero value is
// CategoryUnknown, used whenever a product's category is unset.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
	CategorySports
)

// categoryLabels maps each member to its canonical label, in member order.
var categoryLabels = []string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
	CategorySports:     "SPORTS",
}

// ParseCategory maps an external label onto exactly one category member.
// Matching is a case-insensitive exact match against the member labels.
func ParseCategory(label string) (Category, error) {
	for c, name := range categoryLabels {
		if strings.EqualFold(label, name) {
			return Category(c), nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrInvalidCategory, label)
}

// String returns the canonical label for the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return categoryLabels[CategoryUnknown]
	}
	return categoryLabels[c]
}

// MarshalJSON emits the category as its label text.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a label, case-insensitively.
func (c *Category) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, data)
	}
	parsed, err := ParseCategory(label)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the category as its label text.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads a label text column back into a category member.
func (c *Category) Scan(src any) error {
	var label string
	switch v := src.(type) {
	case string:
		label = v
	case []byte:
		label = string(v)
	default:
		return fmt.Errorf("scan category: unsupported type %T", src)
	}
	parsed, err := ParseCategory(label)
	if err != nil {
		return fmt.Errorf("scan category: %w", err)
	}
	*c = parsed
	return nil
}
