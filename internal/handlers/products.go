// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the product store REST
// surface. Handlers receive their dependencies through the handler struct
// and translate domain errors into HTTP statuses; the store and model
// layers never touch the transport.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"productstore/internal/models"
	"productstore/internal/store"
)

// ProductStore is the persistence contract the handlers depend on. The
// concrete implementation is store.ProductStore; tests substitute an
// in-memory fake.
type ProductStore interface {
	Create(p *models.Product) error
	Update(p *models.Product) error
	Delete(id int64) error
	FindByID(id int64) (*models.Product, error)
	All() ([]models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
}

// Products groups the product resource handlers and their dependencies.
type Products struct {
	store  ProductStore
	logger *slog.Logger
}

// NewProducts creates a new Products handler group.
func NewProducts(store ProductStore, logger *slog.Logger) *Products {
	return &Products{store: store, logger: logger}
}

// requireJSON enforces an application/json request body. Media type
// parameters such as charset are accepted; anything that is not JSON gets
// a 415.
func (h *Products) requireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt != "application/json" {
		h.logger.Warn("unsupported media type", "content_type", ct)
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// decodeBody decodes the request body into a generic mapping, keeping
// numbers as json.Number so price values never pass through float64.
func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// productID reads the id route parameter. The router constrains it to
// digits, so a parse failure can only mean an id too large to exist.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// Create handles POST /products: validates the payload, persists a new
// product, and replies 201 with the serialized product and a Location
// header pointing at it.
func (h *Products) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireJSON(w, r) {
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unable to parse product payload")
		return
	}

	product, err := models.ProductFromPayload(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Create(product); err != nil {
		h.logger.Error("create product failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.logger.Info("product created", "id", *product.ID, "name", product.Name)

	w.Header().Set("Location", fmt.Sprintf("/products/%d", *product.ID))
	writeJSON(w, http.StatusCreated, product)
}

// Get handles GET /products/{id}. Absence is a client error here, unlike
// Delete.
func (h *Products) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, notFoundMessage(chi.URLParam(r, "id")))
		return
	}

	product, err := h.store.FindByID(id)
	if err != nil {
		h.logger.Error("find product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to query product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, notFoundMessage(chi.URLParam(r, "id")))
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// List handles GET /products with optional name, category and available
// query parameters.
//
// Filter resolution is a fixed precedence chain, not a conjunction: name
// wins over category, category over available, and with no parameters every
// product is returned. When several filters are supplied, only the first in
// that order is honored; filters never combine.
func (h *Products) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		products []models.Product
		err      error
	)
	switch {
	case q.Has("name"):
		products, err = h.store.FindByName(q.Get("name"))
	case q.Has("category"):
		category, perr := models.ParseCategory(q.Get("category"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid category: %s", q.Get("category")))
			return
		}
		products, err = h.store.FindByCategory(category)
	case q.Has("available"):
		available, perr := models.ParseAvailability(q.Get("available"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid availability value: %s", q.Get("available")))
			return
		}
		products, err = h.store.FindByAvailability(available)
	default:
		products, err = h.store.All()
	}

	if err != nil {
		h.logger.Error("list products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to query products")
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// Update handles PUT /products/{id} with partial-update semantics: keys
// absent from the payload keep their stored values.
func (h *Products) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireJSON(w, r) {
		return
	}

	id, ok := productID(r)
	if !ok {
		writeError(w, http.StatusNotFound, notFoundMessage(chi.URLParam(r, "id")))
		return
	}

	product, err := h.store.FindByID(id)
	if err != nil {
		h.logger.Error("find product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to query product")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, notFoundMessage(chi.URLParam(r, "id")))
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unable to parse product payload")
		return
	}

	if err := product.ApplyPayload(data); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Update(product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, notFoundMessage(chi.URLParam(r, "id")))
			return
		}
		h.logger.Error("update product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	h.logger.Info("product updated", "id", id)
	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}. Deleting an absent id succeeds:
// the operation is idempotent and its absence case is deliberately NOT an
// error, in contrast to Get.
func (h *Products) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		// An id too large to exist deletes nothing, which is still success.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.logger.Error("delete product failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	h.logger.Info("product deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("Product with id '%s' was not found.", id)
}
