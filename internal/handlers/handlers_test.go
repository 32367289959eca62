// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go provides shared test infrastructure for handler tests:
// an in-memory ProductStore fake and a router wired like the real one, so
// handlers are exercised through URL routing without a database.
package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"productstore/internal/models"
	"productstore/internal/store"
)

// memStore is an in-memory ProductStore used by handler tests. Setting
// failWith makes every operation fail, for exercising 500 paths.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]models.Product
	failWith error
}

func newMemStore() *memStore {
	return &memStore{products: make(map[int64]models.Product)}
}

func (m *memStore) Create(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	id := m.nextID
	p.ID = &id
	m.products[id] = *p
	return nil
}

func (m *memStore) Update(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if p.ID == nil {
		return store.ErrNotFound
	}
	if _, ok := m.products[*p.ID]; !ok {
		return store.ErrNotFound
	}
	m.products[*p.ID] = *p
	return nil
}

func (m *memStore) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.products, id)
	return nil
}

func (m *memStore) FindByID(id int64) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memStore) All() ([]models.Product, error) {
	return m.filter(func(models.Product) bool { return true })
}

func (m *memStore) FindByName(name string) ([]models.Product, error) {
	return m.filter(func(p models.Product) bool { return p.Name == name })
}

func (m *memStore) FindByCategory(category models.Category) ([]models.Product, error) {
	return m.filter(func(p models.Product) bool { return p.Category == category })
}

func (m *memStore) FindByAvailability(available bool) ([]models.Product, error) {
	return m.filter(func(p models.Product) bool { return p.Available == available })
}

func (m *memStore) filter(keep func(models.Product) bool) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var items []models.Product
	for _, p := range m.products {
		if keep(p) {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return *items[i].ID < *items[j].ID })
	return items, nil
}

// testRouter mounts the handlers under the same route patterns as the real
// router, including the numeric id constraint.
func testRouter(h *Products) chi.Router {
	r := chi.NewRouter()
	r.Get("/health", Health)
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id:[0-9]+}", h.Get)
		r.Put("/{id:[0-9]+}", h.Update)
		r.Delete("/{id:[0-9]+}", h.Delete)
	})
	return r
}

// newTestEnv returns a handler group over a fresh in-memory store and a
// router to drive it through.
func newTestEnv(t *testing.T) (*memStore, chi.Router) {
	t.Helper()
	ms := newMemStore()
	h := NewProducts(ms, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return ms, testRouter(h)
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// doWithContentType performs a request with a body and an explicit
// Content-Type header.
func doWithContentType(t *testing.T, r http.Handler, method, path, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// do performs a bodyless request and returns the recorder.
func do(t *testing.T, r http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
