package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtv/stockhouse/internal/product/domain"
)

type stubProductRepo struct {
	domain.ProductRepository
}

func (stubProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	return []domain.Product{{ID: 1, Code: "SP000001", Name: "Coffee"}}, nil
}

func (stubProductRepo) FindByID(id uint) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func passthrough(next http.HandlerFunc) http.HandlerFunc { return next }

func TestProductRoutesRecordMetrics(t *testing.T) {
	h := NewProductHandler(stubProductRepo{})
	router := mux.NewRouter()
	h.RegisterRoutes(router, passthrough, passthrough)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.requestCounter.WithLabelValues("GET", "/api/products", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.requestCounter.WithLabelValues("GET", "/api/products/{id}", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(h.requestLatency))
}
