package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minhtv/stockhouse/internal/order/domain"
	"github.com/minhtv/stockhouse/internal/order/usecase/command"
	"github.com/minhtv/stockhouse/internal/order/usecase/query"
	productdomain "github.com/minhtv/stockhouse/internal/product/domain"
	"github.com/minhtv/stockhouse/pkg/database"
	"github.com/minhtv/stockhouse/pkg/logger"
)

// OrderHandler handles HTTP requests for orders and customers
type OrderHandler struct {
	createOrderHandler *command.CreateOrderHandler
	updateOrderHandler *command.UpdateOrderHandler
	deleteOrderHandler *command.DeleteOrderHandler

	createCustomerHandler *command.CreateCustomerHandler
	updateCustomerHandler *command.UpdateCustomerHandler
	deleteCustomerHandler *command.DeleteCustomerHandler

	getOrderHandler      *query.GetOrderHandler
	listOrdersHandler    *query.ListOrdersHandler
	getCustomerHandler   *query.GetCustomerHandler
	listCustomersHandler *query.ListCustomersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	tx database.TxRunner,
	orders domain.OrderRepository,
	customers domain.CustomerRepository,
	products productdomain.ProductRepository,
	events command.EventPublisher,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockhouse_order_requests_total",
			Help: "Total number of requests to the order API",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockhouse_order_request_duration_seconds",
			Help:    "Duration of order API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		createOrderHandler:    command.NewCreateOrderHandler(tx, orders, customers, products, events),
		updateOrderHandler:    command.NewUpdateOrderHandler(tx, orders, products, events),
		deleteOrderHandler:    command.NewDeleteOrderHandler(tx, orders, products),
		createCustomerHandler: command.NewCreateCustomerHandler(customers),
		updateCustomerHandler: command.NewUpdateCustomerHandler(customers),
		deleteCustomerHandler: command.NewDeleteCustomerHandler(customers, orders),
		getOrderHandler:       query.NewGetOrderHandler(orders),
		listOrdersHandler:     query.NewListOrdersHandler(orders),
		getCustomerHandler:    query.NewGetCustomerHandler(customers),
		listCustomersHandler:  query.NewListCustomersHandler(customers),
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID uint `json:"customer_id"`
		Items      []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"items"`
		Notes string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateOrderCommand{
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, command.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.createOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create order")
		respondJSON(w, orderErrStatus(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	order, err := h.getOrderHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	result, err := h.listOrdersHandler.Handle(query.ListOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	var req struct {
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateOrderCommand{ID: id, Notes: req.Notes}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		cmd.Status = &status
	}

	order, err := h.updateOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("order_id", id).Msg("Failed to update order")
		respondJSON(w, orderErrStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order ID"})
		return
	}

	if err := h.deleteOrderHandler.Handle(command.DeleteOrderCommand{ID: id}); err != nil {
		respondJSON(w, orderErrStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// --- CUSTOMER ENDPOINTS ---

// CreateCustomer handles POST /api/customers
func (h *OrderHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	customer, err := h.createCustomerHandler.Handle(command.CreateCustomerCommand{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *OrderHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	customer, err := h.getCustomerHandler.Handle(query.GetCustomerQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// ListCustomers handles GET /api/customers
func (h *OrderHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	result, err := h.listCustomersHandler.Handle(query.ListCustomersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list customers",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *OrderHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	customer, err := h.updateCustomerHandler.Handle(command.UpdateCustomerCommand{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrCustomerNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *OrderHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	if err := h.deleteCustomerHandler.Handle(command.DeleteCustomerCommand{ID: id}); err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrCustomerInUse):
			status = http.StatusConflict
		}
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

// orderErrStatus maps domain errors onto HTTP status codes.
func orderErrStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, productdomain.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RegisterRoutes registers all order and customer routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router, authMW, adminMW func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", authMW(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", authMW(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", authMW(h.GetOrder))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", authMW(h.UpdateOrder))).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", adminMW(h.DeleteOrder))).Methods("DELETE")

	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", authMW(h.ListCustomers))).Methods("GET")
	router.HandleFunc("/api/customers", h.metricsMiddleware("/api/customers", authMW(h.CreateCustomer))).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", authMW(h.GetCustomer))).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", authMW(h.UpdateCustomer))).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.metricsMiddleware("/api/customers/{id}", adminMW(h.DeleteCustomer))).Methods("DELETE")
}
