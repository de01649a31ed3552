package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"github.com/pricepal/pricepal-server/internal/infrastructure/middleware"
)

// ProductHandler handles HTTP requests for wishlist products
type ProductHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.LedgerService, log logger.Logger) *ProductHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProduct handles the creation of a new product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	product, err := h.service.AddProduct(r.Context(), req.Name, req.Price, req.ImageURL, req.ProductURL)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Product created", map[string]interface{}{
		"request_id": requestID,
		"id":         product.ID,
	})

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// ListProducts handles listing all products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	products, err := h.service.Products(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetProduct handles retrieving a product by ID
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	product, err := h.service.Product(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles replacing a product's mutable fields. A price
// change appends a price-history point.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, entity.ProductUpdate{
		Name:       req.Name,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
		ProductURL: req.ProductURL,
	})
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles product deletion with its wallet and plan cascade
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Product deleted", map[string]interface{}{
		"request_id": requestID,
		"id":         id,
	})

	w.WriteHeader(http.StatusNoContent)
}

// GetProductSummary handles retrieving the derived savings values for a
// product
func (h *ProductHandler) GetProductSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := mux.Vars(r)["id"]

	summary, err := h.service.Summary(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// RegisterRoutes registers the product handler routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")
	router.HandleFunc("/products/{id}/summary", h.GetProductSummary).Methods("GET")
}

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// handleServiceError maps domain failures to HTTP responses
func handleServiceError(w http.ResponseWriter, log logger.Logger, err error, requestID string) {
	var validationErr *entity.ValidationError
	var notFoundErr *entity.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed", map[string]interface{}{
			"request_id": requestID,
			"field":      validationErr.Field,
			"error":      err.Error(),
		})
		sendErrorResponse(w, log, "Validation failed", validationErr.Error(),
			http.StatusBadRequest, requestID)
	case errors.As(err, &notFoundErr):
		log.Warn("Resource not found", map[string]interface{}{
			"request_id": requestID,
			"resource":   notFoundErr.Resource,
			"id":         notFoundErr.ID,
		})
		sendErrorResponse(w, log, "Not found", notFoundErr.Error(),
			http.StatusNotFound, requestID)
	default:
		log.Error("Unexpected error", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, log, "Internal server error",
			"An unexpected error occurred", http.StatusInternalServerError, requestID)
	}
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	writeJSON(w, statusCode, resp)
}
