package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/domain/entity"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"github.com/pricepal/pricepal-server/internal/infrastructure/middleware"
)

// PlanHandler handles HTTP requests for savings plans
type PlanHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewPlanHandler creates a new savings plan handler
func NewPlanHandler(service *service.LedgerService, log logger.Logger) *PlanHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &PlanHandler{
		service: service,
		logger:  log,
	}
}

// CreatePlan handles creating or replacing the plan for a product
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	plan, err := h.service.CreateSavingsPlan(r.Context(), req.ProductID, entity.Frequency(req.Frequency), req.Months)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	allocated, err := h.service.Allocated(r.Context(), req.ProductID)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Savings plan created", map[string]interface{}{
		"request_id": requestID,
		"product_id": req.ProductID,
		"frequency":  req.Frequency,
		"months":     req.Months,
	})

	writeJSON(w, http.StatusCreated, toPlanResponse(plan, allocated))
}

// ListPlans handles listing all savings plans with their derived allocated
// amounts
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	plans, err := h.service.Plans(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	resp := make([]PlanResponse, 0, len(plans))
	for _, plan := range plans {
		allocated, err := h.service.Allocated(r.Context(), plan.ProductID)
		if err != nil {
			handleServiceError(w, h.logger, err, requestID)
			return
		}
		resp = append(resp, toPlanResponse(plan, allocated))
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdatePlan handles replacing the mutable fields of a product's plan
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	productID := mux.Vars(r)["productId"]

	var req UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	plan, err := h.service.UpdateSavingsPlan(r.Context(), productID, entity.PlanUpdate{
		Frequency:          entity.Frequency(req.Frequency),
		ContributionAmount: req.ContributionAmount,
		TargetDate:         req.TargetDate,
	})
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	allocated, err := h.service.Allocated(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan, allocated))
}

// RegisterRoutes registers the savings plan handler routes
func (h *PlanHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/savings-plans", h.CreatePlan).Methods("POST")
	router.HandleFunc("/savings-plans", h.ListPlans).Methods("GET")
	router.HandleFunc("/savings-plans/{productId}", h.UpdatePlan).Methods("PUT")
}
