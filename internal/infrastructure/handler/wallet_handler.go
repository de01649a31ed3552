package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"github.com/pricepal/pricepal-server/internal/infrastructure/middleware"
)

// WalletHandler handles HTTP requests for the wallet ledger
type WalletHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(service *service.LedgerService, log logger.Logger) *WalletHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &WalletHandler{
		service: service,
		logger:  log,
	}
}

// GetWallet handles retrieving the balance and transaction history
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	wallet, err := h.service.Wallet(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	transactions := make([]TransactionResponse, 0, len(wallet.Transactions))
	for _, tx := range wallet.Transactions {
		transactions = append(transactions, toTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, WalletResponse{
		Balance:      wallet.Balance,
		Transactions: transactions,
	})
}

// AddFunds handles depositing funds toward a product
func (h *WalletHandler) AddFunds(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req AddFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	tx, message, err := h.service.AddFunds(r.Context(), req.Amount, req.Description, req.ProductID)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Funds added", map[string]interface{}{
		"request_id": requestID,
		"product_id": req.ProductID,
		"amount":     req.Amount,
	})

	writeJSON(w, http.StatusCreated, FundsResponse{
		Transaction: toTransactionResponse(tx),
		Message:     message,
	})
}

// AllocateFunds handles the historical allocation alias, which forwards to
// AddFunds with a default description
func (h *WalletHandler) AllocateFunds(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req AllocateFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	tx, message, err := h.service.AllocateFunds(r.Context(), req.Amount, req.ProductID)
	if err != nil {
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, FundsResponse{
		Transaction: toTransactionResponse(tx),
		Message:     message,
	})
}

// RegisterRoutes registers the wallet handler routes
func (h *WalletHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/wallet", h.GetWallet).Methods("GET")
	router.HandleFunc("/wallet/deposits", h.AddFunds).Methods("POST")
	router.HandleFunc("/wallet/allocations", h.AllocateFunds).Methods("POST")
}
