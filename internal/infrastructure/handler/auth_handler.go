package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pricepal/pricepal-server/internal/application/service"
	"github.com/pricepal/pricepal-server/internal/infrastructure/logger"
	"github.com/pricepal/pricepal-server/internal/infrastructure/middleware"
)

// AuthHandler handles HTTP requests for account creation and login
type AuthHandler struct {
	service *service.AuthService
	logger  logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService, log logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// SignUp handles account creation
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	user, err := h.service.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			sendErrorResponse(w, h.logger, "Email taken",
				"An account with this email already exists", http.StatusConflict, requestID)
			return
		}
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Status: "success",
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}

// Login handles credential checking and token issuance
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	user, token, expiresIn, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warn("Login rejected", map[string]interface{}{
				"request_id": requestID,
			})
			sendErrorResponse(w, h.logger, "Invalid credentials",
				"Invalid email or password", http.StatusUnauthorized, requestID)
			return
		}
		handleServiceError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Status:    "success",
		UserID:    user.ID,
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// RegisterRoutes registers the auth handler routes
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/signup", h.SignUp).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
}
