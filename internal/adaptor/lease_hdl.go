package adaptor

import (
	"encoding/json"
	"net/http"

	"vehicle-leasing/internal/dto/request"
	"vehicle-leasing/internal/usecase"
	"vehicle-leasing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LeaseHandler struct {
	service usecase.LeaseService
	log     *zap.Logger
}

func NewLeaseHandler(service usecase.LeaseService, log *zap.Logger) *LeaseHandler {
	return &LeaseHandler{
		service: service,
		log:     log.With(zap.String("handler", "lease")),
	}
}

// AcquireLease handles POST /api/leases
func (h *LeaseHandler) AcquireLease(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	lease, err := h.service.AcquireLease(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "acquire lease")
		return
	}

	utils.ResponseCreated(w, "Lease created successfully", lease)
}

// GetMyLeases handles GET /api/users/me/leases
func (h *LeaseHandler) GetMyLeases(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	leases, err := h.service.GetUserLeases(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get my leases")
		return
	}

	utils.ResponseSuccess(w, "success", leases)
}

// GetLeaseByID handles GET /api/admin/leases/{id}
func (h *LeaseHandler) GetLeaseByID(w http.ResponseWriter, r *http.Request) {
	leaseID := chi.URLParam(r, "id")
	if leaseID == "" {
		utils.ResponseBadRequest(w, "Lease ID is required", nil)
		return
	}

	lease, err := h.service.GetLeaseByID(r.Context(), leaseID)
	if err != nil {
		handleServiceError(h.log, w, err, "get lease by ID")
		return
	}

	utils.ResponseSuccess(w, "success", lease)
}

// CancelLease handles PUT /api/admin/leases/{id}/cancel
func (h *LeaseHandler) CancelLease(w http.ResponseWriter, r *http.Request) {
	leaseID := chi.URLParam(r, "id")
	if leaseID == "" {
		utils.ResponseBadRequest(w, "Lease ID is required", nil)
		return
	}

	if err := h.service.CancelLease(r.Context(), leaseID); err != nil {
		handleServiceError(h.log, w, err, "cancel lease")
		return
	}

	utils.ResponseSuccess(w, "Lease cancelled successfully", nil)
}
