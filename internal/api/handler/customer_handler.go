package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"customer-management/internal/api/handler/dto"
	"customer-management/internal/domain/customer"
	"customer-management/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (string, error) {
	customerID := chi.URLParam(r, "customerID")
	if customerID == "" {
		return "", apperrors.NewValidationError("customer_id", "customer_id not found in URL path")
	}
	return customerID, nil
}

func getIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id", fmt.Sprintf("invalid id %q in URL path", idStr))
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be an integer")
	}
	return v, nil
}

func (h *CustomerHandler) logFailure(r *http.Request, msg string, err error) {
	level := slog.LevelWarn
	if apperrors.CodeOf(err) == apperrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, msg, slog.Any("error", err))
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Creates a customer record. creation_date and last_modified_date are set by the server.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer creation request"
// @Success 201 {object} dto.CustomerResponse "Customer successfully created"
// @Failure 409 {object} dto.ErrorResponse "customer_id already exists"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/ [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logFailure(r, "Failed to decode request body", err)
		respondError(w, err)
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), req.ToDomain())
	if err != nil {
		h.logFailure(r, "Service failed to create customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.String("customerID", created.CustomerID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(created))
}

// GetCustomer handles GET /customers/{customer_id}
// @Summary Retrieve a customer
// @Description Retrieves a customer by its business customer_id.
// @Tags Customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customer_id} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.logFailure(r, "Service failed to get customer", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(c))
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Lists customers ordered by id, with offset pagination.
// @Tags Customers
// @Produce json
// @Param skip query int false "Records to skip" default(0) minimum(0)
// @Param limit query int false "Maximum records to return" default(100) minimum(1) maximum(1000)
// @Success 200 {array} dto.CustomerResponse "Customers"
// @Failure 422 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/ [get]
// @Security BearerAuth
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		respondError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", customer.DefaultPageLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	customers, err := h.service.ListCustomers(r.Context(), skip, limit)
	if err != nil {
		h.logFailure(r, "Service failed to list customers", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// UpdateCustomer handles PUT /customers/{customer_id}
// @Summary Partially update a customer
// @Description Merges the supplied fields into the customer. Missing keys are left unchanged; null clears optional fields. Unknown keys are ignored; a customer_id in the body must match the path.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} dto.CustomerResponse "Updated customer"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customer_id} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := decodePartialJSON(w, r, &req); err != nil {
		h.logFailure(r, "Failed to decode request body", err)
		respondError(w, err)
		return
	}
	if err := req.CheckCustomerID(customerID); err != nil {
		h.logFailure(r, "Rejected customer_id in update body", err)
		respondError(w, err)
		return
	}

	updated, err := h.service.UpdateCustomer(r.Context(), customerID, req.ToDomain())
	if err != nil {
		h.logFailure(r, "Service failed to update customer", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(updated))
}

// UpdateCustomerByID handles PUT /customers/id/{id}
// @Summary Partially update a customer by internal id
// @Description Same merge semantics as the customer_id variant, keyed by the numeric id. A customer_id in the body is ignored.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Internal ID" minimum(1)
// @Param request body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} dto.CustomerResponse "Updated customer"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 422 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/id/{id} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	// A body customer_id is not checked here; the numeric id is the key.
	var req dto.UpdateCustomerRequest
	if err := decodePartialJSON(w, r, &req); err != nil {
		h.logFailure(r, "Failed to decode request body", err)
		respondError(w, err)
		return
	}

	updated, err := h.service.UpdateCustomerByID(r.Context(), id, req.ToDomain())
	if err != nil {
		h.logFailure(r, "Service failed to update customer by id", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /customers/{customer_id}
// @Summary Delete a customer
// @Tags Customers
// @Param customer_id path string true "Customer ID"
// @Success 204 "Customer deleted"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customer_id} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		h.logFailure(r, "Service failed to delete customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted", slog.String("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
