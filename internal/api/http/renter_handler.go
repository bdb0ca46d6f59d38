package http

import (
	"encoding/json"
	"net/http"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/service"
)

type RenterHandler struct {
	renterSvc service.RenterService
}

func NewRenterHandler(renterSvc service.RenterService) *RenterHandler {
	return &RenterHandler{renterSvc: renterSvc}
}

type createRenterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Create handles POST /renters/
func (h *RenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	renter := &domain.Renter{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := h.renterSvc.CreateRenter(r.Context(), renter); err != nil {
		writeServiceError(w, err, "Renter not found")
		return
	}
	writeJSON(w, http.StatusCreated, renter)
}

// List handles GET /renters/
func (h *RenterHandler) List(w http.ResponseWriter, r *http.Request) {
	renters, err := h.renterSvc.ListRenters(r.Context())
	if err != nil {
		writeServiceError(w, err, "Renter not found")
		return
	}
	if renters == nil {
		renters = []domain.Renter{}
	}
	writeJSON(w, http.StatusOK, renters)
}

// Get handles GET /renters/{id}
func (h *RenterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid renter id")
		return
	}
	renter, err := h.renterSvc.GetRenter(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Renter not found")
		return
	}
	writeJSON(w, http.StatusOK, renter)
}

// Update handles PUT /renters/{id} (partial update)
func (h *RenterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid renter id")
		return
	}
	var update domain.RenterUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	renter, err := h.renterSvc.UpdateRenter(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err, "Renter not found")
		return
	}
	writeJSON(w, http.StatusOK, renter)
}

// Delete handles DELETE /renters/{id}
func (h *RenterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid renter id")
		return
	}
	if err := h.renterSvc.DeleteRenter(r.Context(), id); err != nil {
		writeServiceError(w, err, "Renter not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
