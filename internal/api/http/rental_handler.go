package http

import (
	"encoding/json"
	"net/http"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CarID       int32               `json:"car_id"`
	RenterID    int32               `json:"renter_id"`
	AdminID     *int32              `json:"admin_id"`
	StartDate   string              `json:"start_date"`
	EndDate     *string             `json:"end_date"`
	PricePerDay float64             `json:"price_per_day"`
	Status      domain.RentalStatus `json:"status"`
}

// Create handles POST /rentals/
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CarID <= 0 || req.RenterID <= 0 {
		writeError(w, http.StatusBadRequest, "car_id and renter_id are required")
		return
	}

	rental := &domain.Rental{
		CarID:       req.CarID,
		RenterID:    req.RenterID,
		AdminID:     req.AdminID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PricePerDay: req.PricePerDay,
		Status:      req.Status,
	}
	if err := h.rentalSvc.CreateRental(r.Context(), rental); err != nil {
		writeServiceError(w, err, "Car or renter not found")
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// List handles GET /rentals/
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		writeServiceError(w, err, "Rental not found")
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// Get handles GET /rentals/{id}
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid rental id")
		return
	}
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Rental not found")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Update handles PUT /rentals/{id} (partial update, lifecycle-checked)
func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid rental id")
		return
	}
	var update domain.RentalUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rental, err := h.rentalSvc.UpdateRental(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err, "Rental not found")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// Delete handles DELETE /rentals/{id}
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid rental id")
		return
	}
	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		writeServiceError(w, err, "Rental not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
