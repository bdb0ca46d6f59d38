package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

// pathID pulls the numeric {id}-style variable out of the route.
func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

type createCarRequest struct {
	PlateNumber       string           `json:"plate_number"`
	Brand             string           `json:"brand"`
	Model             string           `json:"model"`
	Mileage           *int32           `json:"mileage"`
	Status            domain.CarStatus `json:"status"`
	RentalPricePerDay float64          `json:"rental_price_per_day"`
	RenterID          *int32           `json:"renter_id"`
	AdminID           *int32           `json:"admin_id"`
}

// Create handles POST /cars/
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car := &domain.Car{
		PlateNumber:       req.PlateNumber,
		Brand:             req.Brand,
		Model:             req.Model,
		Mileage:           req.Mileage,
		Status:            req.Status,
		RentalPricePerDay: req.RentalPricePerDay,
		RenterID:          req.RenterID,
		AdminID:           req.AdminID,
	}
	if err := h.carSvc.CreateCar(r.Context(), car); err != nil {
		writeServiceError(w, err, "Car not found")
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

// List handles GET /cars/
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListCars(r.Context())
	if err != nil {
		writeServiceError(w, err, "Car not found")
		return
	}
	if cars == nil {
		cars = []domain.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

// Get handles GET /cars/{id}
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid car id")
		return
	}
	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Car not found")
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// Update handles PUT /cars/{id} (partial update)
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid car id")
		return
	}
	var update domain.CarUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	car, err := h.carSvc.UpdateCar(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err, "Car not found")
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// Delete handles DELETE /cars/{id}
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid car id")
		return
	}
	if err := h.carSvc.DeleteCar(r.Context(), id); err != nil {
		writeServiceError(w, err, "Car not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
