package http

import (
	"encoding/json"
	"net/http"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/service"
)

type RoutineHandler struct {
	routineSvc service.RoutineService
}

func NewRoutineHandler(routineSvc service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineSvc: routineSvc}
}

type createRoutineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /routines/
func (h *RoutineHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	var req createRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	routine, err := h.routineSvc.CreateRoutine(r.Context(), identity.SubjectID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err, "Routine not found")
		return
	}
	writeJSON(w, http.StatusCreated, routine)
}

// List handles GET /routines/
func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	routines, err := h.routineSvc.ListRoutines(r.Context(), identity.SubjectID)
	if err != nil {
		writeServiceError(w, err, "Routine not found")
		return
	}
	if routines == nil {
		routines = []domain.Routine{}
	}
	writeJSON(w, http.StatusOK, routines)
}

// Get handles GET /routines/{id}
func (h *RoutineHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid routine id")
		return
	}
	routine, err := h.routineSvc.GetRoutine(r.Context(), identity.SubjectID, id)
	if err != nil {
		writeServiceError(w, err, "Routine not found")
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

// Update handles PUT /routines/{id} (partial update)
func (h *RoutineHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid routine id")
		return
	}
	var update domain.RoutineUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	routine, err := h.routineSvc.UpdateRoutine(r.Context(), identity.SubjectID, id, update)
	if err != nil {
		writeServiceError(w, err, "Routine not found")
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

// Delete handles DELETE /routines/{id}
func (h *RoutineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid routine id")
		return
	}
	if err := h.routineSvc.DeleteRoutine(r.Context(), identity.SubjectID, id); err != nil {
		writeServiceError(w, err, "Routine not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AttachWorkout handles POST /routines/{id}/workouts/{workout_id}
func (h *RoutineHandler) AttachWorkout(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	routineID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid routine id")
		return
	}
	workoutID, ok := pathID(r, "workout_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}
	if err := h.routineSvc.AttachWorkout(r.Context(), identity.SubjectID, routineID, workoutID); err != nil {
		writeServiceError(w, err, "Routine or workout not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DetachWorkout handles DELETE /routines/{id}/workouts/{workout_id}
func (h *RoutineHandler) DetachWorkout(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	routineID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid routine id")
		return
	}
	workoutID, ok := pathID(r, "workout_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}
	if err := h.routineSvc.DetachWorkout(r.Context(), identity.SubjectID, routineID, workoutID); err != nil {
		writeServiceError(w, err, "Routine or workout not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
