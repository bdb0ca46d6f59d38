package http

import (
	"encoding/json"
	"net/http"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/service"
)

type WorkoutHandler struct {
	workoutSvc service.WorkoutService
}

func NewWorkoutHandler(workoutSvc service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutSvc: workoutSvc}
}

type createWorkoutRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /workouts/
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.workoutSvc.CreateWorkout(r.Context(), identity.SubjectID, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err, "Workout not found")
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

// List handles GET /workouts/
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	workouts, err := h.workoutSvc.ListWorkouts(r.Context(), identity.SubjectID)
	if err != nil {
		writeServiceError(w, err, "Workout not found")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

// Get handles GET /workouts/{id}
func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}
	workout, err := h.workoutSvc.GetWorkout(r.Context(), identity.SubjectID, id)
	if err != nil {
		writeServiceError(w, err, "Workout not found")
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// Update handles PUT /workouts/{id} (partial update)
func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}
	var update domain.WorkoutUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	workout, err := h.workoutSvc.UpdateWorkout(r.Context(), identity.SubjectID, id, update)
	if err != nil {
		writeServiceError(w, err, "Workout not found")
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// Delete handles DELETE /workouts/{id}
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid workout id")
		return
	}
	if err := h.workoutSvc.DeleteWorkout(r.Context(), identity.SubjectID, id); err != nil {
		writeServiceError(w, err, "Workout not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
