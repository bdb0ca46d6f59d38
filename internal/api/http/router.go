package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentfit-backend/internal/domain"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Renter  *RenterHandler
	Car     *CarHandler
	Rental  *RentalHandler
	Workout *WorkoutHandler
	Routine *RoutineHandler
}

// NewRouter wires all routes. Admin-role routes cover the rental fleet
// (renters, cars, rentals); user-role routes cover workouts and routines.
func NewRouter(h Handlers, auth *AuthMiddleware, allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogMiddleware)
	r.Use(CORSMiddleware(allowedOrigins))

	// Health check
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Health check complete"})
	}).Methods("GET")

	// Middleware only runs on matched routes, so preflight requests need a
	// route of their own. The CORS middleware answers them before this
	// handler is reached.
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Auth (public)
	r.HandleFunc("/auth/admin", h.Auth.CreateAdmin).Methods("POST")
	r.HandleFunc("/auth/admin/token", h.Auth.AdminLogin).Methods("POST")
	r.HandleFunc("/auth/", h.Auth.CreateUser).Methods("POST")
	r.HandleFunc("/auth", h.Auth.CreateUser).Methods("POST")
	r.HandleFunc("/auth/token", h.Auth.UserLogin).Methods("POST")

	requireAdmin := auth.RequireRole(domain.RoleAdmin)
	requireUser := auth.RequireRole(domain.RoleUser)

	// Renters (admin)
	renters := r.PathPrefix("/renters").Subrouter()
	renters.Use(requireAdmin)
	renters.HandleFunc("", h.Renter.Create).Methods("POST")
	renters.HandleFunc("/", h.Renter.Create).Methods("POST")
	renters.HandleFunc("", h.Renter.List).Methods("GET")
	renters.HandleFunc("/", h.Renter.List).Methods("GET")
	renters.HandleFunc("/{id:[0-9]+}", h.Renter.Get).Methods("GET")
	renters.HandleFunc("/{id:[0-9]+}", h.Renter.Update).Methods("PUT")
	renters.HandleFunc("/{id:[0-9]+}", h.Renter.Delete).Methods("DELETE")

	// Cars (admin)
	cars := r.PathPrefix("/cars").Subrouter()
	cars.Use(requireAdmin)
	cars.HandleFunc("", h.Car.Create).Methods("POST")
	cars.HandleFunc("/", h.Car.Create).Methods("POST")
	cars.HandleFunc("", h.Car.List).Methods("GET")
	cars.HandleFunc("/", h.Car.List).Methods("GET")
	cars.HandleFunc("/{id:[0-9]+}", h.Car.Get).Methods("GET")
	cars.HandleFunc("/{id:[0-9]+}", h.Car.Update).Methods("PUT")
	cars.HandleFunc("/{id:[0-9]+}", h.Car.Delete).Methods("DELETE")

	// Rentals (admin)
	rentals := r.PathPrefix("/rentals").Subrouter()
	rentals.Use(requireAdmin)
	rentals.HandleFunc("", h.Rental.Create).Methods("POST")
	rentals.HandleFunc("/", h.Rental.Create).Methods("POST")
	rentals.HandleFunc("", h.Rental.List).Methods("GET")
	rentals.HandleFunc("/", h.Rental.List).Methods("GET")
	rentals.HandleFunc("/{id:[0-9]+}", h.Rental.Get).Methods("GET")
	rentals.HandleFunc("/{id:[0-9]+}", h.Rental.Update).Methods("PUT")
	rentals.HandleFunc("/{id:[0-9]+}", h.Rental.Delete).Methods("DELETE")

	// Workouts (user)
	workouts := r.PathPrefix("/workouts").Subrouter()
	workouts.Use(requireUser)
	workouts.HandleFunc("", h.Workout.Create).Methods("POST")
	workouts.HandleFunc("/", h.Workout.Create).Methods("POST")
	workouts.HandleFunc("", h.Workout.List).Methods("GET")
	workouts.HandleFunc("/", h.Workout.List).Methods("GET")
	workouts.HandleFunc("/{id:[0-9]+}", h.Workout.Get).Methods("GET")
	workouts.HandleFunc("/{id:[0-9]+}", h.Workout.Update).Methods("PUT")
	workouts.HandleFunc("/{id:[0-9]+}", h.Workout.Delete).Methods("DELETE")

	// Routines (user)
	routines := r.PathPrefix("/routines").Subrouter()
	routines.Use(requireUser)
	routines.HandleFunc("", h.Routine.Create).Methods("POST")
	routines.HandleFunc("/", h.Routine.Create).Methods("POST")
	routines.HandleFunc("", h.Routine.List).Methods("GET")
	routines.HandleFunc("/", h.Routine.List).Methods("GET")
	routines.HandleFunc("/{id:[0-9]+}", h.Routine.Get).Methods("GET")
	routines.HandleFunc("/{id:[0-9]+}", h.Routine.Update).Methods("PUT")
	routines.HandleFunc("/{id:[0-9]+}", h.Routine.Delete).Methods("DELETE")
	routines.HandleFunc("/{id:[0-9]+}/workouts/{workout_id:[0-9]+}", h.Routine.AttachWorkout).Methods("POST")
	routines.HandleFunc("/{id:[0-9]+}/workouts/{workout_id:[0-9]+}", h.Routine.DetachWorkout).Methods("DELETE")

	return r
}
