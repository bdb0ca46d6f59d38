package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

func TestRoutineRoutes_ScopedToTokenSubject(t *testing.T) {
	env := newTestEnv()
	env.routine.On("ListRoutines", mock.Anything, int32(5)).
		Return([]domain.Routine{{ID: 1, UserID: 5, Name: "Push day"}}, nil)

	rec := doJSON(env.router, http.MethodGet, "/routines", env.userToken(5), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The user id comes from the token, never from the request.
	env.routine.AssertCalled(t, "ListRoutines", mock.Anything, int32(5))
}

func TestRoutineRoutes_AdminTokenRejected(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.router, http.MethodGet, "/routines", env.adminToken(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env.routine.AssertNotCalled(t, "ListRoutines", mock.Anything, mock.Anything)
}

func TestRoutineCreate(t *testing.T) {
	env := newTestEnv()
	env.routine.On("CreateRoutine", mock.Anything, int32(5), "Push day", "Chest and triceps").
		Return(&domain.Routine{ID: 1, UserID: 5, Name: "Push day", Description: "Chest and triceps"}, nil)

	body := `{"name":"Push day","description":"Chest and triceps"}`
	rec := doJSON(env.router, http.MethodPost, "/routines", env.userToken(5), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var routine domain.Routine
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routine))
	assert.Equal(t, int32(1), routine.ID)
}

func TestRoutineGet_IncludesWorkouts(t *testing.T) {
	env := newTestEnv()
	env.routine.On("GetRoutine", mock.Anything, int32(5), int32(1)).
		Return(&domain.Routine{
			ID:       1,
			UserID:   5,
			Name:     "Push day",
			Workouts: []domain.Workout{{ID: 10, UserID: 5, Name: "Bench press"}},
		}, nil)

	rec := doJSON(env.router, http.MethodGet, "/routines/1", env.userToken(5), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var routine domain.Routine
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routine))
	assert.Len(t, routine.Workouts, 1)
}

func TestRoutineAttachWorkout(t *testing.T) {
	t.Run("Attached", func(t *testing.T) {
		env := newTestEnv()
		env.routine.On("AttachWorkout", mock.Anything, int32(5), int32(1), int32(10)).Return(nil)

		rec := doJSON(env.router, http.MethodPost, "/routines/1/workouts/10", env.userToken(5), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		env.routine.AssertExpectations(t)
	})

	t.Run("ForeignWorkout", func(t *testing.T) {
		env := newTestEnv()
		env.routine.On("AttachWorkout", mock.Anything, int32(5), int32(1), int32(10)).
			Return(repository.ErrNotFound)

		rec := doJSON(env.router, http.MethodPost, "/routines/1/workouts/10", env.userToken(5), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Routine or workout not found", decodeDetail(t, rec.Body.String()))
	})

	t.Run("AlreadyAttached", func(t *testing.T) {
		env := newTestEnv()
		env.routine.On("AttachWorkout", mock.Anything, int32(5), int32(1), int32(10)).
			Return(repository.ErrDuplicate)

		rec := doJSON(env.router, http.MethodPost, "/routines/1/workouts/10", env.userToken(5), "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRoutineDetachWorkout(t *testing.T) {
	env := newTestEnv()
	env.routine.On("DetachWorkout", mock.Anything, int32(5), int32(1), int32(10)).Return(nil)

	rec := doJSON(env.router, http.MethodDelete, "/routines/1/workouts/10", env.userToken(5), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	env.routine.AssertExpectations(t)
}
