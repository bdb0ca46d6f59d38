package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentfit-backend/internal/repository"
	"rentfit-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type createPrincipalRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// CreateAdmin handles POST /auth/admin
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createPrincipalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if _, err := h.authSvc.RegisterAdmin(r.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Username or email already taken")
			return
		}
		writeServiceError(w, err, "Admin not found")
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Admin created successfully"})
}

// AdminLogin handles POST /auth/admin/token (form-encoded, OAuth2 password style)
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authSvc.LoginAdmin(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		writeServiceError(w, err, "Admin not found")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// CreateUser handles POST /auth/
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createPrincipalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if _, err := h.authSvc.RegisterUser(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Username already taken")
			return
		}
		writeServiceError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
}

// UserLogin handles POST /auth/token (form-encoded, OAuth2 password style)
func (h *AuthHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authSvc.LoginUser(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid user credentials")
			return
		}
		writeServiceError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
