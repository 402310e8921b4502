package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mediadesk/taqrir/pkg/models/api"
	"github.com/mediadesk/taqrir/pkg/models/domain"
	storemodels "github.com/mediadesk/taqrir/pkg/models/store"
	authservice "github.com/mediadesk/taqrir/pkg/services/auth"
	userstore "github.com/mediadesk/taqrir/pkg/store/duckdb/user"
	"github.com/rs/zerolog"
)

type Handler struct {
	auth  *authservice.Service
	users userstore.Store
}

func NewHandler(auth *authservice.Service, users userstore.Store) *Handler {
	return &Handler{auth: auth, users: users}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func toAPIUser(u *storemodels.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decode request body: %v", err), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}
	if _, err := h.users.GetByEmail(r.Context(), req.Email); err == nil {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	} else if !errors.Is(err, storemodels.ErrNotFound) {
		logger.Error().Err(err).Msg("failed to check existing user")
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	hash, err := authservice.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash password")
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}
	user := &storemodels.User{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		logger.Error().Err(err).Msg("failed to create user")
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, logger, toAPIUser(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decode request body: %v", err), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("login failed")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, logger, api.LoginResponse{Token: token, User: toAPIUser(user)})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	users, err := h.users.List(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list users")
		http.Error(w, "list failed", http.StatusInternalServerError)
		return
	}
	response := make([]api.User, 0, len(users))
	for i := range users {
		response = append(response, toAPIUser(&users[i]))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	var req api.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decode request body: %v", err), http.StatusBadRequest)
		return
	}
	if !domain.Role(req.Role).Valid() {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}
	err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "userID"), req.Role)
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to update role")
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	err := h.users.Delete(r.Context(), chi.URLParam(r, "userID"))
	if errors.Is(err, storemodels.ErrNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete user")
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
